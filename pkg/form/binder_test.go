package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/validation"
)

func adultPackage() model.Package {
	return model.Package{Items: []model.SelectedItem{{
		ID:     "a",
		Name:   "成人",
		Type:   model.ItemTypePreset,
		Config: model.ConfigRange{AgeFrom: 18, AgeTo: 25},
	}}}
}

func childItem() model.SelectedItem {
	return model.SelectedItem{ID: "b", Name: "兒童", Type: model.ItemTypePreset}
}

func TestSeed_MirrorsPackageAndIsClean(t *testing.T) {
	b := form.NewBinder()
	pkg := adultPackage()
	b.Seed(pkg)

	if diff := cmp.Diff(pkg.Items, b.Items()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if b.IsDirty() {
		t.Fatalf("expected clean binder after seed")
	}
}

func TestSeed_CopiesInput(t *testing.T) {
	b := form.NewBinder()
	pkg := adultPackage()
	b.Seed(pkg)

	if err := b.SetField(model.Path(0, model.FieldAgeFrom), 40); err != nil {
		t.Fatalf("set field: %v", err)
	}
	if pkg.Items[0].Config.AgeFrom != 18 {
		t.Fatalf("seed aliased the package items")
	}
}

func TestAppend_PreservesOrderAndDirties(t *testing.T) {
	b := form.NewBinder()
	b.Seed(adultPackage())

	if err := b.Append(childItem()); err != nil {
		t.Fatalf("append: %v", err)
	}

	items := b.Items()
	ids := []string{items[0].ID, items[1].ID}
	if diff := cmp.Diff([]string{"a", "b"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if !b.IsDirty() {
		t.Fatalf("expected dirty after append")
	}
}

func TestAppend_CountMatchesCallsSinceSeed(t *testing.T) {
	b := form.NewBinder()
	b.Seed(model.Package{})

	want := make([]string, 0, 5)
	for _, id := range []string{"x", "y", "x", "z", "y"} {
		if err := b.Append(model.SelectedItem{ID: id}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
		want = append(want, id)
	}

	got := make([]string, 0, b.Len())
	for _, item := range b.Items() {
		got = append(got, item.ID)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("appended ids mismatch (-want +got):\n%s", diff)
	}
}

func TestSeed_IdempotentAndDiscardsEdits(t *testing.T) {
	b := form.NewBinder()
	pkg := adultPackage()
	b.Seed(pkg)
	_ = b.Append(childItem())
	_ = b.SetField(model.Path(0, model.FieldAgeTo), 99)

	b.Seed(pkg)
	b.Seed(pkg)

	if diff := cmp.Diff(pkg.Items, b.Items()); diff != "" {
		t.Fatalf("items mismatch after reseed (-want +got):\n%s", diff)
	}
	if b.IsDirty() {
		t.Fatalf("expected clean after reseed")
	}
}

func TestSetField_UpdatesOnlyTarget(t *testing.T) {
	b := form.NewBinder()
	b.Seed(adultPackage())

	if err := b.SetFieldPath("items.0.config.ageFrom", 30); err != nil {
		t.Fatalf("set field: %v", err)
	}

	want := model.SelectedItem{
		ID:     "a",
		Name:   "成人",
		Type:   model.ItemTypePreset,
		Config: model.ConfigRange{AgeFrom: 30, AgeTo: 25},
	}
	if diff := cmp.Diff(want, b.Items()[0]); diff != "" {
		t.Fatalf("item mismatch (-want +got):\n%s", diff)
	}
	if !b.IsDirty() {
		t.Fatalf("expected dirty after set field")
	}
}

func TestSetField_OutOfRangeIndexLeavesStateUntouched(t *testing.T) {
	b := form.NewBinder()
	b.Seed(adultPackage())

	err := b.SetField(model.Path(3, model.FieldAgeFrom), 1)
	if !errors.Is(err, form.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if b.IsDirty() {
		t.Fatalf("failed write must not dirty the binder")
	}
	if _, err := b.Value(model.Path(-1, model.FieldAgeTo)); !errors.Is(err, form.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange on read, got %v", err)
	}
	if err := b.SetField(model.Path(0, "name"), 1); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSetField_PermissiveStoresOutOfBounds(t *testing.T) {
	b := form.NewBinder()
	b.Seed(adultPackage())

	if err := b.SetField(model.Path(0, model.FieldAgeTo), 500); err != nil {
		t.Fatalf("permissive binder rejected write: %v", err)
	}
	if got, _ := b.Value(model.Path(0, model.FieldAgeTo)); got != 500 {
		t.Fatalf("expected 500 stored, got %d", got)
	}
	if issues := b.Issues(); issues != nil {
		t.Fatalf("permissive binder reported issues: %#v", issues)
	}
}

func TestSetField_StrictRejectsOutOfBounds(t *testing.T) {
	b := form.NewBinder(form.WithValidationPolicy(validation.Strict))
	b.Seed(adultPackage())

	err := b.SetField(model.Path(0, model.FieldAgeTo), 201)
	if !errors.Is(err, validation.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if b.IsDirty() {
		t.Fatalf("rejected write must not dirty the binder")
	}
}

func TestAdvisoryPolicy_FlagsButApplies(t *testing.T) {
	b := form.NewBinder(form.WithValidationPolicy(validation.Advisory))
	b.Seed(adultPackage())

	if err := b.SetField(model.Path(0, model.FieldAgeFrom), 60); err != nil {
		t.Fatalf("advisory binder rejected write: %v", err)
	}
	issues := b.Issues()
	if len(issues) != 1 || issues[0].Path != "items.0.config.ageTo" {
		t.Fatalf("expected ordering issue on ageTo, got %#v", issues)
	}
}

func TestDirty_NeverClearsWithoutSeed(t *testing.T) {
	b := form.NewBinder()
	b.Seed(adultPackage())

	_ = b.SetField(model.Path(0, model.FieldAgeFrom), 20)
	_ = b.SetField(model.Path(0, model.FieldAgeFrom), 18)
	if !b.IsDirty() {
		t.Fatalf("restoring the seeded value must not clear dirty")
	}
}

func TestDuplicatePolicy(t *testing.T) {
	allow := form.NewBinder()
	allow.Seed(adultPackage())
	if err := allow.Append(adultPackage().Items[0]); err != nil {
		t.Fatalf("default policy rejected duplicate: %v", err)
	}
	if allow.Len() != 2 {
		t.Fatalf("expected duplicate to be appended")
	}

	reject := form.NewBinder(form.WithDuplicatePolicy(form.DuplicateReject))
	reject.Seed(adultPackage())
	if err := reject.Append(adultPackage().Items[0]); !errors.Is(err, form.ErrDuplicateSelection) {
		t.Fatalf("expected ErrDuplicateSelection, got %v", err)
	}
	if reject.Len() != 1 || reject.IsDirty() {
		t.Fatalf("rejected append changed state")
	}
}

func TestSync_ReseedsOnlyOnNewReference(t *testing.T) {
	b := form.NewBinder()
	first := adultPackage()

	if !b.Sync(&first) {
		t.Fatalf("expected first sync to seed")
	}
	_ = b.Append(childItem())

	if b.Sync(&first) {
		t.Fatalf("same reference must not reseed")
	}
	if b.Len() != 2 || !b.IsDirty() {
		t.Fatalf("edits lost on no-op sync")
	}

	second := model.Package{Items: []model.SelectedItem{}}
	if !b.Sync(&second) {
		t.Fatalf("expected new reference to seed")
	}
	if b.Len() != 0 || b.IsDirty() {
		t.Fatalf("expected empty clean binder, got len=%d dirty=%v", b.Len(), b.IsDirty())
	}
	if b.Revision() != 2 {
		t.Fatalf("expected revision 2, got %d", b.Revision())
	}
}

func TestObserver_ReceivesEvents(t *testing.T) {
	var kinds []form.EventKind
	b := form.NewBinder(form.WithObserver(form.ObserverFunc(func(evt form.Event) {
		kinds = append(kinds, evt.Kind)
	})))

	b.Seed(adultPackage())
	_ = b.Append(childItem())
	_ = b.SetField(model.Path(1, model.FieldAgeTo), 12)
	_ = b.SetField(model.Path(9, model.FieldAgeTo), 12)

	want := []form.EventKind{form.EventSeeded, form.EventAppended, form.EventFieldSet}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldHandle_SetString(t *testing.T) {
	b := form.NewBinder()
	b.Seed(adultPackage())
	h := b.Field(model.Path(0, model.FieldAgeTo))

	if h.Name() != "items.0.config.ageTo" {
		t.Fatalf("unexpected handle name %q", h.Name())
	}
	if err := h.SetString(" 65 "); err != nil {
		t.Fatalf("set string: %v", err)
	}
	if v, _ := h.Value(); v != 65 {
		t.Fatalf("expected 65, got %d", v)
	}

	fresh := form.NewBinder()
	fresh.Seed(adultPackage())
	if err := fresh.Field(model.Path(0, model.FieldAgeTo)).SetString("abc"); !errors.Is(err, form.ErrNotNumeric) {
		t.Fatalf("expected ErrNotNumeric, got %v", err)
	}
	if fresh.IsDirty() {
		t.Fatalf("rejected input dirtied the binder")
	}
}

func TestUnseededBinderIsEmptyAndClean(t *testing.T) {
	b := form.NewBinder()
	if b.Len() != 0 || b.IsDirty() || b.Items() == nil {
		t.Fatalf("unexpected initial state: len=%d dirty=%v", b.Len(), b.IsDirty())
	}
}
