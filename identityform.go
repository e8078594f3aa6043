// Package identityform is the entry point for embedding the identity editor:
// it loads the catalog and package, wires a binder and renders the page.
package identityform

import (
	"context"
	"fmt"

	"github.com/goliatone/go-identityform/pkg/catalog"
	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/render"
	"github.com/goliatone/go-identityform/pkg/renderers/vanilla"
	"github.com/goliatone/go-identityform/pkg/source"
)

// RenderOptions aliases render.RenderOptions for callers that only import the
// root package.
type RenderOptions = render.RenderOptions

// FormState aliases model.FormState.
type FormState = model.FormState

// Package aliases model.Package.
type Package = model.Package

// Resources are the inputs of an editing session.
type Resources struct {
	Catalog *catalog.Catalog
	Package *model.Package
}

// LoadRequest names where the catalog and the package come from. Blank
// sources fall back to catalog.Default and DefaultPackage.
type LoadRequest struct {
	CatalogSource string
	PackageSource string
	Loader        *source.Loader
}

// LoadResources resolves the catalog first so the default package can refer
// to its ids.
func LoadResources(ctx context.Context, req LoadRequest) (Resources, error) {
	loader := req.Loader
	if loader == nil {
		loader = NewLoader()
	}

	var res Resources
	catalogSrc, err := source.Parse(req.CatalogSource)
	if err != nil {
		return Resources{}, fmt.Errorf("identityform: catalog source: %w", err)
	}
	if catalogSrc == nil {
		res.Catalog = catalog.Default()
	} else if res.Catalog, err = catalog.Load(ctx, loader, catalogSrc); err != nil {
		return Resources{}, err
	}

	packageSrc, err := source.Parse(req.PackageSource)
	if err != nil {
		return Resources{}, fmt.Errorf("identityform: package source: %w", err)
	}
	if packageSrc == nil {
		res.Package = DefaultPackage(res.Catalog)
		return res, nil
	}
	pkg, err := loader.LoadPackage(ctx, packageSrc)
	if err != nil {
		return Resources{}, err
	}
	res.Package = &pkg
	return res, nil
}

// DefaultPackage is the package used when none is configured: a single
// 成人 item aged 18 to 25. The id comes from cat when it lists 成人.
func DefaultPackage(cat *catalog.Catalog) *model.Package {
	option := model.IdentityOption{ID: "adult", Title: catalog.TitleAdult}
	if found, ok := cat.FindByTitle(catalog.TitleAdult); ok {
		option = found
	}
	item := model.NewPresetItem(option)
	item.Config = model.ConfigRange{AgeFrom: 18, AgeTo: 25}
	return &model.Package{Items: []model.SelectedItem{item}}
}

// NewEditor creates a binder synced to pkg and an add control over cat.
func NewEditor(cat *catalog.Catalog, pkg *model.Package, options ...form.Option) (*form.Binder, *form.AddControl) {
	binder := form.NewBinder(options...)
	binder.Sync(pkg)
	return binder, form.NewAddControl(cat, binder)
}

// RenderHTML renders the editor page with the vanilla renderer.
func RenderHTML(ctx context.Context, binder *form.Binder, ctl *form.AddControl, cat *catalog.Catalog, opts RenderOptions, options ...vanilla.Option) ([]byte, error) {
	renderer, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, render.BuildView(binder, ctl, cat, render.Labels{}), opts)
}
