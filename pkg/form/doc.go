// Package form implements the identity editor's state model. A Binder owns
// the ordered list of selected items and the dirty flag; it is seeded from an
// external model.Package and mutated by appends and single-field writes.
// AddControl and FieldHandle are the two input affordances built on top of
// it: the first commits catalog presets, the second reads and writes one age
// value addressed by a model.FieldPath.
//
// The Binder is not safe for concurrent use. It has a single owner; callers
// serving it from several goroutines must serialise access themselves.
package form
