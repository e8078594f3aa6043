// Package model defines the identity editor data model: catalog presets, the
// selected items with their age ranges, the externally supplied Package used
// to seed the editor, and the FieldPath addressing scheme renderers and
// transports use to reach a single editable value. Dotted paths of the form
// `items.<index>.config.<ageFrom|ageTo>` remain the wire representation (HTML
// input names, error keys) but are parsed into FieldPath values before they
// touch the item list.
package model
