// Package validation holds the opt-in checks for selected identity items.
// The editor is permissive by default: age bounds, ordering and duplicate ids
// are only inspected when a Policy other than Permissive is configured.
package validation
