// Package source resolves the documents the identity editor is seeded from:
// the Package of already selected items and, optionally, the identity
// catalog. Documents can live on disk, inside an fs.FS, or behind an HTTP URL
// and may be encoded as JSON or YAML.
package source
