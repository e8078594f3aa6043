package identityform

import "github.com/goliatone/go-identityform/pkg/source"

// NewLoader constructs a package/catalog loader. Remote sources stay disabled
// unless source.WithHTTP or source.WithHTTPClient is passed.
func NewLoader(options ...source.Option) *source.Loader {
	return source.NewLoader(options...)
}
