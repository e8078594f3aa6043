package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-identityform/pkg/model"
)

// Options configures how a Loader resolves sources.
type Options struct {
	// FileSystem backs FromFS sources.
	FileSystem fs.FS
	// HTTPClient enables URL sources. Nil disables them unless AllowHTTP is set.
	HTTPClient *http.Client
	// AllowHTTP enables URL sources with a default client.
	AllowHTTP bool
	// RequestTimeout bounds each HTTP fetch when positive.
	RequestTimeout time.Duration
}

// Option mutates Options prior to construction.
type Option func(*Options)

// WithFileSystem injects an fs.FS for FromFS sources.
func WithFileSystem(files fs.FS) Option {
	return func(opts *Options) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for URL sources.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

// WithHTTP enables URL sources using a default client and optional timeout.
func WithHTTP(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.AllowHTTP = true
		opts.RequestTimeout = timeout
	}
}

// Loader fetches raw documents and decodes packages.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

// NewLoader constructs a Loader.
func NewLoader(options ...Option) *Loader {
	cfg := Options{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	var client *http.Client
	switch {
	case cfg.HTTPClient != nil:
		clone := *cfg.HTTPClient
		if cfg.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = cfg.RequestTimeout
		}
		client = &clone
	case cfg.AllowHTTP:
		client = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return &Loader{
		fs:      cfg.FileSystem,
		http:    client,
		timeout: cfg.RequestTimeout,
	}
}

// ErrNilSource is returned when a load is attempted without a source, e.g.
// with the result of Parse on blank input.
var ErrNilSource = errors.New("source: source is nil")

// Fetch returns the raw bytes behind src.
func (l *Loader) Fetch(ctx context.Context, src Source) ([]byte, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	switch src.Kind() {
	case KindFile:
		return loadFile(ctx, src.Location())
	case KindFS:
		return loadFromFS(ctx, l.fs, src.Location())
	case KindURL:
		if l.http == nil {
			return nil, errors.New("source: http support disabled")
		}
		return loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		return nil, fmt.Errorf("source: unsupported kind %q", src.Kind())
	}
}

// LoadPackage fetches and decodes a Package.
func (l *Loader) LoadPackage(ctx context.Context, src Source) (model.Package, error) {
	if src == nil {
		return model.Package{}, fmt.Errorf("source: load package: %w", ErrNilSource)
	}
	data, err := l.Fetch(ctx, src)
	if err != nil {
		return model.Package{}, fmt.Errorf("source: load package %s: %w", src.Location(), err)
	}
	return DecodePackage(DetectFormat(src, data), data)
}

// DecodePackage decodes a Package payload, defaulting missing item types to
// PRESET and cleaning display names.
func DecodePackage(format Format, data []byte) (model.Package, error) {
	var pkg model.Package
	if err := Decode(format, data, &pkg); err != nil {
		return model.Package{}, fmt.Errorf("source: decode package: %w", err)
	}
	if pkg.Items == nil {
		pkg.Items = []model.SelectedItem{}
	}
	for i := range pkg.Items {
		item := &pkg.Items[i]
		if item.ID == "" {
			return model.Package{}, fmt.Errorf("source: decode package: item %d has no id", i)
		}
		if item.Type == "" {
			item.Type = model.ItemTypePreset
		}
		item.Name = SanitizeText(item.Name)
	}
	return pkg, nil
}

// Decode unmarshals JSON or YAML into out.
func Decode(format Format, data []byte, out any) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(data, out)
	case FormatYAML:
		return yaml.Unmarshal(data, out)
	default:
		return fmt.Errorf("source: unsupported format %q", format)
	}
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("source: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("source: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("source: fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(filesystem, name)
}

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	reqCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("source: unexpected status " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}
