package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/goliatone/go-identityform/pkg/form"
)

// New creates the application logger. It writes to stderr so stdout stays
// free for rendered output, and standardizes the "error" key to "err".
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// BinderObserver logs every binder mutation at debug level.
func BinderObserver(logger *slog.Logger) form.Observer {
	if logger == nil {
		logger = NewNop()
	}
	return form.ObserverFunc(func(evt form.Event) {
		attrs := []any{
			"revision", evt.Revision,
			"len", evt.Len,
			"dirty", evt.Dirty,
		}
		switch evt.Kind {
		case form.EventAppended:
			attrs = append(attrs, "index", evt.Index, "item", evt.ItemID)
		case form.EventFieldSet:
			attrs = append(attrs, "index", evt.Index, "item", evt.ItemID, "field", string(evt.Field), "value", evt.Value)
		}
		logger.Debug("binder "+string(evt.Kind), attrs...)
	})
}
