package confkit

import (
	"io"
	"log/slog"
)

// logger receives the package's operational logging. It defaults to a
// discard logger so library consumers opt in explicitly.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger directs confkit's internal logging to l. Passing nil is a
// no-op. Call this once at startup; it is not synchronized against
// in-flight read or write operations.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
