package commands

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/confkit"
	cerrors "github.com/thoreinstein/confkit/internal/errors"
)

// exitErr maps a library error onto the CLI exit code convention:
// I/O-level failures are system errors, everything else is on the user.
func exitErr(err error) error {
	var cerr *confkit.Error
	if errors.As(err, &cerr) {
		switch cerr.Kind() {
		case confkit.KindReadFailure, confkit.KindWriteFailure:
			return cerrors.NewSystemError(err, "")
		case confkit.KindNotFound:
			return cerrors.NewUserError(err, "check the file path")
		default:
			return cerrors.NewUserError(err, "")
		}
	}
	return cerrors.NewSystemError(err, "")
}

// parseFormatFlag converts a --format style flag value. Empty means
// "infer from the file extension".
func parseFormatFlag(s string) (confkit.Format, error) {
	if s == "" {
		return "", nil
	}
	return confkit.ParseFormat(s)
}

// flattenKeys returns the sorted dotted paths of every leaf in a decoded
// config tree.
func flattenKeys(tree map[string]any) []string {
	var keys []string
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			if child, ok := v.(map[string]any); ok && len(child) > 0 {
				walk(path, child)
				continue
			}
			keys = append(keys, path)
		}
	}
	walk("", tree)
	sort.Strings(keys)
	return keys
}

// lookupKey walks a dotted path through nested maps.
func lookupKey(tree map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	var cur any = tree
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[p]; !ok {
			return nil, false
		}
	}
	return cur, true
}
