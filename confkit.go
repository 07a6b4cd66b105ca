// Package confkit reads and writes strongly typed configuration values
// without hard-coding the on-disk encoding. A value round-trips through a
// generic tree (maps, slices, scalars) so the same read/write pipeline
// serves JSON, YAML, TOML, and XML; the format is chosen explicitly, from
// the file extension, or falls back to JSON. Paths may use "~" and
// $VAR/${VAR} references. Every failure surfaces as *Error carrying a
// kind, a display-safe message, and the caller's diagnostic context.
//
// Operations are synchronous and keep no shared mutable state. Concurrent
// writes to the same path are not coordinated here; callers needing that
// must serialize access themselves.
package confkit

import (
	"fmt"
	"io/fs"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/confkit/pkg/fileutil"
)

// DefaultFilePerm is applied to files created by WriteConfig.
const DefaultFilePerm = 0o644

// WriteConfig serializes value to path. An empty format means infer from
// the expanded path's extension, defaulting to JSON. The file is written
// via a temp file and atomic rename, so a failure never leaves a partial
// file behind. ctx is merged into any error produced.
func WriteConfig(path string, format Format, value any, ctx Context) error {
	resolved := ExpandPath(path)
	logger.Info("writing config file", "path", resolved)

	f, cerr := resolveFormat(format, resolved, ctx)
	if cerr != nil {
		return cerr
	}
	codec, _ := lookupCodec(f)

	data, err := codec.Encode(value)
	if err != nil {
		return wrapError(KindEncodeFailure,
			fmt.Sprintf("failed to encode %s content: %v", f, err),
			err, ctx,
			Field{Key: "path", Value: resolved},
			Field{Key: "format", Value: string(f)})
	}

	if err := fileutil.AtomicWriteFile(resolved, data, DefaultFilePerm); err != nil {
		return wrapError(KindWriteFailure,
			fmt.Sprintf("failed to write file: %s", resolved),
			err, ctx,
			Field{Key: "path", Value: resolved},
			Field{Key: "format", Value: string(f)})
	}
	return nil
}

// ReadConfig reads path and decodes it into a value of type T. An empty
// format means infer from the expanded path's extension, defaulting to
// JSON. Every exported field of T must be present in the file; see
// FromGeneric for the shape rules.
func ReadConfig[T any](path string, format Format, ctx Context) (T, error) {
	var zero T
	resolved := ExpandPath(path)
	logger.Info("reading config file", "path", resolved)

	data, err := fileutil.ReadFileWithLimit(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, wrapError(KindNotFound,
				fmt.Sprintf("config file not found: %s", resolved),
				err, ctx, Field{Key: "path", Value: resolved})
		}
		return zero, wrapError(KindReadFailure,
			fmt.Sprintf("failed to read file: %s", resolved),
			err, ctx, Field{Key: "path", Value: resolved})
	}

	return decodeConfig[T](data, format, resolved, ctx)
}

// DecodeBytes decodes in-memory content in the given format into a value
// of type T. The format must be explicit since there is no path to infer
// from.
func DecodeBytes[T any](format Format, data []byte, ctx Context) (T, error) {
	return decodeConfig[T](data, format, "", ctx)
}

func decodeConfig[T any](data []byte, format Format, path string, ctx Context) (T, error) {
	var zero T

	f, cerr := resolveFormat(format, path, ctx)
	if cerr != nil {
		return zero, cerr
	}
	codec, _ := lookupCodec(f)

	detail := Context{{Key: "format", Value: string(f)}}
	if path != "" {
		detail = detail.With("path", path)
	}

	var tree any
	if err := codec.Decode(data, &tree); err != nil {
		return zero, wrapError(KindDecodeFailure,
			fmt.Sprintf("invalid %s content: %v", f, err),
			err, ctx, detail...)
	}

	var out T
	// XML scalars arrive as text and need coercion into typed fields.
	if err := bridgeTree(tree, &out, false, f == FormatXML); err != nil {
		return zero, shapeError(err, ctx, detail...)
	}
	return out, nil
}
