package confkit

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Format identifies a configuration file encoding.
type Format string

const (
	// FormatJSON is always available.
	FormatJSON Format = "json"

	// FormatYAML is available unless built with the confkit_no_yaml tag.
	FormatYAML Format = "yaml"

	// FormatTOML is available unless built with the confkit_no_toml tag.
	FormatTOML Format = "toml"

	// FormatXML is available unless built with the confkit_no_xml tag.
	FormatXML Format = "xml"
)

// DefaultFormat is used when no explicit format is given and the path's
// extension is not recognized.
const DefaultFormat = FormatJSON

// formatExtensions maps file extensions to formats. The table is static
// and lists every format confkit knows about, including ones whose codec
// may not be linked into the current build; availability is checked
// against the codec registry at resolution time.
var formatExtensions = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
	".xml":  FormatXML,
}

// ParseFormat converts a user-supplied name ("json", "yaml", "yml",
// "toml", "xml") into a Format. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	}
	return "", errors.Newf("unknown format %q (valid: json, yaml, toml, xml)", s)
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Ext returns the canonical file extension for the format, including the
// leading dot.
func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	case FormatTOML:
		return ".toml"
	case FormatXML:
		return ".xml"
	}
	return ""
}

// resolveFormat applies the selection precedence: an explicit format wins;
// otherwise the path's extension is looked up; otherwise DefaultFormat.
// The result always names a codec linked into this build, or the call
// fails with KindUnsupportedFormat. There is no silent fallback: a known
// extension whose codec is absent is an error, not a switch to JSON.
func resolveFormat(explicit Format, path string, ctx Context) (Format, *Error) {
	f := explicit
	if f == "" {
		ext := strings.ToLower(filepath.Ext(path))
		var ok bool
		if f, ok = formatExtensions[ext]; !ok {
			f = DefaultFormat
		}
	}
	if _, ok := lookupCodec(f); !ok {
		return "", NewError(KindUnsupportedFormat,
			fmt.Sprintf("format %s is not supported by this build", f),
			mergeContext(ctx, Context{{Key: "format", Value: string(f)}, {Key: "path", Value: path}}))
	}
	return f, nil
}
