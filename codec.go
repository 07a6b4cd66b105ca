package confkit

// Codec converts between values and one textual encoding. Encode accepts
// either a typed value or the generic tree; Decode fills v (typically a
// *any) with the generic tree form. Implementations must be safe for
// concurrent use.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// codecs is the registry of linked-in codecs. It is populated by init
// functions in the per-format files and never mutated afterwards, so
// concurrent reads need no locking.
var codecs = map[Format]Codec{}

func registerCodec(f Format, c Codec) {
	codecs[f] = c
}

func lookupCodec(f Format) (Codec, bool) {
	c, ok := codecs[f]
	return c, ok
}

// Formats returns the formats linked into this build, in a stable order.
func Formats() []Format {
	var out []Format
	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML, FormatXML} {
		if _, ok := codecs[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
