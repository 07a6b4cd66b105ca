//go:build !confkit_no_xml

package confkit

import (
	"github.com/clbanning/mxj/v2"
	"github.com/cockroachdb/errors"
)

func init() {
	registerCodec(FormatXML, xmlCodec{})
}

// xmlRoot is the document element wrapping the value tree. XML needs a
// single root; the other formats have no equivalent framing.
const xmlRoot = "config"

type xmlCodec struct{}

func (xmlCodec) Encode(v any) ([]byte, error) {
	tree, err := ToGeneric(v)
	if err != nil {
		return nil, err
	}
	m, ok := tree.(map[string]any)
	if !ok {
		return nil, errors.Newf("xml: top-level value must be a map or struct, got %T", v)
	}
	data, err := mxj.Map(m).XmlIndent("", "  ", xmlRoot)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode keeps every scalar as text. XML carries no type information, so
// guessing types here would corrupt string fields that look numeric; the
// bridge coerces text into typed targets instead.
func (xmlCodec) Decode(data []byte, v any) error {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return err
	}
	tree := map[string]any(m)
	// Unwrap the synthetic document root.
	if len(tree) == 1 {
		for _, inner := range tree {
			if im, ok := inner.(map[string]any); ok {
				tree = im
			}
		}
	}
	ptr, ok := v.(*any)
	if !ok {
		return errors.Newf("xml: decode target must be *any, got %T", v)
	}
	*ptr = tree
	return nil
}
