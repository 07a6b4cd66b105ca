//go:build !confkit_no_toml

package confkit

import "github.com/pelletier/go-toml/v2"

func init() {
	registerCodec(FormatTOML, tomlCodec{})
}

type tomlCodec struct{}

func (tomlCodec) Encode(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (tomlCodec) Decode(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
