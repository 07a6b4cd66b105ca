//go:build !confkit_no_yaml

package confkit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func init() {
	registerCodec(FormatYAML, yamlCodec{})
}

type yamlCodec struct{}

func (yamlCodec) Encode(v any) (data []byte, err error) {
	// yaml.Marshal panics on unmarshalable types; recover and return error
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("marshaling yaml: %v", r)
		}
	}()

	data, err = yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

func (yamlCodec) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
