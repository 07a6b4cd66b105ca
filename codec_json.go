package confkit

import "encoding/json"

func init() {
	registerCodec(FormatJSON, jsonCodec{})
}

// jsonCodec is the one codec present in every build.
type jsonCodec struct{}

func (jsonCodec) Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	// Trailing newline for POSIX compliance
	return append(data, '\n'), nil
}

func (jsonCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
