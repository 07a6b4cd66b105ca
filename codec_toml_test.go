//go:build !confkit_no_toml

package confkit

import (
	"strings"
	"testing"
)

func TestTOMLCodec_RoundTrip(t *testing.T) {
	codec, ok := lookupCodec(FormatTOML)
	if !ok {
		t.Fatal("TOML codec not registered")
	}

	in := map[string]any{
		"name":  "app",
		"port":  int64(8080),
		"debug": true,
	}

	data, err := codec.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(string(data), "name = 'app'") {
		t.Errorf("unexpected TOML output:\n%s", data)
	}

	var out any
	if err := codec.Decode(data, &out); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("decoded %T, want map", out)
	}
	if m["name"] != "app" || m["port"] != int64(8080) || m["debug"] != true {
		t.Errorf("round trip mismatch: %v", m)
	}
}

func TestTOMLCodec_DecodeInvalid(t *testing.T) {
	codec, _ := lookupCodec(FormatTOML)

	var out any
	if err := codec.Decode([]byte("= broken ="), &out); err == nil {
		t.Error("Decode() accepted malformed input")
	}
}
