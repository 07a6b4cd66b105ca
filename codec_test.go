package confkit

import (
	"strings"
	"testing"
)

func TestJSONCodec_RoundTrip(t *testing.T) {
	codec, ok := lookupCodec(FormatJSON)
	if !ok {
		t.Fatal("JSON codec not registered")
	}

	in := map[string]any{
		"name":    "app",
		"port":    float64(8080),
		"debug":   true,
		"tags":    []any{"a", "b"},
		"limits":  map[string]any{"max": float64(10)},
		"comment": "",
	}

	data, err := codec.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Error("encoded JSON missing trailing newline")
	}

	var out any
	if err := codec.Decode(data, &out); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("decoded %T, want map", out)
	}
	if m["name"] != "app" || m["port"] != float64(8080) || m["debug"] != true {
		t.Errorf("round trip mismatch: %v", m)
	}
}

func TestJSONCodec_StructFieldOrder(t *testing.T) {
	codec, _ := lookupCodec(FormatJSON)

	data, err := codec.Encode(lockerConfig{User: "john", Password: "smith", Database: "example"})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := `{"user":"john","password":"smith","database":"example"}`
	if got := strings.TrimRight(string(data), "\n"); got != want {
		t.Errorf("Encode() = %s, want %s", got, want)
	}
}

func TestJSONCodec_DecodeInvalid(t *testing.T) {
	codec, _ := lookupCodec(FormatJSON)

	var out any
	if err := codec.Decode([]byte("{not json"), &out); err == nil {
		t.Error("Decode() accepted malformed input")
	}
}

func TestLookupCodec_Unknown(t *testing.T) {
	if _, ok := lookupCodec(Format("ini")); ok {
		t.Error("lookupCodec returned a codec for an unknown format")
	}
}
