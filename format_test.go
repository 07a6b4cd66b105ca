package confkit

import (
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "toml", want: FormatTOML},
		{in: "xml", want: FormatXML},
		{in: "ini", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatExt(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, ".json"},
		{FormatYAML, ".yaml"},
		{FormatTOML, ".toml"},
		{FormatXML, ".xml"},
		{Format("ini"), ""},
	}

	for _, tt := range tests {
		if got := tt.format.Ext(); got != tt.want {
			t.Errorf("%v.Ext() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name     string
		explicit Format
		path     string
		want     Format
		wantKind Kind
	}{
		{
			name:     "explicit wins over extension",
			explicit: FormatJSON,
			path:     "cfg.yaml",
			want:     FormatJSON,
		},
		{
			name: "json extension",
			path: "cfg.json",
			want: FormatJSON,
		},
		{
			name: "yaml extension",
			path: "cfg.yaml",
			want: FormatYAML,
		},
		{
			name: "yml extension",
			path: "cfg.yml",
			want: FormatYAML,
		},
		{
			name: "toml extension",
			path: "cfg.toml",
			want: FormatTOML,
		},
		{
			name: "xml extension",
			path: "cfg.xml",
			want: FormatXML,
		},
		{
			name: "uppercase extension",
			path: "cfg.TOML",
			want: FormatTOML,
		},
		{
			name: "unknown extension falls back to default",
			path: "cfg.dat",
			want: DefaultFormat,
		},
		{
			name: "no extension falls back to default",
			path: "cfg",
			want: DefaultFormat,
		},
		{
			name:     "unknown explicit format",
			explicit: Format("ini"),
			path:     "cfg.ini",
			wantKind: KindUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantKind == "" {
				if _, ok := lookupCodec(tt.want); !ok {
					t.Skipf("%s codec not linked in this build", tt.want)
				}
			}
			got, cerr := resolveFormat(tt.explicit, tt.path, nil)
			if tt.wantKind != "" {
				if cerr == nil {
					t.Fatalf("resolveFormat(%v, %q) succeeded, want %v error", tt.explicit, tt.path, tt.wantKind)
				}
				if cerr.Kind() != tt.wantKind {
					t.Errorf("error kind = %v, want %v", cerr.Kind(), tt.wantKind)
				}
				if _, ok := cerr.Context().Get("format"); !ok {
					t.Error("error context missing format key")
				}
				return
			}
			if cerr != nil {
				t.Fatalf("resolveFormat(%v, %q) error: %v", tt.explicit, tt.path, cerr)
			}
			if got != tt.want {
				t.Errorf("resolveFormat(%v, %q) = %v, want %v", tt.explicit, tt.path, got, tt.want)
			}
		})
	}
}

func TestFormats_JSONAlwaysPresent(t *testing.T) {
	formats := Formats()
	if len(formats) == 0 {
		t.Fatal("Formats() returned nothing")
	}
	if formats[0] != FormatJSON {
		t.Errorf("Formats()[0] = %v, want %v", formats[0], FormatJSON)
	}
}
