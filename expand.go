package confkit

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading "~" and $VAR/${VAR} environment references
// in path. References to variables that are not set stay literal,
// mirroring shell tolerance rather than failing the operation. The result
// is a pure function of the input and the current environment; no
// filesystem access happens here.
func ExpandPath(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	} else if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return expandEnv(path)
}

// expandEnv substitutes $VAR and ${VAR} references from the environment,
// keeping unresolved references byte-for-byte intact.
func expandEnv(s string) string {
	if !strings.ContainsRune(s, '$') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '$' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		if s[i+1] == '{' {
			j := strings.IndexByte(s[i+2:], '}')
			if j < 0 {
				b.WriteByte(s[i])
				continue
			}
			name := s[i+2 : i+2+j]
			if v, ok := os.LookupEnv(name); ok && name != "" {
				b.WriteString(v)
			} else {
				b.WriteString(s[i : i+j+3])
			}
			i += j + 2
			continue
		}
		j := i + 1
		for j < len(s) && isNameByte(s[j]) {
			j++
		}
		if j == i+1 {
			b.WriteByte(s[i])
			continue
		}
		if v, ok := os.LookupEnv(s[i+1 : j]); ok {
			b.WriteString(v)
		} else {
			b.WriteString(s[i:j])
		}
		i = j - 1
	}
	return b.String()
}

func isNameByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
