package confkit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ToGeneric converts a typed value into the generic tree representation
// shared by every codec: maps, slices, and scalars. Structs and maps
// normalize to map[string]any, sequences to []any, scalars pass through.
func ToGeneric(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct, reflect.Map:
		out := map[string]any{}
		if err := mapstructure.Decode(rv.Interface(), &out); err != nil {
			return nil, err
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el, err := ToGeneric(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = el
		}
		return out, nil
	default:
		return rv.Interface(), nil
	}
}

// FromGeneric decodes a generic tree into a value of type T. Every
// exported field of T must be present in the tree; a missing field, or a
// scalar of the wrong kind, fails with KindShapeMismatch naming the
// offending fields. Unknown keys in the tree are tolerated.
func FromGeneric[T any](tree any) (T, error) {
	var out T
	if err := decodeGeneric(tree, &out, false); err != nil {
		var zero T
		return zero, shapeError(err, nil)
	}
	return out, nil
}

// FromGenericStrict is FromGeneric with strict shape checking: keys in
// the tree that have no counterpart in T are also a KindShapeMismatch.
func FromGenericStrict[T any](tree any) (T, error) {
	var out T
	if err := decodeGeneric(tree, &out, true); err != nil {
		var zero T
		return zero, shapeError(err, nil)
	}
	return out, nil
}

// decodeGeneric bridges a generic tree into target, which must be a
// pointer. Field matching is case-insensitive on the Go field name, or
// explicit via a `mapstructure` tag.
func decodeGeneric(tree any, target any, strict bool) error {
	return bridgeTree(tree, target, strict, false)
}

// bridgeTree is decodeGeneric plus optional scalar coercion. textScalars
// turns on weak string-to-number/bool conversion for encodings that store
// every scalar as text (XML).
func bridgeTree(tree any, target any, strict, textScalars bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		ErrorUnset:       true,
		ErrorUnused:      strict,
		WeaklyTypedInput: textScalars,
	})
	if err != nil {
		return err
	}
	return dec.Decode(tree)
}

// shapeError converts a bridge failure into a KindShapeMismatch Error,
// listing the offending field paths under the "fields" context key.
func shapeError(err error, ctx Context, detail ...Field) *Error {
	inner := Context(detail)
	if fields := mismatchFields(err); len(fields) > 0 {
		inner = inner.With("fields", strings.Join(fields, ", "))
	}
	return wrapError(KindShapeMismatch,
		fmt.Sprintf("config does not match target shape: %v", err),
		err, ctx, inner...)
}

// mismatchFields extracts the offending field paths from a bridge error.
// mapstructure joins one *DecodeError per failure: kind mismatches carry
// the dotted field path in Name(); unset and unknown fields are reported
// on the enclosing struct with the field list in the wrapped message.
func mismatchFields(err error) []string {
	var out []string
	seen := map[string]bool{}
	add := func(prefix, f string) {
		f = strings.TrimSpace(f)
		if f == "" {
			return
		}
		if prefix != "" {
			f = prefix + "." + f
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}

	var walk func(error)
	walk = func(e error) {
		if derr, ok := e.(*mapstructure.DecodeError); ok {
			msg := derr.Unwrap().Error()
			for _, marker := range []string{"has unset fields: ", "has invalid keys: "} {
				if rest, found := strings.CutPrefix(msg, marker); found {
					for _, f := range strings.Split(rest, ",") {
						add(derr.Name(), f)
					}
					return
				}
			}
			add("", derr.Name())
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}
