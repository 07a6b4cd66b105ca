package confkit

// Field is a single diagnostic key/value pair.
type Field struct {
	Key   string
	Value any
}

// Context is an ordered set of diagnostic key/value pairs. Callers attach
// one to read/write operations; every error produced during the operation
// carries the context back out, enriched with step-specific detail.
//
// A nil Context is valid and empty.
type Context []Field

// With returns a copy of c with key set to value. If key is already
// present its value is replaced in place, preserving the original order;
// otherwise the pair is appended.
func (c Context) With(key string, value any) Context {
	out := make(Context, len(c), len(c)+1)
	copy(out, c)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Field{Key: key, Value: value})
}

// Get returns the value for key and whether it is present.
func (c Context) Get(key string) (any, bool) {
	for _, f := range c {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (c Context) Keys() []string {
	keys := make([]string, len(c))
	for i, f := range c {
		keys[i] = f.Key
	}
	return keys
}

// mergeContext combines an outer (caller) context with an inner (more
// specific) one. Outer ordering is kept; on key collision the inner value
// wins; inner-only keys are appended in their own order.
func mergeContext(outer, inner Context) Context {
	out := make(Context, len(outer), len(outer)+len(inner))
	copy(out, outer)
	for _, f := range inner {
		out = out.With(f.Key, f.Value)
	}
	return out
}
