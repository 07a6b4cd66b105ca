package confkit

// Kind categorizes a configuration failure. Callers branch on the kind;
// the message is for display and the context for structured logging.
type Kind string

const (
	// KindUnsupportedFormat indicates the requested or inferred format has
	// no codec linked into this build.
	KindUnsupportedFormat Kind = "unsupported_format"

	// KindEncodeFailure indicates the codec rejected the value.
	KindEncodeFailure Kind = "encode_failure"

	// KindDecodeFailure indicates the file content is not valid for the
	// selected format.
	KindDecodeFailure Kind = "decode_failure"

	// KindShapeMismatch indicates the decoded tree does not fit the
	// caller's target type.
	KindShapeMismatch Kind = "shape_mismatch"

	// KindNotFound indicates the read target does not exist.
	KindNotFound Kind = "not_found"

	// KindReadFailure indicates an I/O-level read failure.
	KindReadFailure Kind = "read_failure"

	// KindWriteFailure indicates an I/O-level write failure.
	KindWriteFailure Kind = "write_failure"
)

// Error is the only error type that crosses the package boundary. It
// carries a failure kind, a display-safe message, and the merged
// diagnostic context. Instances are immutable; WithContext returns a copy.
type Error struct {
	kind    Kind
	message string
	context Context
	cause   error
}

// NewError constructs an Error with the given kind, message, and context.
func NewError(kind Kind, message string, ctx Context) *Error {
	return &Error{kind: kind, message: message, context: ctx}
}

// Kind returns the failure category.
func (e *Error) Kind() Kind { return e.kind }

// Error returns the message. It is safe to show directly to users.
func (e *Error) Error() string { return e.message }

// Context returns a copy of the diagnostic context.
func (e *Error) Context() Context {
	out := make(Context, len(e.context))
	copy(out, e.context)
	return out
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.cause }

// WithContext returns a copy of e with ctx merged in. The existing
// (inner) context wins on key collisions, so detail discovered close to
// the failure is never overwritten by an outer layer's re-wrap.
func (e *Error) WithContext(ctx Context) *Error {
	return &Error{
		kind:    e.kind,
		message: e.message,
		context: mergeContext(ctx, e.context),
		cause:   e.cause,
	}
}

// wrapError converts an underlying failure into an *Error, merging the
// caller context with step detail. The cause's text is recorded under the
// "origin" key so it survives into structured logs.
func wrapError(kind Kind, message string, cause error, ctx Context, detail ...Field) *Error {
	inner := Context(detail)
	if cause != nil {
		inner = inner.With("origin", cause.Error())
	}
	return &Error{
		kind:    kind,
		message: message,
		context: mergeContext(ctx, inner),
		cause:   cause,
	}
}
