package introspection

// MalformedSchemaError reports an input document that cannot be decoded
// into a Document: broken JSON, a missing __schema.types list, or a type
// definition without a name. It is fatal; callers abort with it.
type MalformedSchemaError struct {
	Reason string
	Err    error
}

func (e *MalformedSchemaError) Error() string {
	if e.Err != nil {
		return "malformed schema: " + e.Reason + ": " + e.Err.Error()
	}
	return "malformed schema: " + e.Reason
}

func (e *MalformedSchemaError) Unwrap() error { return e.Err }

// NotFoundError reports a schema input path that could not be read.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return "schema not found: " + e.Path + ": " + e.Err.Error()
}

func (e *NotFoundError) Unwrap() error { return e.Err }
