package introspection

import (
	"os"
)

// Load reads a schema file and decodes it, auto-detecting introspection
// JSON versus SDL. A missing or unreadable file is a *NotFoundError; a
// payload in neither format is a *MalformedSchemaError.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	return Detect(raw)
}

// Detect decodes a raw schema payload in whichever format it is in.
func Detect(raw []byte) (*Document, error) {
	if LooksLikeIntrospection(raw) {
		return Parse(raw)
	}
	if LooksLikeSDL(raw) {
		return ParseSDL(raw)
	}
	return nil, &MalformedSchemaError{Reason: "neither introspection JSON nor SDL"}
}
