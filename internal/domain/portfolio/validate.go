package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidFormat = errors.New("invalid document format")

// Sections every document must carry, with the JSON kind expected for each.
var requiredSections = []struct {
	key  string
	kind string // "object", "array" or "string-array"
}{
	{"personal", "object"},
	{"theme", "object"},
	{"socials", "array"},
	{"projects", "array"},
	{"stack", "array"},
	{"experience", "array"},
	{"services", "array"},
	{"process", "array"},
	{"gameSettings", "object"},
	{"pricing", "array"},
	{"faqs", "array"},
	{"testimonials", "array"},
}

// Parse decodes a raw document and validates its structural shape: every
// top-level section present, each of the right JSON kind, and the theme
// triple populated together. Merely parsing is not enough to replace the
// whole repository state.
func Parse(raw []byte) (Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	for _, section := range requiredSections {
		body, ok := probe[section.key]
		if !ok {
			return Document{}, fmt.Errorf("%w: missing required section %q", ErrInvalidFormat, section.key)
		}
		if err := checkKind(section.key, section.kind, body); err != nil {
			return Document{}, err
		}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Document{}, fmt.Errorf("%w: field %q expects %s", ErrInvalidFormat, typeErr.Field, typeErr.Type)
		}
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if doc.Theme.Primary == "" || doc.Theme.Secondary == "" || doc.Theme.Hex == "" {
		return Document{}, fmt.Errorf("%w: theme must carry primary, secondary and hex together", ErrInvalidFormat)
	}

	doc.normalize()
	return doc, nil
}

func checkKind(key, kind string, body json.RawMessage) error {
	var first byte
	for _, b := range body {
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			first = b
			break
		}
	}
	switch kind {
	case "object":
		if first != '{' {
			return fmt.Errorf("%w: section %q must be an object", ErrInvalidFormat, key)
		}
	case "array":
		if first != '[' {
			return fmt.Errorf("%w: section %q must be an array", ErrInvalidFormat, key)
		}
	}
	return nil
}
