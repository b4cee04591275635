package card

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// Recognized field names that map to fixed slots in the rendered card.
// Anything else is a leftover field and renders generically.
var RecognizedKeys = []string{
	"name", "title", "company", "email", "phone", "location",
	"photo_url", "logo_url", "domain",
}

// ParseError wraps a failure to interpret a block body as a contact record.
type ParseError struct{ Err error }

func (e *ParseError) Error() string { return "invalid contact record: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// Record is the parsed key/value data for one card instance. Keys keep their
// authored order so leftover fields render in discovery order. Values are
// coerced to strings at this boundary; numbers keep their scalar spelling.
type Record struct {
	fields map[string]string
	order  []string
}

// Parse decodes a YAML mapping of flat key -> scalar pairs. An empty or null
// document yields (nil, nil); callers substitute Default(). Null-valued keys
// are dropped, non-scalar values are coerced to their YAML text.
func Parse(src string) (*Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{Err: errors.New("expected a key/value mapping")}
	}

	r := &Record{fields: make(map[string]string, len(root.Content)/2)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		val := root.Content[i+1]
		if val.Kind == yaml.ScalarNode && val.Tag == "!!null" {
			continue
		}
		if _, dup := r.fields[key]; dup {
			continue // first occurrence wins
		}
		r.fields[key] = coerce(val)
		r.order = append(r.order, key)
	}
	return r, nil
}

// coerce flattens a YAML value node to its string form. Scalars keep their
// spelling (5551234567 stays "5551234567"); anything nested is re-encoded.
func coerce(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Default is the sample record rendered when a block parses to nothing, so
// the renderer never operates on an empty record.
func Default() *Record {
	r := &Record{fields: make(map[string]string, 6)}
	for _, kv := range [][2]string{
		{"name", "John Doe"},
		{"title", "The Everyman"},
		{"company", "Acme Inc."},
		{"email", "john.doe@example.com"},
		{"phone", "5551234567"},
		{"location", "Nowhere, OK"},
	} {
		r.fields[kv[0]] = kv[1]
		r.order = append(r.order, kv[0])
	}
	return r
}

// Get returns the field value, or "" when absent.
func (r *Record) Get(key string) string { return r.fields[key] }

// Has reports whether the field is present.
func (r *Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Consume removes the field from the record and returns its value. The
// direct-construction renderer consumes each slot before the leftover pass.
func (r *Record) Consume(key string) string {
	v, ok := r.fields[key]
	if !ok {
		return ""
	}
	delete(r.fields, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return v
}

// Keys returns the remaining field names in authored order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of remaining fields.
func (r *Record) Len() int { return len(r.fields) }

// Leftovers returns field names not in the recognized set, in authored order.
func (r *Record) Leftovers() []string {
	known := make(map[string]struct{}, len(RecognizedKeys))
	for _, k := range RecognizedKeys {
		known[k] = struct{}{}
	}
	var out []string
	for _, k := range r.order {
		if _, ok := known[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
