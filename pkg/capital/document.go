package capital

import "encoding/json"

// Document is a decoded JSON response body. When the body is not valid
// JSON, Text carries the raw payload instead, so callers never receive a
// decoding error from this layer.
type Document struct {
	Fields map[string]any
	Text   string
}

// IsJSON reports whether the body decoded as a JSON object.
func (d Document) IsJSON() bool {
	return d.Fields != nil
}

// Str returns a top-level string field, or "" when absent or not a string.
func (d Document) Str(key string) string {
	s, _ := d.Fields[key].(string)
	return s
}

// describe renders the document for error messages.
func (d Document) describe() string {
	if d.Fields == nil {
		return d.Text
	}
	b, err := json.Marshal(d.Fields)
	if err != nil {
		return d.Text
	}
	return string(b)
}

func decodeDocument(body []byte) Document {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return Document{Text: string(body)}
	}
	return Document{Fields: fields}
}
