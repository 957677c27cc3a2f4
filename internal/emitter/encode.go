package emitter

import (
	"bytes"
	"encoding/json"
)

// Encode renders doc as two-space indented JSON with a trailing newline.
// Object keys come out sorted because every document type declares its
// fields in key order and maps are sorted by encoding/json.
func Encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
