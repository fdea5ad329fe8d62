package resume

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Stored blobs (drafts, imported documents) carry no version field, so the
// schema is the only guard against decoding garbage into a session.

//go:embed resume.schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// ValidateStored checks a raw JSON blob against the document schema.
// A non-nil error means the blob must not be loaded; callers fall back to
// DefaultDocument instead of failing the session.
func ValidateStored(data []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema check: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("stored document rejected by schema: %s", strings.Join(msgs, "; "))
}

// DecodeStored validates and unmarshals a stored blob into a Document.
func DecodeStored(data []byte) (*Document, error) {
	if err := ValidateStored(data); err != nil {
		return nil, err
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	d.Normalize()
	return &d, nil
}
