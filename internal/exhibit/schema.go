package exhibit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	// ErrEmptyResponse is returned when the API produced no text.
	ErrEmptyResponse = errors.New("api returned an empty response")
	// ErrMalformedResponse is returned when the text is not a valid placard.
	ErrMalformedResponse = errors.New("api returned a malformed response")
)

var (
	dataFields  = []string{"scientificName", "dangerLevel", "classification", "description", "funFact", "stats"}
	statsFields = []string{"stamina", "intelligence", "laziness", "charm"}
)

// ResponseSchema returns the structured-output contract requested from the
// API. Each call builds a fresh schema so callers may not share mutations.
func ResponseSchema() *openapi3.Schema {
	stats := openapi3.NewObjectSchema()
	for _, name := range statsFields {
		stats.WithProperty(name, openapi3.NewFloat64Schema())
	}
	stats.WithRequired(statsFields)

	schema := openapi3.NewObjectSchema()
	for _, name := range dataFields[:len(dataFields)-1] {
		schema.WithProperty(name, openapi3.NewStringSchema())
	}
	schema.WithProperty("stats", stats)
	schema.WithRequired(dataFields)
	return schema
}

var decodeSchema = ResponseSchema()

// Decode parses response text into Data. Empty text and anything that does
// not satisfy ResponseSchema are errors; a partial Data is never returned.
func Decode(text string) (Data, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Data{}, ErrEmptyResponse
	}

	var raw any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Data{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := decodeSchema.VisitJSON(raw, openapi3.MultiErrors(), openapi3.SetSchemaErrorMessageCustomizer(schemaErrorText)); err != nil {
		return Data{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var data Data
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		return Data{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return data, nil
}

// schemaErrorText renders a validation failure as its JSON pointer and
// reason. kin-openapi's default text appends the whole schema and value.
func schemaErrorText(err *openapi3.SchemaError) string {
	reason := err.Reason
	switch {
	case err.Origin != nil:
		reason = err.Origin.Error()
	case reason == "":
		reason = fmt.Sprintf("does not match %q", err.SchemaField)
	}
	return "/" + strings.Join(err.JSONPointer(), "/") + ": " + reason
}
