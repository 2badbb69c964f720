package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// summaryShape mirrors the session-summary payload the engine asks
// providers for: free-text summary, covered concepts, a state enum.
func summaryShape() *Schema {
	return &Schema{
		Name:        "summary-shape",
		Description: "A tutoring session summary",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"concepts": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"user_state": map[string]any{
					"type": "string",
					"enum": []any{"progressing", "stuck", "exploring", "reviewing"},
				},
			},
			"required": []any{"summary", "user_state"},
		},
	}
}

func TestValidateResponse_ValidPayload(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Worked through for-loops.","concepts":["loops","iteration"],"user_state":"progressing"}`)
	if err := validateResponse(summaryShape(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_OptionalFieldMayBeAbsent(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Short session.","user_state":"reviewing"}`)
	if err := validateResponse(summaryShape(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"summary":"No state reported."}`)
	err := validateResponse(summaryShape(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"summary":42,"user_state":"stuck"}`)
	err := validateResponse(summaryShape(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_UnknownEnumValue(t *testing.T) {
	raw := json.RawMessage(`{"summary":"fine","user_state":"bored"}`)
	err := validateResponse(summaryShape(), raw)
	if err == nil {
		t.Fatal("expected error for unknown user_state")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongArrayItemType(t *testing.T) {
	raw := json.RawMessage(`{"summary":"fine","concepts":[1,2],"user_state":"stuck"}`)
	if err := validateResponse(summaryShape(), raw); err == nil {
		t.Fatal("expected error for non-string concepts")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(summaryShape(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(summaryShape(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_CompiledSchemaIsReused(t *testing.T) {
	schema := summaryShape()
	raw := json.RawMessage(`{"summary":"again","user_state":"exploring"}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(schema, raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	compiledMu.Lock()
	_, ok := compiled[schema.Name]
	compiledMu.Unlock()
	if !ok {
		t.Fatal("expected compiled schema to be cached by name")
	}
}
