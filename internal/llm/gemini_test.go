package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	// The session-summary shape, the only structured output the engine
	// requests.
	def := map[string]any{
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
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["summary"].Type != "STRING" {
		t.Fatalf("expected STRING for summary, got %s", schema.Properties["summary"].Type)
	}
	if schema.Properties["concepts"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for concepts, got %s", schema.Properties["concepts"].Type)
	}
	if schema.Properties["concepts"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for concepts items, got %s", schema.Properties["concepts"].Items.Type)
	}
	if len(schema.Properties["user_state"].Enum) != 4 {
		t.Fatalf("expected 4 enum values, got %d", len(schema.Properties["user_state"].Enum))
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiSchema_NestedObject(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lesson": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string"},
				},
				"required": []any{"title"},
			},
		},
		"required": []any{"lesson"},
	}

	schema := buildGeminiSchema(def)
	lesson := schema.Properties["lesson"]
	if lesson == nil || lesson.Type != "OBJECT" {
		t.Fatalf("expected nested OBJECT, got %+v", lesson)
	}
	if lesson.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING title, got %s", lesson.Properties["title"].Type)
	}
	if len(lesson.Required) != 1 || lesson.Required[0] != "title" {
		t.Fatalf("nested required = %v", lesson.Required)
	}
}
