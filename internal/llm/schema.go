// Package llm - schema.go provides generic schema-constrained extraction support.
package llm

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It renders both the prompt field list and the provider response schema,
// so the two can never drift apart.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ExtractedJob")
	Description string        // Prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "number", "[]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n")
	sb.WriteString("The output should be a JSON object with the following fields:\n")
	for _, field := range schema.Fields {
		sb.WriteString(fmt.Sprintf("- %s: %s", field.Name, field.Description))
		sb.WriteString("\n")
	}
	sb.WriteString("Provided job posting text:\n")
	sb.WriteString(inputText)
	sb.WriteString("\n")

	return sb.String()
}

// toGenaiSchema converts the extraction schema to the provider's
// structured-output schema so responses come back as typed JSON.
func (s *ExtractionSchema) toGenaiSchema() *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Fields))
	var required []string

	for _, field := range s.Fields {
		props[field.Name] = fieldSchema(field.Type)
		if field.Required {
			required = append(required, field.Name)
		}
	}

	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   required,
	}
}

func fieldSchema(typeHint string) *genai.Schema {
	switch typeHint {
	case "number":
		return &genai.Schema{Type: genai.TypeNumber}
	case "[]string":
		return &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		}
	default:
		return &genai.Schema{Type: genai.TypeString}
	}
}
