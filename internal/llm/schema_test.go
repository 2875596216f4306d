package llm

import (
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "Sample",
		Description: "You are a job posting details extractor.",
		Fields: []SchemaField{
			{Name: "title", Type: "string", Description: "The title of the job.", Required: true},
			{Name: "skillsRequired", Type: "[]string", Description: "A list of specific skills required for the role."},
			{Name: "experienceNeeded", Type: "number", Description: "number of years of experience"},
		},
	}
}

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt(sampleSchema(), "Senior Go developer wanted.")

	assert.True(t, strings.HasPrefix(prompt, "You are a job posting details extractor."))
	assert.Contains(t, prompt, "- title: The title of the job.")
	assert.Contains(t, prompt, "- skillsRequired:")
	assert.Contains(t, prompt, "Senior Go developer wanted.")
	// Document text comes after the field list
	assert.Greater(t, strings.Index(prompt, "Senior Go developer"), strings.Index(prompt, "- experienceNeeded"))
}

func TestToGenaiSchema(t *testing.T) {
	schema := sampleSchema()
	gs := schema.toGenaiSchema()

	require.Equal(t, genai.TypeObject, gs.Type)
	require.Len(t, gs.Properties, 3)

	assert.Equal(t, genai.TypeString, gs.Properties["title"].Type)
	assert.Equal(t, genai.TypeNumber, gs.Properties["experienceNeeded"].Type)

	arr := gs.Properties["skillsRequired"]
	require.Equal(t, genai.TypeArray, arr.Type)
	require.NotNil(t, arr.Items)
	assert.Equal(t, genai.TypeString, arr.Items.Type)

	assert.Equal(t, []string{"title"}, gs.Required)
}
