// Package extract runs the job posting extraction pipeline: normalize the
// input to plain text, prompt the model with a field schema, and parse the
// structured result.
package extract

import (
	"github.com/jordan/job-tracker/internal/llm"
	"github.com/jordan/job-tracker/internal/prompts"
)

// Job is the structured result of extracting a job posting.
// Field names follow the canonical API shape.
type Job struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	JobDetails       string   `json:"jobDetails"`
	JobRequirements  []string `json:"jobRequirements,omitempty"`
	SkillsRequired   []string `json:"skillsRequired,omitempty"`
	ExperienceNeeded *float64 `json:"experienceNeeded,omitempty"`
	Location         string   `json:"location,omitempty"`
	Salary           string   `json:"salary,omitempty"`
}

// JobSchema returns the extraction schema for job postings. The same
// definition drives both the prompt field list and the provider's
// structured-output schema.
func JobSchema() llm.ExtractionSchema {
	return llm.ExtractionSchema{
		Name:        "ExtractedJob",
		Description: prompts.MustGet("extraction.json", "extractor_instruction"),
		Fields: []llm.SchemaField{
			{Name: "title", Type: "string", Description: "The job title", Required: true},
			{Name: "company", Type: "string", Description: "The company offering the job", Required: true},
			{Name: "jobDetails", Type: "string", Description: "A summary of the role and its responsibilities", Required: true},
			{Name: "jobRequirements", Type: "[]string", Description: "The stated requirements for the role"},
			{Name: "skillsRequired", Type: "[]string", Description: "The skills the posting asks for"},
			{Name: "experienceNeeded", Type: "number", Description: "Years of experience needed, as a number"},
			{Name: "location", Type: "string", Description: "The job location"},
			{Name: "salary", Type: "string", Description: "The salary or salary range exactly as listed"},
		},
	}
}
