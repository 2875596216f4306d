package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jordan/job-tracker/internal/llm"
	"github.com/jordan/job-tracker/internal/schemas"
)

// ParseJob turns raw model output into a structured Job. Providers do not
// always honor the declared field types, so near-miss values are coerced
// before schema validation: numeric salaries become strings, string lists
// become slices, string experience values become numbers.
//
// When the output cannot be parsed at all, strict mode returns a
// ParseError; otherwise the raw output is preserved as a degenerate result
// in the jobDetails field so the caller never loses the model's answer.
func ParseJob(raw string, strict bool) (*Job, error) {
	cleaned := llm.CleanJSONBlock(raw)

	var fields map[string]any
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		if strict {
			return nil, &ParseError{Message: "output is not a JSON object", Cause: err}
		}
		return degenerateJob(raw), nil
	}

	coerceFields(fields)

	normalized, err := json.Marshal(fields)
	if err != nil {
		return nil, &ParseError{Message: "failed to re-encode coerced fields", Cause: err}
	}

	if err := schemas.ValidateExtractedJob(string(normalized)); err != nil {
		if strict {
			return nil, &ParseError{Message: "output does not match the job schema", Cause: err}
		}
		return degenerateJob(raw), nil
	}

	var job Job
	if err := json.Unmarshal(normalized, &job); err != nil {
		return nil, &ParseError{Message: "failed to decode job fields", Cause: err}
	}
	return &job, nil
}

// degenerateJob preserves unparseable model output as the job details.
func degenerateJob(raw string) *Job {
	return &Job{JobDetails: strings.TrimSpace(raw)}
}

func coerceFields(fields map[string]any) {
	if v, ok := fields["salary"]; ok {
		fields["salary"] = coerceString(v)
	}
	if v, ok := fields["experienceNeeded"]; ok {
		fields["experienceNeeded"] = coerceNumber(v)
	}
	for _, key := range []string{"jobRequirements", "skillsRequired"} {
		if v, ok := fields[key]; ok {
			if items := coerceStringList(v); items != nil {
				fields[key] = items
			} else {
				delete(fields, key)
			}
		}
	}

	// Unknown keys fail schema validation; drop anything the model added.
	known := map[string]bool{
		"title": true, "company": true, "jobDetails": true,
		"jobRequirements": true, "skillsRequired": true,
		"experienceNeeded": true, "location": true, "salary": true,
	}
	for key := range fields {
		if !known[key] {
			delete(fields, key)
		}
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}

func coerceNumber(v any) any {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return parsed
		}
		return nil
	default:
		return nil
	}
}

func coerceStringList(v any) []string {
	switch val := v.(type) {
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				items = append(items, s)
			}
		}
		return items
	case string:
		var items []string
		for _, line := range strings.Split(val, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				items = append(items, line)
			}
		}
		return items
	default:
		return nil
	}
}
