package db

import (
	"time"

	"github.com/google/uuid"
)

// Job application status constants
const (
	StatusApplied       = "APPLIED"
	StatusInterviewPrep = "INTERVIEW_PREP"
	StatusInterviewing  = "INTERVIEWING"
	StatusOffer         = "OFFER"
	StatusRejected      = "REJECTED"
)

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusInterviewPrep, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Job represents a tracked job application
type Job struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	ApplicationDate  time.Time `json:"applicationDate"`
	Status           string    `json:"status"`
	JobURL           *string   `json:"jobUrl,omitempty"`
	SkillsRequired   []string  `json:"skillsRequired,omitempty"`
	JobRequirements  []string  `json:"jobRequirements,omitempty"`
	ExperienceNeeded *float64  `json:"experienceNeeded,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	Salary           *string   `json:"salary,omitempty"`
	Location         *string   `json:"location,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// JobCreateInput is used when creating a new job record
type JobCreateInput struct {
	Title            string
	Company          string
	ApplicationDate  time.Time
	Status           string
	JobURL           string
	SkillsRequired   []string
	JobRequirements  []string
	ExperienceNeeded *float64
	Notes            string
	Salary           string
	Location         string
}

// JobUpdateInput holds partial updates for a job record. Nil fields are
// left untouched.
type JobUpdateInput struct {
	Title            *string
	Company          *string
	ApplicationDate  *time.Time
	Status           *string
	JobURL           *string
	SkillsRequired   []string
	JobRequirements  []string
	ExperienceNeeded *float64
	Notes            *string
	Salary           *string
	Location         *string
}
