package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jordan/job-tracker/internal/db"
)

// ---------------------------------------------------------------------
// Job Handlers
// ---------------------------------------------------------------------

// CreateJobRequest is the request body for POST /jobs
type CreateJobRequest struct {
	Title            string    `json:"title" validate:"required"`
	Company          string    `json:"company" validate:"required"`
	ApplicationDate  time.Time `json:"applicationDate" validate:"required"`
	Status           string    `json:"status"`
	JobURL           string    `json:"jobUrl"`
	SkillsRequired   []string  `json:"skillsRequired"`
	JobRequirements  []string  `json:"jobRequirements"`
	ExperienceNeeded *float64  `json:"experienceNeeded"`
	Notes            string    `json:"notes"`
	Salary           string    `json:"salary"`
	Location         string    `json:"location"`
}

// UpdateJobRequest is the request body for PATCH /jobs/{id}.
// Absent fields are left unchanged.
type UpdateJobRequest struct {
	Title            *string    `json:"title"`
	Company          *string    `json:"company"`
	ApplicationDate  *time.Time `json:"applicationDate"`
	Status           *string    `json:"status"`
	JobURL           *string    `json:"jobUrl"`
	SkillsRequired   []string   `json:"skillsRequired"`
	JobRequirements  []string   `json:"jobRequirements"`
	ExperienceNeeded *float64   `json:"experienceNeeded"`
	Notes            *string    `json:"notes"`
	Salary           *string    `json:"salary"`
	Location         *string    `json:"location"`
}

// requireDB guards job endpoints when no database is configured.
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database is not configured")
		return false
	}
	return true
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	jobs, err := s.db.ListJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, jobs)
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		verr := validationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}
	if req.Status != "" && !db.ValidStatus(req.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid status: "+req.Status)
		return
	}

	job, err := s.db.CreateJob(r.Context(), &db.JobCreateInput{
		Title:            req.Title,
		Company:          req.Company,
		ApplicationDate:  req.ApplicationDate,
		Status:           req.Status,
		JobURL:           req.JobURL,
		SkillsRequired:   req.SkillsRequired,
		JobRequirements:  req.JobRequirements,
		ExperienceNeeded: req.ExperienceNeeded,
		Notes:            req.Notes,
		Salary:           req.Salary,
		Location:         req.Location,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status != nil && !db.ValidStatus(*req.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid status: "+*req.Status)
		return
	}

	job, err := s.db.UpdateJob(r.Context(), jobID, &db.JobUpdateInput{
		Title:            req.Title,
		Company:          req.Company,
		ApplicationDate:  req.ApplicationDate,
		Status:           req.Status,
		JobURL:           req.JobURL,
		SkillsRequired:   req.SkillsRequired,
		JobRequirements:  req.JobRequirements,
		ExperienceNeeded: req.ExperienceNeeded,
		Notes:            req.Notes,
		Salary:           req.Salary,
		Location:         req.Location,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	deleted, err := s.db.DeleteJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
