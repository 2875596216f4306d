package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jordan/job-tracker/internal/extract"
)

// maxUploadBytes bounds job posting file uploads.
const maxUploadBytes = 10 << 20

// SummarizeJobRequest is the request body for /api/ai/summarize-job
type SummarizeJobRequest struct {
	TextData string `json:"textData" validate:"required"`
}

// SummarizeURLRequest is the request body for /api/ai/summarize-url
type SummarizeURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// handleSummarizeJob extracts structured job details from pasted text
func (s *Server) handleSummarizeJob(w http.ResponseWriter, r *http.Request) {
	var req SummarizeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		verr := validationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	s.runExtraction(w, r, extract.Request{Text: req.TextData})
}

// handleSummarizeURL fetches a posting page and extracts job details
func (s *Server) handleSummarizeURL(w http.ResponseWriter, r *http.Request) {
	var req SummarizeURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		verr := validationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	s.runExtraction(w, r, extract.Request{URL: req.URL})
}

// handleSummarizeFile extracts job details from an uploaded file, or from
// the textData form field when no file is attached.
func (s *Server) handleSummarizeFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		textData := r.FormValue("textData")
		if textData == "" {
			s.errorResponse(w, http.StatusBadRequest, "Either file or textData is required")
			return
		}
		s.runExtraction(w, r, extract.Request{Text: textData})
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid file upload")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	s.runExtraction(w, r, extract.Request{
		File: &extract.FileInput{
			Data:     data,
			MimeType: header.Header.Get("Content-Type"),
		},
	})
}

// runExtraction runs the pipeline and writes the result or a mapped error.
func (s *Server) runExtraction(w http.ResponseWriter, r *http.Request, req extract.Request) {
	job, err := s.pipeline.Run(r.Context(), req)
	if err != nil {
		log.Printf("[extract] request failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// validationError converts validator errors into the server error taxonomy.
func validationError(err error) *ErrValidation {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Report first validation error for simplicity
			ve := validationErrors[0]
			return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
		}
	}
	return &ErrValidation{Field: "request", Message: "invalid"}
}
