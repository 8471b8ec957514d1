package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/swapnilsaysloud/hireai-outreach/internal/llm"
	"github.com/swapnilsaysloud/hireai-outreach/internal/types"
)

// GenerateResponse is the body returned by the generation endpoints.
type GenerateResponse struct {
	Subject       string `json:"subject"`
	EmailTemplate string `json:"emailTemplate"`
}

// handleGenerateTemplate produces an outreach template from a job
// description via the generative collaborator.
func (s *Server) handleGenerateTemplate(w http.ResponseWriter, r *http.Request) {
	if s.deps.Generator == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Gemini API key not configured", "")
		return
	}

	var req types.GenerateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields", err.Error())
		return
	}

	tmpl, err := s.deps.Generator.Generate(r.Context(), req.JobDescription, req.SenderName)
	if err != nil {
		s.generationError(w, err, "Failed to generate email template")
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		Subject:       tmpl.Subject,
		EmailTemplate: tmpl.EmailTemplate,
	})
}

// handleGeneratePersonalized is the bulk variant: the template also reflects
// the selected candidates' backgrounds.
func (s *Server) handleGeneratePersonalized(w http.ResponseWriter, r *http.Request) {
	if s.deps.Generator == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Gemini API key not configured", "")
		return
	}

	var req types.GeneratePersonalizedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields", err.Error())
		return
	}

	tmpl, err := s.deps.Generator.GenerateBulk(r.Context(), req.Candidates, req.JobDescription, req.SenderName)
	if err != nil {
		s.generationError(w, err, "Failed to generate personalized email")
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		Subject:       tmpl.Subject,
		EmailTemplate: tmpl.EmailTemplate,
	})
}

// generationError distinguishes an unparseable model response from an
// upstream call failure; both are 500s with distinct user-facing messages.
func (s *Server) generationError(w http.ResponseWriter, err error, fallback string) {
	log.Printf("generation failed: %v", err)
	if errors.Is(err, llm.ErrNoJSONObject) {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse AI response. Please try again.", "")
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, fallback, err.Error())
}
