package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/swapnilsaysloud/hireai-outreach/internal/outreach"
	"github.com/swapnilsaysloud/hireai-outreach/internal/types"
)

// handleSendOutreach fans one email out per selected candidate and returns
// the aggregated per-recipient report.
func (s *Server) handleSendOutreach(w http.ResponseWriter, r *http.Request) {
	if s.deps.Dispatcher == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Email service not configured", "")
		return
	}

	var req types.OutreachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	report, err := s.deps.Dispatcher.Dispatch(r.Context(), &req)
	if err != nil {
		s.dispatchError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// dispatchError maps dispatcher failures onto the API error contract. All
// dispatcher-side rejections happen before any send attempt, so they are
// client errors; anything else is a server failure.
func (s *Server) dispatchError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, outreach.ErrTooManyRecipients):
		s.errorResponse(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, outreach.ErrNoRecipients):
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields", "")
	case errors.As(err, &validationErrs):
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields", validationErrs.Error())
	default:
		log.Printf("outreach dispatch failed: %v", err)
		s.errorResponse(w, http.StatusBadRequest, err.Error(), "")
	}
}
