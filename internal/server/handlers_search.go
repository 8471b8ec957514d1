package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/swapnilsaysloud/hireai-outreach/internal/types"
)

// SearchResponse is the body returned by POST /api/find-candidates.
type SearchResponse struct {
	Candidates []types.Candidate `json:"candidates"`
}

// handleFindCandidates forwards the free-text prompt to the semantic search
// collaborator and returns normalized candidate records.
func (s *Server) handleFindCandidates(w http.ResponseWriter, r *http.Request) {
	var req types.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job description is required", "")
		return
	}

	results, err := s.deps.Search.Find(r.Context(), req.Prompt)
	if err != nil {
		log.Printf("semantic search failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Error processing request", "")
		return
	}

	s.jsonResponse(w, http.StatusOK, SearchResponse{
		Candidates: s.normalizer.Normalize(results),
	})
}
