// Package types provides type definitions for structured data used throughout the outreach platform.
package types

// Candidate is the canonical candidate record rendered in search results and
// targeted by outreach. Every field is populated during normalization; absent
// upstream data degrades to documented fallbacks rather than empty fields.
type Candidate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
	MatchScore     float64  `json:"matchScore"` // percentage in [0,100]
	ScoreSynthetic bool     `json:"scoreSynthetic,omitempty"`
	AvatarURL      string   `json:"avatarUrl,omitempty"`
	Location       string   `json:"location,omitempty"`
	Email          string   `json:"email"`
	Company        string   `json:"company"`
}

// CandidateSummary is the trimmed candidate view sent to the generative
// collaborator for the bulk personalized variant.
type CandidateSummary struct {
	Name     string   `json:"name" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Company  string   `json:"company" validate:"required"`
	Skills   []string `json:"skills"`
	Location string   `json:"location,omitempty"`
	Summary  string   `json:"summary"`
}

// Summarize projects a Candidate onto the fields the generative collaborator sees.
func (c Candidate) Summarize() CandidateSummary {
	return CandidateSummary{
		Name:     c.Name,
		Title:    c.Title,
		Company:  c.Company,
		Skills:   c.Skills,
		Location: c.Location,
		Summary:  c.Summary,
	}
}
