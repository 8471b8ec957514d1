package types

import (
	"github.com/go-playground/validator/v10"
)

// SearchRequest is the body of POST /api/find-candidates.
type SearchRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GenerateTemplateRequest is the body of POST /api/generate-email-template.
// The job description must carry enough substance for the model to work with.
type GenerateTemplateRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,min=50"`
	SenderName     string `json:"senderName" validate:"required"`
}

// GeneratePersonalizedRequest is the bulk variant sent to
// POST /api/generate-personalized-email: the same inputs plus the selected
// candidate summaries the template should speak to.
type GeneratePersonalizedRequest struct {
	Candidates     []CandidateSummary `json:"candidates" validate:"required,min=1,dive"`
	JobDescription string             `json:"jobDescription" validate:"required,min=50"`
	SenderName     string             `json:"senderName" validate:"required"`
}

// OutreachRequest is the body of POST /api/send-outreach. Candidates are full
// records, not ids, so placeholder substitution keeps working even if the
// search results the selection was drawn from are gone by send time.
type OutreachRequest struct {
	ReplyToEmail   string      `json:"replyToEmail" validate:"required,email"`
	SenderName     string      `json:"senderName,omitempty"`
	Subject        string      `json:"subject" validate:"required,max=100"`
	Body           string      `json:"body" validate:"required,min=50"`
	Candidates     []Candidate `json:"candidates" validate:"required,min=1,max=50"`
	IsPersonalized bool        `json:"isPersonalized"`
}

// OutreachResult records the outcome of one recipient's send attempt.
type OutreachResult struct {
	CandidateID    string `json:"candidateId"`
	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail"`
	Success        bool   `json:"success"`
	EmailID        string `json:"emailId,omitempty"`
	Error          string `json:"error,omitempty"`
	Personalized   bool   `json:"personalized,omitempty"`
}

// OutreachReport aggregates per-recipient results for one dispatch call.
type OutreachReport struct {
	Message      string           `json:"message"`
	Successful   []OutreachResult `json:"successful"`
	Failed       []OutreachResult `json:"failed"`
	TotalSent    int              `json:"totalSent"`
	TotalFailed  int              `json:"totalFailed"`
	Personalized bool             `json:"personalized"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateTemplateRequest using the validator.
func (r *GenerateTemplateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GeneratePersonalizedRequest using the validator.
func (r *GeneratePersonalizedRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the OutreachRequest using the validator.
func (r *OutreachRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
