package compose

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Compose form bounds.
const (
	MaxSubjectLength        = 100
	MinBodyLength           = 50
	MinJobDescriptionLength = 50
)

// Static defaults applied to a fresh session and restored whenever the AI
// template toggle changes.
const DefaultSubject = "Exciting Opportunity"

// DefaultBody is the static outreach template offered before any AI
// generation.
const DefaultBody = `Dear [Candidate Name],

Hope you're doing well.

I came across your profile and was very impressed with your skills and experience. We have an exciting opportunity that I believe aligns well with your background.

We are looking for talented individuals like yourself to join our innovative team.

Would you be open to a brief chat sometime next week to discuss this further?

Best regards,

[Your Name]`

// State is the compose session state.
type State string

// Session states. Editing is re-entered after any field change or a failed
// generation; Generated allows further edits without leaving the state.
const (
	StateIdle       State = "idle"
	StateEditing    State = "editing"
	StateGenerating State = "generating"
	StateGenerated  State = "generated"
	StateSubmitted  State = "submitted"
	StateFailed     State = "failed"
)

// emailShape is the basic address check applied to the reply-to field.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Session tracks one compose dialog from defaults through optional AI
// generation to submission.
type Session struct {
	state State

	ReplyToEmail   string
	SenderName     string
	Subject        string
	Body           string
	JobDescription string

	UseAI     bool
	generated bool
}

// NewSession returns an idle session holding the static defaults.
func NewSession() *Session {
	return &Session{
		state:   StateIdle,
		Subject: DefaultSubject,
		Body:    DefaultBody,
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Generated reports whether AI content has been applied to the session.
func (s *Session) Generated() bool {
	return s.generated
}

// SetReplyTo records the recruiter's reply-to address.
func (s *Session) SetReplyTo(addr string) { s.edit(); s.ReplyToEmail = addr }

// SetSenderName records the optional display name.
func (s *Session) SetSenderName(name string) { s.edit(); s.SenderName = name }

// SetSubject records the subject line.
func (s *Session) SetSubject(subject string) { s.edit(); s.Subject = subject }

// SetBody records the email body.
func (s *Session) SetBody(body string) { s.edit(); s.Body = body }

// SetJobDescription records the job description used for AI generation.
func (s *Session) SetJobDescription(jd string) { s.edit(); s.JobDescription = jd }

func (s *Session) edit() {
	if s.state == StateIdle || s.state == StateSubmitted || s.state == StateFailed {
		s.state = StateEditing
	}
}

// ToggleAI switches the AI template mode. Toggling in either direction
// restores the static default subject and body and clears any generated
// content, so flipping the switch twice is a clean round trip.
func (s *Session) ToggleAI(on bool) {
	s.UseAI = on
	s.Subject = DefaultSubject
	s.Body = DefaultBody
	s.generated = false
	s.edit()
}

// ErrJobDescriptionTooShort rejects generation before any external call when
// the job description lacks substance.
var ErrJobDescriptionTooShort = fmt.Errorf(
	"job description must be at least %d characters to generate an email", MinJobDescriptionLength)

// BeginGenerate moves the session into the in-flight generation state after
// local validation. No collaborator call happens unless it returns nil.
func (s *Session) BeginGenerate() error {
	if len(strings.TrimSpace(s.JobDescription)) < MinJobDescriptionLength {
		return ErrJobDescriptionTooShort
	}
	s.state = StateGenerating
	return nil
}

// ApplyGenerated installs AI-produced content. Only a whole result is ever
// applied; a failed generation leaves the session exactly as it was.
func (s *Session) ApplyGenerated(subject, body string) {
	s.Subject = subject
	s.Body = body
	s.generated = true
	s.state = StateGenerated
}

// FailGenerate reports a failed generation, returning to the editable state
// with no partial content applied.
func (s *Session) FailGenerate() {
	s.state = StateEditing
}

// Validate checks the compose form ahead of submission.
func (s *Session) Validate() error {
	if strings.TrimSpace(s.ReplyToEmail) == "" {
		return errors.New("reply-to email is required")
	}
	if !emailShape.MatchString(s.ReplyToEmail) {
		return errors.New("invalid reply-to email format")
	}
	if strings.TrimSpace(s.Subject) == "" {
		return errors.New("subject is required")
	}
	if len(s.Subject) > MaxSubjectLength {
		return fmt.Errorf("subject must be at most %d characters", MaxSubjectLength)
	}
	if strings.TrimSpace(s.Body) == "" {
		return errors.New("email body cannot be empty")
	}
	if len(s.Body) < MinBodyLength {
		return fmt.Errorf("email body must be at least %d characters", MinBodyLength)
	}
	if s.UseAI && !s.generated {
		if len(strings.TrimSpace(s.JobDescription)) < MinJobDescriptionLength {
			return ErrJobDescriptionTooShort
		}
	}
	return nil
}

// MarkSubmitted records a successful submission.
func (s *Session) MarkSubmitted() { s.state = StateSubmitted }

// MarkFailed records a failed submission; fields stay editable.
func (s *Session) MarkFailed() { s.state = StateFailed }
