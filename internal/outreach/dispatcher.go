// Package outreach fans outreach emails out to selected candidates and
// aggregates per-recipient outcomes.
package outreach

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/swapnilsaysloud/hireai-outreach/internal/compose"
	"github.com/swapnilsaysloud/hireai-outreach/internal/email"
	"github.com/swapnilsaysloud/hireai-outreach/internal/types"
)

// MaxRecipients bounds the fan-out cost of one dispatch against the delivery
// provider. Requests above this are rejected wholesale before any send.
const MaxRecipients = 50

// invalidEmailMessage is the per-recipient error recorded when an address
// fails the shape check; delivery is not attempted for that recipient.
const invalidEmailMessage = "Invalid email format"

// ErrTooManyRecipients rejects dispatches targeting more than MaxRecipients.
var ErrTooManyRecipients = fmt.Errorf("cannot send to more than %d candidates at once", MaxRecipients)

// ErrNoRecipients rejects dispatches with an empty target list.
var ErrNoRecipients = errors.New("at least one candidate is required")

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether addr satisfies the simple address shape required
// of send targets.
func ValidEmail(addr string) bool {
	return emailShape.MatchString(addr)
}

// Dispatcher sends one email per selected candidate through the delivery
// provider. fromAddress is the platform's outbound sending address; replies
// are routed to the recruiter via the reply-to header.
type Dispatcher struct {
	sender      email.Sender
	fromAddress string
}

// New creates a Dispatcher on the given sender.
func New(sender email.Sender, fromAddress string) *Dispatcher {
	return &Dispatcher{sender: sender, fromAddress: fromAddress}
}

// Dispatch validates the request, substitutes placeholders per candidate, and
// sends all emails concurrently. Per-recipient failures are captured in the
// report and never abort sibling sends. Once dispatch begins every send runs
// to completion even if the caller's context is cancelled.
func (d *Dispatcher) Dispatch(ctx context.Context, req *types.OutreachRequest) (*types.OutreachReport, error) {
	if len(req.Candidates) == 0 {
		return nil, ErrNoRecipients
	}
	if len(req.Candidates) > MaxRecipients {
		return nil, ErrTooManyRecipients
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !ValidEmail(req.ReplyToEmail) {
		return nil, errors.New("invalid reply-to email format")
	}

	displayName := compose.DisplayName(req.SenderName, req.ReplyToEmail)
	dispatchID := uuid.New().String()
	log.Printf("[outreach %s] dispatching to %d candidates (personalized=%t)",
		dispatchID, len(req.Candidates), req.IsPersonalized)

	// Sends are independent: results land in their own slot, so fan-in order
	// does not matter. The detached context keeps an abandoned HTTP caller
	// from cancelling in-flight sends.
	results := make([]types.OutreachResult, len(req.Candidates))
	sendCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	for i, candidate := range req.Candidates {
		g.Go(func() error {
			results[i] = d.sendOne(sendCtx, req, candidate, displayName)
			return nil
		})
	}
	_ = g.Wait()

	report := &types.OutreachReport{
		Successful:   make([]types.OutreachResult, 0, len(results)),
		Failed:       make([]types.OutreachResult, 0),
		Personalized: req.IsPersonalized,
	}
	for _, r := range results {
		if r.Success {
			report.Successful = append(report.Successful, r)
		} else {
			report.Failed = append(report.Failed, r)
		}
	}
	report.TotalSent = len(report.Successful)
	report.TotalFailed = len(report.Failed)
	report.Message = summaryMessage(report)

	log.Printf("[outreach %s] sent=%d failed=%d", dispatchID, report.TotalSent, report.TotalFailed)
	return report, nil
}

func (d *Dispatcher) sendOne(ctx context.Context, req *types.OutreachRequest, c types.Candidate, displayName string) types.OutreachResult {
	result := types.OutreachResult{
		CandidateID:    c.ID,
		CandidateName:  c.Name,
		CandidateEmail: c.Email,
		Personalized:   req.IsPersonalized,
	}

	if !ValidEmail(c.Email) {
		result.Error = invalidEmailMessage
		return result
	}

	body := compose.Substitute(req.Body, c, displayName, req.IsPersonalized)

	// AI-generated templates are already full HTML; static templates get the
	// branded container.
	html := body
	if !req.IsPersonalized {
		html = compose.BrandedHTML(body, displayName)
	}

	emailID, err := d.sender.Send(ctx, email.Message{
		From:    fmt.Sprintf("%s <%s>", displayName, d.fromAddress),
		To:      c.Email,
		Subject: req.Subject,
		HTML:    html,
		Text:    compose.StripTags(body),
		ReplyTo: req.ReplyToEmail,
	})
	if err != nil {
		log.Printf("failed to send email to %s: %v", c.Email, err)
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.EmailID = emailID
	return result
}

func summaryMessage(report *types.OutreachReport) string {
	personalized := ""
	if report.Personalized {
		personalized = "personalized "
	}
	msg := fmt.Sprintf("Sent %d %semails successfully", report.TotalSent, personalized)
	if report.TotalFailed > 0 {
		msg += fmt.Sprintf(", %d failed", report.TotalFailed)
	}
	return msg
}
