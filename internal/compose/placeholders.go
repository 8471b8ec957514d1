// Package compose builds outreach email content: the compose session state
// machine, placeholder substitution, and the branded HTML container.
package compose

import (
	"strings"

	"github.com/swapnilsaysloud/hireai-outreach/internal/types"
)

// Bracketed tokens recognized in email templates.
const (
	TokenCandidateName  = "[Candidate Name]"
	TokenCurrentCompany = "[Current Company]"
	TokenCurrentTitle   = "[Current Title]"
	TokenYourName       = "[Your Name]"
)

// Substitute rewrites the bracketed placeholders in template for one
// candidate. All occurrences are replaced; tokens do not overlap so order is
// immaterial. Non-personalized mode substitutes only the candidate name and
// sender name, leaving other tokens verbatim.
func Substitute(template string, c types.Candidate, displayName string, personalized bool) string {
	out := strings.ReplaceAll(template, TokenCandidateName, c.Name)
	if personalized {
		out = strings.ReplaceAll(out, TokenCurrentCompany, c.Company)
		out = strings.ReplaceAll(out, TokenCurrentTitle, c.Title)
	}
	return strings.ReplaceAll(out, TokenYourName, displayName)
}

// DisplayName resolves the sender display name, defaulting to the local part
// of the reply-to address when no explicit name was supplied.
func DisplayName(senderName, replyToEmail string) string {
	if senderName != "" {
		return senderName
	}
	if at := strings.Index(replyToEmail, "@"); at >= 0 {
		return replyToEmail[:at]
	}
	return replyToEmail
}
