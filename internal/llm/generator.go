package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/swapnilsaysloud/hireai-outreach/internal/prompts"
	"github.com/swapnilsaysloud/hireai-outreach/internal/types"
)

// EmailTemplate is the structured result of a generation call.
type EmailTemplate struct {
	Subject       string `json:"subject"`
	EmailTemplate string `json:"emailTemplate"`
}

// templateSchema validates the parsed model output: both fields present and
// non-empty.
const templateSchema = `{
	"type": "object",
	"required": ["subject", "emailTemplate"],
	"properties": {
		"subject": {"type": "string", "minLength": 1},
		"emailTemplate": {"type": "string", "minLength": 1}
	}
}`

// TemplateGenerator produces outreach email templates via the generative
// collaborator and parses its responses defensively.
type TemplateGenerator struct {
	client Client
}

// NewTemplateGenerator creates a generator on the given client.
func NewTemplateGenerator(client Client) *TemplateGenerator {
	return &TemplateGenerator{client: client}
}

// Generate produces a template for the single-template variant.
func (g *TemplateGenerator) Generate(ctx context.Context, jobDescription, senderName string) (*EmailTemplate, error) {
	prompt := prompts.Format(prompts.MustGet("outreach.json", "email_template"), map[string]string{
		"JobDescription": jobDescription,
		"SenderName":     senderName,
	})

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate email template: %w", err)
	}
	return parseTemplate(text)
}

// GenerateBulk produces a template for the bulk variant, feeding the model
// the selected candidate summaries so it can speak to their backgrounds.
func (g *TemplateGenerator) GenerateBulk(ctx context.Context, cands []types.CandidateSummary, jobDescription, senderName string) (*EmailTemplate, error) {
	prompt := prompts.Format(prompts.MustGet("outreach.json", "personalized_email"), map[string]string{
		"JobDescription": jobDescription,
		"SenderName":     senderName,
		"Candidates":     formatCandidates(cands),
	})

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate personalized email: %w", err)
	}
	return parseTemplate(text)
}

// parseTemplate recovers the structured template from a free-text model
// response: strip markdown fences, extract the first balanced JSON object,
// validate its shape, then unmarshal. A response with no structured content
// or missing required fields is a recoverable failure for the caller to
// report; no partial result is ever returned.
func parseTemplate(text string) (*EmailTemplate, error) {
	span, err := ExtractJSONObject(CleanJSONBlock(text))
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(templateSchema),
		gojsonschema.NewStringLoader(span),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, fmt.Errorf("invalid model response format: %s", strings.Join(details, "; "))
	}

	var tmpl EmailTemplate
	if err := json.Unmarshal([]byte(span), &tmpl); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	return &tmpl, nil
}

// formatCandidates renders candidate summaries as the numbered list the
// prompt expects.
func formatCandidates(cands []types.CandidateSummary) string {
	var sb strings.Builder
	for i, c := range cands {
		location := c.Location
		if location == "" {
			location = "Not specified"
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, c.Name)
		fmt.Fprintf(&sb, "   - Current Role: %s at %s\n", c.Title, c.Company)
		fmt.Fprintf(&sb, "   - Location: %s\n", location)
		fmt.Fprintf(&sb, "   - Key Skills: %s\n", strings.Join(c.Skills, ", "))
		fmt.Fprintf(&sb, "   - Summary: %s\n", c.Summary)
		if i < len(cands)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
