package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapnilsaysloud/hireai-outreach/internal/types"
)

// fakeClient returns a canned response and records the prompt it was given.
type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

const validResponse = `{"subject": "Engineering role at Acme", "emailTemplate": "<p>Dear [Candidate Name],</p>"}`

func TestGenerateParsesCleanResponse(t *testing.T) {
	client := &fakeClient{response: validResponse}
	g := NewTemplateGenerator(client)

	tmpl, err := g.Generate(context.Background(), "We need a Go engineer with distributed systems experience.", "Jordan")
	require.NoError(t, err)
	assert.Equal(t, "Engineering role at Acme", tmpl.Subject)
	assert.Equal(t, "<p>Dear [Candidate Name],</p>", tmpl.EmailTemplate)

	assert.Contains(t, client.prompt, "We need a Go engineer")
	assert.Contains(t, client.prompt, "Jordan")
}

func TestGenerateToleratesFencesAndProse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"json fence", "```json\n" + validResponse + "\n```"},
		{"plain fence", "```\n" + validResponse + "\n```"},
		{"leading prose", "Sure! Here is the template you asked for:\n" + validResponse},
		{"trailing prose", validResponse + "\nLet me know if you'd like changes."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTemplateGenerator(&fakeClient{response: tt.response})
			tmpl, err := g.Generate(context.Background(), "A long enough job description for the model.", "Jordan")
			require.NoError(t, err)
			assert.Equal(t, "Engineering role at Acme", tmpl.Subject)
		})
	}
}

func TestGenerateRejectsMalformedResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  error
	}{
		{"no JSON at all", "I cannot produce that template.", ErrNoJSONObject},
		{"missing subject", `{"emailTemplate": "<p>Hi</p>"}`, nil},
		{"empty fields", `{"subject": "", "emailTemplate": ""}`, nil},
		{"wrong field types", `{"subject": 42, "emailTemplate": ["a"]}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTemplateGenerator(&fakeClient{response: tt.response})
			tmpl, err := g.Generate(context.Background(), "A long enough job description for the model.", "Jordan")
			require.Error(t, err)
			assert.Nil(t, tmpl)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGeneratePropagatesClientError(t *testing.T) {
	g := NewTemplateGenerator(&fakeClient{err: errors.New("quota exceeded")})

	_, err := g.Generate(context.Background(), "A long enough job description for the model.", "Jordan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateBulkFeedsCandidateSummaries(t *testing.T) {
	client := &fakeClient{response: validResponse}
	g := NewTemplateGenerator(client)

	cands := []types.CandidateSummary{
		{
			Name:     "Ada Lovelace",
			Title:    "Staff Engineer",
			Company:  "Analytical Engines",
			Location: "London",
			Skills:   []string{"Go", "Distributed Systems"},
			Summary:  "Pioneer of computing.",
		},
		{
			Name:    "Grace Hopper",
			Title:   "Rear Admiral",
			Company: "US Navy",
			Skills:  []string{"COBOL"},
			Summary: "Compiler pioneer.",
		},
	}

	tmpl, err := g.GenerateBulk(context.Background(), cands, "Hiring platform engineers for our compiler team.", "Jordan")
	require.NoError(t, err)
	require.NotNil(t, tmpl)

	assert.Contains(t, client.prompt, "1. Ada Lovelace")
	assert.Contains(t, client.prompt, "2. Grace Hopper")
	assert.Contains(t, client.prompt, "Staff Engineer at Analytical Engines")
	assert.Contains(t, client.prompt, "Go, Distributed Systems")
	// Missing location falls back rather than rendering empty.
	assert.Contains(t, client.prompt, "Location: Not specified")
}

func TestFormatCandidatesEmptyList(t *testing.T) {
	assert.Equal(t, "", formatCandidates(nil))
}
