package candidates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedScore(v int) func() int {
	return func() int { return v }
}

func TestNormalizeFallbacks(t *testing.T) {
	n := NewNormalizerWithScoreSource(fixedScore(85))

	out := n.Normalize([]UpstreamCandidate{{}})
	require.Len(t, out, 1)

	c := out[0]
	assert.Equal(t, "candidate-1", c.ID)
	assert.Equal(t, FallbackName, c.Name)
	assert.Equal(t, FallbackTitle, c.Title)
	assert.Equal(t, FallbackSummary, c.Summary)
	assert.Equal(t, FallbackLocation, c.Location)
	assert.Equal(t, FallbackCompany, c.Company)
	assert.Equal(t, FallbackAvatar, c.AvatarURL)
	assert.Equal(t, "candidate1@example.com", c.Email)
}

func TestNormalizeMissingSkillsIsEmptySlice(t *testing.T) {
	n := NewNormalizerWithScoreSource(fixedScore(85))

	out := n.Normalize([]UpstreamCandidate{{Name: "Ada Lovelace"}})
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Skills)
	assert.Empty(t, out[0].Skills)
}

func TestNormalizeAliasResolution(t *testing.T) {
	tests := []struct {
		name        string
		raw         UpstreamCandidate
		wantTitle   string
		wantSummary string
	}{
		{
			name:        "title wins over position",
			raw:         UpstreamCandidate{Title: "Staff Engineer", Position: "Engineer"},
			wantTitle:   "Staff Engineer",
			wantSummary: FallbackSummary,
		},
		{
			name:        "position used when title absent",
			raw:         UpstreamCandidate{Position: "Engineer"},
			wantTitle:   "Engineer",
			wantSummary: FallbackSummary,
		},
		{
			name:        "description used when summary absent",
			raw:         UpstreamCandidate{Description: "Ten years of backend work"},
			wantTitle:   FallbackTitle,
			wantSummary: "Ten years of backend work",
		},
	}

	n := NewNormalizerWithScoreSource(fixedScore(85))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := n.Normalize([]UpstreamCandidate{tt.raw})
			require.Len(t, out, 1)
			assert.Equal(t, tt.wantTitle, out[0].Title)
			assert.Equal(t, tt.wantSummary, out[0].Summary)
		})
	}
}

func TestNormalizeMatchScore(t *testing.T) {
	n := NewNormalizerWithScoreSource(fixedScore(77))

	tests := []struct {
		name          string
		score         float64
		wantScore     float64
		wantSynthetic bool
	}{
		{"scaled and rounded", 0.87654, 87.65, false},
		{"full score", 1.0, 100, false},
		{"missing score gets synthetic fallback", 0, 77, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := n.Normalize([]UpstreamCandidate{{Name: "Ada", Score: tt.score}})
			require.Len(t, out, 1)
			assert.InDelta(t, tt.wantScore, out[0].MatchScore, 0.001)
			assert.Equal(t, tt.wantSynthetic, out[0].ScoreSynthetic)
		})
	}
}

func TestNormalizeSyntheticScoreRange(t *testing.T) {
	n := NewNormalizer()
	for i := 0; i < 50; i++ {
		out := n.Normalize([]UpstreamCandidate{{Name: "Ada"}})
		require.Len(t, out, 1)
		assert.GreaterOrEqual(t, out[0].MatchScore, 70.0)
		assert.Less(t, out[0].MatchScore, 100.0)
		assert.True(t, out[0].ScoreSynthetic)
	}
}

func TestNormalizeEmailSynthesis(t *testing.T) {
	tests := []struct {
		name string
		raw  UpstreamCandidate
		want string
	}{
		{"upstream email kept", UpstreamCandidate{Name: "Ada Lovelace", Email: "ada@acme.io"}, "ada@acme.io"},
		{"derived from name", UpstreamCandidate{Name: "Ada Lovelace"}, "ada.lovelace@example.com"},
		{"multiple spaces collapse", UpstreamCandidate{Name: "Ada  Byron   Lovelace"}, "ada.byron.lovelace@example.com"},
		{"index placeholder when nameless", UpstreamCandidate{}, "candidate1@example.com"},
	}

	n := NewNormalizerWithScoreSource(fixedScore(85))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := n.Normalize([]UpstreamCandidate{tt.raw})
			require.Len(t, out, 1)
			assert.Equal(t, tt.want, out[0].Email)
		})
	}
}

func TestNormalizePreservesOrderAndIndexes(t *testing.T) {
	n := NewNormalizerWithScoreSource(fixedScore(85))

	out := n.Normalize([]UpstreamCandidate{
		{ID: "upstream-a", Name: "A"},
		{Name: "B"},
		{Name: "C"},
	})
	require.Len(t, out, 3)
	assert.Equal(t, "upstream-a", out[0].ID)
	assert.Equal(t, "candidate-2", out[1].ID)
	assert.Equal(t, "candidate-3", out[2].ID)
}
