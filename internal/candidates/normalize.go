// Package candidates implements the candidate result workflow: normalizing
// upstream search records, tracking the outreach selection, and paginating
// the result list.
package candidates

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"

	"github.com/swapnilsaysloud/hireai-outreach/internal/types"
)

// Fallback literals applied when upstream data omits a field.
const (
	FallbackName     = "Unknown Candidate"
	FallbackTitle    = "Not specified"
	FallbackSummary  = "No summary available"
	FallbackLocation = "Location not specified"
	FallbackCompany  = "Company not specified"
	FallbackAvatar   = "/placeholder.svg?height=128&width=128"
)

// UpstreamCandidate is one loosely-typed record from the semantic search
// collaborator. Alias fields (title/position, summary/description) are kept
// separate so resolution order stays explicit.
type UpstreamCandidate struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Position    string   `json:"position"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Score       float64  `json:"score"` // similarity in [0,1]
	AvatarURL   string   `json:"avatarUrl"`
	Location    string   `json:"location"`
	Email       string   `json:"email"`
	Company     string   `json:"company"`
}

var whitespace = regexp.MustCompile(`\s+`)

// Normalizer maps upstream search results into canonical Candidate records.
// syntheticScore supplies the fallback match score used when upstream omits
// or zeroes the similarity score; it is injectable so tests stay deterministic.
type Normalizer struct {
	syntheticScore func() int
}

// NewNormalizer returns a Normalizer with the production score fallback,
// a random integer in [70,100).
func NewNormalizer() *Normalizer {
	return &Normalizer{
		syntheticScore: func() int { return rand.Intn(30) + 70 },
	}
}

// NewNormalizerWithScoreSource returns a Normalizer whose synthetic score
// fallback is drawn from src.
func NewNormalizerWithScoreSource(src func() int) *Normalizer {
	return &Normalizer{syntheticScore: src}
}

// Normalize converts an ordered sequence of upstream records into Candidates,
// order preserved. It never rejects a record: missing fields degrade to the
// documented fallbacks.
func (n *Normalizer) Normalize(results []UpstreamCandidate) []types.Candidate {
	out := make([]types.Candidate, len(results))
	for i, raw := range results {
		out[i] = n.normalizeOne(raw, i)
	}
	return out
}

func (n *Normalizer) normalizeOne(raw UpstreamCandidate, index int) types.Candidate {
	c := types.Candidate{
		ID:        firstNonEmpty(raw.ID, fmt.Sprintf("candidate-%d", index+1)),
		Name:      firstNonEmpty(raw.Name, FallbackName),
		Title:     firstNonEmpty(raw.Title, raw.Position, FallbackTitle),
		Summary:   firstNonEmpty(raw.Summary, raw.Description, FallbackSummary),
		Location:  firstNonEmpty(raw.Location, FallbackLocation),
		Company:   firstNonEmpty(raw.Company, FallbackCompany),
		AvatarURL: firstNonEmpty(raw.AvatarURL, FallbackAvatar),
		Skills:    raw.Skills,
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}

	// Upstream similarity is scaled x100 and rounded to 2 decimals. A zero or
	// NaN result is indistinguishable from "missing" and gets the synthetic
	// fallback, flagged so callers know the score is not real.
	score := roundTo2(raw.Score * 100)
	if score == 0 || math.IsNaN(score) {
		c.MatchScore = float64(n.syntheticScore())
		c.ScoreSynthetic = true
	} else {
		c.MatchScore = score
	}

	c.Email = raw.Email
	if c.Email == "" {
		if raw.Name != "" {
			local := whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw.Name)), ".")
			c.Email = local + "@example.com"
		} else {
			c.Email = fmt.Sprintf("candidate%d@example.com", index+1)
		}
	}

	return c
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
