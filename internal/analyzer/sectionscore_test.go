package analyzer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const scoringJD = "Looking for a Python developer with Django and REST API experience."

func TestScoreSectionMissing(t *testing.T) {
	for _, text := range []string{"", "   ", "short", "\n\n  \n"} {
		got := scoreSection(text, scoringJD, "skills")
		assert.Equal(t, missingSectionScore, got.Score)
		assert.Contains(t, got.Suggestion, "missing or very brief")
		assert.Contains(t, got.Suggestion, "skills")
	}
}

func TestScoreSectionBounds(t *testing.T) {
	texts := []string{
		"Python, Django, SQL",
		"Completely unrelated content about gardening and cooking recipes",
		scoringJD, // identical to the JD
		"Skills\n" + scoringJD,
	}
	for _, text := range texts {
		got := scoreSection(text, scoringJD, "skills")
		assert.GreaterOrEqual(t, got.Score, sectionScoreFloor, "text %q", text)
		assert.LessOrEqual(t, got.Score, 100, "text %q", text)
	}
}

func TestScoreSectionIdenticalTextScoresHigh(t *testing.T) {
	got := scoreSection(scoringJD, scoringJD, "experience")
	// similarity 1.0 and full keyword density blend to the ceiling tier.
	assert.GreaterOrEqual(t, got.Score, 80)
	assert.Contains(t, got.Suggestion, "excellent")
}

func TestScoreSectionSuggestionTiers(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{39, "needs significant improvement"},
		{59, "decent but could be stronger"},
		{79, "is good"},
		{80, "excellent"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("score_%d", tt.score), func(t *testing.T) {
			got := sectionSuggestion(tt.score, "summary")
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "summary")
		})
	}
}
