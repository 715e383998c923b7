package main

import (
	"testing"

	"github.com/resumelyze/worker/internal/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAIAnalysis(t *testing.T) {
	raw := "```json\n" + `{
		"jd_match": 72,
		"ats_score": 80,
		"missing_keywords": ["kafka"],
		"found_keywords": ["go"],
		"section_scores": {"skills": {"score": 75, "suggestion": "add cloud tools"}},
		"profile_summary": "Solid backend profile.",
		"readability_score": 68,
		"letter_grade": "B+"
	}` + "\n```"

	got, err := parseAIAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, 72, got.JDMatch)
	assert.Equal(t, []string{"kafka"}, got.MissingKeywords)
	assert.Equal(t, 75, got.SectionScores["skills"].Score)
	assert.Equal(t, "B+", got.LetterGrade)
	assert.Equal(t, modeAI, got.AnalysisMode)
}

func TestParseAIAnalysisSurroundingProse(t *testing.T) {
	got, err := parseAIAnalysis(`Here is the evaluation: {"jd_match": 40, "ats_score": 50} done.`)
	require.NoError(t, err)
	assert.Equal(t, 40, got.JDMatch)
	assert.NotNil(t, got.SectionScores)
}

func TestParseAIAnalysisErrors(t *testing.T) {
	_, err := parseAIAnalysis("no json here")
	assert.Error(t, err)

	_, err = parseAIAnalysis(`{"jd_match": "not a number"}`)
	assert.Error(t, err)
}

func TestMergeHybrid(t *testing.T) {
	local := analyzer.Result{
		JDMatch:          40,
		ATSScore:         60,
		ReadabilityScore: 80,
		MissingKeywords:  []string{"kafka", "redis"},
		FoundKeywords:    []string{"go"},
		SectionScores: map[string]analyzer.SectionScore{
			"skills":  {Score: 50, Suggestion: "local skills advice"},
			"summary": {Score: 20, Suggestion: "local summary advice"},
		},
		AnalysisMode: "local",
	}
	ai := &aiAnalysis{
		Result: analyzer.Result{
			JDMatch:          60,
			ATSScore:         70,
			ReadabilityScore: 60,
			MissingKeywords:  []string{"redis", "terraform"},
			FoundKeywords:    []string{"go", "sql"},
			SectionScores: map[string]analyzer.SectionScore{
				"skills":   {Score: 70, Suggestion: "ai skills advice"},
				"projects": {Score: 80, Suggestion: "ai projects advice"},
			},
			AnalysisMode: "ai",
		},
		AIExtras: AIExtras{LetterGrade: "B"},
	}

	merged := mergeHybrid(local, ai)

	assert.Equal(t, modeHybrid, merged.AnalysisMode)
	assert.Equal(t, 50, merged.JDMatch)
	assert.Equal(t, 65, merged.ATSScore)
	assert.Equal(t, 70, merged.ReadabilityScore)
	assert.Equal(t, []string{"kafka", "redis", "terraform"}, merged.MissingKeywords)
	assert.Equal(t, []string{"go", "sql"}, merged.FoundKeywords)

	// Present in both: averaged score, AI suggestion preferred.
	assert.Equal(t, analyzer.SectionScore{Score: 60, Suggestion: "ai skills advice"}, merged.SectionScores["skills"])
	// Local only: averaged against zero, local suggestion kept.
	assert.Equal(t, analyzer.SectionScore{Score: 10, Suggestion: "local summary advice"}, merged.SectionScores["summary"])
	// AI only: averaged against zero, AI suggestion kept.
	assert.Equal(t, analyzer.SectionScore{Score: 40, Suggestion: "ai projects advice"}, merged.SectionScores["projects"])

	// AI-only extras survive the merge.
	assert.Equal(t, "B", merged.LetterGrade)
}

func TestMergeKeywordListsCap(t *testing.T) {
	var a, b []string
	for _, prefix := range []string{"a", "b"} {
		for i := 0; i < 15; i++ {
			word := prefix + string(rune('a'+i))
			if prefix == "a" {
				a = append(a, word)
			} else {
				b = append(b, word)
			}
		}
	}
	got := mergeKeywordLists(a, b)
	assert.Len(t, got, hybridKeywordCap)
	assert.Equal(t, a, got[:15])
}
