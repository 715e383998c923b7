package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	acmeResume = "Experience\nSoftware Engineer at Acme, built REST APIs using Python and Django.\nSkills\nPython, Django, SQL\nEducation\nB.S. Computer Science, 2020"
	acmeJD     = "Looking for a Python developer with Django and REST API experience."
)

func TestAnalyzeAcmeScenario(t *testing.T) {
	result := Analyze(acmeResume, acmeJD)

	assert.Equal(t, "local", result.AnalysisMode)
	assert.Contains(t, result.FoundKeywords, "python")
	assert.Contains(t, result.FoundKeywords, "django")
	assert.NotContains(t, result.MissingKeywords, "python")
	assert.NotContains(t, result.MissingKeywords, "django")

	require.Contains(t, result.SectionScores, "skills")
	require.Contains(t, result.SectionScores, "experience")
	// Both sections are present and partially aligned: clearly above the
	// missing-section floor, inside the valid band.
	assert.Greater(t, result.SectionScores["skills"].Score, missingSectionScore)
	assert.Greater(t, result.SectionScores["experience"].Score, missingSectionScore)
	assert.LessOrEqual(t, result.SectionScores["skills"].Score, 100)

	assert.GreaterOrEqual(t, result.JDMatch, matchScoreFloor)
	assert.LessOrEqual(t, result.JDMatch, 100)
	assert.GreaterOrEqual(t, result.ATSScore, 0)
	assert.LessOrEqual(t, result.ATSScore, 100)
	assert.Contains(t, result.RecommendedRoles, "Python Developer")
}

func TestAnalyzeContactInfoRaisesATS(t *testing.T) {
	withContact := "jane@example.com | +1 555 123 4567 | linkedin.com/in/jane\n" + acmeResume
	bare := Analyze(acmeResume, acmeJD)
	contact := Analyze(withContact, acmeJD)
	assert.Greater(t, contact.ATSScore, bare.ATSScore)
	assert.Contains(t, bare.ActionItems, "Add your LinkedIn profile link")
	assert.NotContains(t, contact.ActionItems, "Add your LinkedIn profile link")
}

func TestAnalyzeUnstructuredResume(t *testing.T) {
	paragraph := "I am a software engineer who has worked on many systems and knows python and sql quite well after several years in the industry"
	result := Analyze(paragraph, acmeJD)

	for _, name := range []string{"summary", "skills", "experience", "education", "projects"} {
		require.Contains(t, result.SectionScores, name)
		assert.Equal(t, missingSectionScore, result.SectionScores[name].Score, "section %s", name)
	}
	assert.Contains(t, result.FormattingFeedback, "standard section headers")
	assert.Contains(t, result.Weaknesses, "Resume needs more defined sections")
}

func TestAnalyzeIdenticalTexts(t *testing.T) {
	// No stop words between keyword tokens, so every filtered bigram is a
	// real substring of the text and the missing list stays empty.
	text := "Python developer building Django REST API backend services daily."
	result := Analyze(text, text)
	assert.Equal(t, 100, result.JDMatch)
	assert.Empty(t, result.MissingKeywords)
}

func TestAnalyzeEmptyInputs(t *testing.T) {
	for _, pair := range [][2]string{{"", ""}, {"", acmeJD}, {acmeResume, ""}, {"   \n  ", "  "}} {
		result := Analyze(pair[0], pair[1])
		assert.GreaterOrEqual(t, result.JDMatch, matchScoreFloor)
		assert.LessOrEqual(t, result.JDMatch, 100)
		assert.GreaterOrEqual(t, result.ATSScore, 0)
		assert.LessOrEqual(t, result.ATSScore, 100)
		assert.Equal(t, "local", result.AnalysisMode)
		assert.NotEmpty(t, result.ProfileSummary)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	first, err := json.Marshal(Analyze(acmeResume, acmeJD))
	require.NoError(t, err)
	second, err := json.Marshal(Analyze(acmeResume, acmeJD))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzeTechKeywordBackfill(t *testing.T) {
	jd := "We run everything on docker and kubernetes with terraform."
	resume := "Experience\nDeployed services with docker once."
	result := Analyze(resume, jd)
	assert.Contains(t, result.FoundKeywords, "docker")
	assert.Contains(t, result.MissingKeywords, "kubernetes")
	assert.Contains(t, result.MissingKeywords, "terraform")
}

func TestAnalyzeListCaps(t *testing.T) {
	result := Analyze(acmeResume, acmeJD)
	assert.LessOrEqual(t, len(result.MissingKeywords), resultKeywordCap)
	assert.LessOrEqual(t, len(result.FoundKeywords), resultKeywordCap)
	assert.LessOrEqual(t, len(result.Strengths), resultListCap)
	assert.LessOrEqual(t, len(result.Weaknesses), resultListCap)
	assert.LessOrEqual(t, len(result.ActionItems), resultListCap)
	assert.LessOrEqual(t, len(result.RecommendedRoles), resultRoleCap)
}

func TestAnalyzeFallbackRoles(t *testing.T) {
	result := Analyze("Experience\nRan a bakery for ten years.", "Looking for a pastry chef.")
	assert.Equal(t, fallbackRoles, result.RecommendedRoles)
}

func TestAnalyzeMissingKeywordActionItem(t *testing.T) {
	result := Analyze("Experience\nWrote Go services.", "Need rust and kafka and erlang expertise.")
	require.NotEmpty(t, result.ActionItems)
	assert.Contains(t, result.ActionItems[0], "Add these missing keywords:")
}
