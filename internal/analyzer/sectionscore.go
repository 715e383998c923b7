package analyzer

import (
	"fmt"
	"math"
	"strings"
)

// SectionScore is the per-section verdict: a 0–100 score and a
// natural-language suggestion.
type SectionScore struct {
	Score      int    `json:"score"`
	Suggestion string `json:"suggestion"`
}

// canonicalSection resolves the logical sections the report scores against
// the literal header names the detector produces.
type canonicalSection struct {
	name    string
	aliases []string
}

var canonicalSections = []canonicalSection{
	{"summary", []string{"summary", "professional summary", "objective", "career objective"}},
	{"skills", []string{"skills", "technical skills"}},
	{"experience", []string{"experience", "work experience"}},
	{"education", []string{"education"}},
	{"projects", []string{"projects", "project"}},
}

// scoreSection scores one resume section against the job description.
// A missing or very brief section gets the fixed floor score instead of an
// error: absence is a signal, not a failure.
func scoreSection(sectionText, jobDescription, sectionName string) SectionScore {
	if len(strings.TrimSpace(sectionText)) < minSectionChars {
		return SectionScore{
			Score: missingSectionScore,
			Suggestion: fmt.Sprintf("Your %s section appears to be missing or very brief. "+
				"Add detailed content relevant to the job description.", sectionName),
		}
	}

	similarity := TFIDFCosineSimilarity(sectionText, jobDescription)
	jdKeywords := ExtractKeywords(jobDescription, topSectionKeywords)
	density := keywordDensity(sectionText, jdKeywords)

	score := int(math.Round(math.Min(100, (similarity*sectionSimilarityWeight+density*sectionDensityWeight)*100)))
	if score < sectionScoreFloor {
		score = sectionScoreFloor
	}

	return SectionScore{Score: score, Suggestion: sectionSuggestion(score, sectionName)}
}

// sectionSuggestion picks the advice tier for a section score.
func sectionSuggestion(score int, sectionName string) string {
	switch {
	case score < 40:
		return fmt.Sprintf("Your %s section needs significant improvement. "+
			"Add more relevant keywords and align with the job requirements.", sectionName)
	case score < 60:
		return fmt.Sprintf("Your %s section is decent but could be stronger. "+
			"Consider incorporating more specific terms from the job description.", sectionName)
	case score < 80:
		return fmt.Sprintf("Your %s section is good. Fine-tune it by adding quantifiable "+
			"achievements and matching the JD's language more closely.", sectionName)
	default:
		return fmt.Sprintf("Your %s section is excellent and well-aligned with the job description.", sectionName)
	}
}
