// Package analyzer scores a resume against a job description without any
// external model: TF-IDF cosine similarity over the two texts, keyword gap
// analysis, section-level quality scores, an ATS-compatibility estimate and
// a readability score. Analyze is a pure function of its two inputs (no
// I/O, no shared state, safe for concurrent callers) and always returns a
// complete result, even for empty or malformed text.
package analyzer

import (
	"fmt"
	"math"
	"strings"
)

// Result is the full analysis report. Immutable once returned; the caller
// owns rendering and persistence.
type Result struct {
	JDMatch            int                     `json:"jd_match"`
	ATSScore           int                     `json:"ats_score"`
	MissingKeywords    []string                `json:"missing_keywords"`
	FoundKeywords      []string                `json:"found_keywords"`
	SectionScores      map[string]SectionScore `json:"section_scores"`
	ProfileSummary     string                  `json:"profile_summary"`
	Strengths          []string                `json:"strengths"`
	Weaknesses         []string                `json:"weaknesses"`
	ActionItems        []string                `json:"action_items"`
	KeywordDensity     float64                 `json:"keyword_density"`
	ReadabilityScore   int                     `json:"readability_score"`
	FormattingFeedback string                  `json:"formatting_feedback"`
	RecommendedRoles   []string                `json:"recommended_roles"`
	AnalysisMode       string                  `json:"analysis_mode"`
}

// Analyze runs the full local pipeline over a resume and a job description.
// Output is deterministic: identical inputs produce identical results.
func Analyze(resumeText, jobDescription string) Result {
	jdKeywords := ExtractKeywords(jobDescription, topJDKeywords)
	jdBigrams := ExtractBigrams(jobDescription, 2)

	resumeLower := strings.ToLower(resumeText)
	jdLower := strings.ToLower(jobDescription)

	var found, missing []string
	for _, kw := range jdKeywords {
		if strings.Contains(resumeLower, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	if len(jdBigrams) > maxJDBigrams {
		jdBigrams = jdBigrams[:maxJDBigrams]
	}
	for _, bg := range jdBigrams {
		if strings.Contains(resumeLower, bg) {
			found = appendUnique(found, bg)
		} else {
			missing = appendUnique(missing, bg)
		}
	}

	similarity := TFIDFCosineSimilarity(resumeText, jobDescription)
	density := keywordDensity(resumeText, jdKeywords)
	jdMatch := int(math.Round(math.Min(100, (similarity*matchSimilarityWeight+density*matchDensityWeight)*100)))
	if jdMatch < matchScoreFloor {
		jdMatch = matchScoreFloor
	}

	sections := DetectSections(resumeText)
	contact := detectContact(resumeText)
	sectionCount := countNamedSections(sections)
	ats := atsScore(jdMatch, contact, sectionCount, density)

	sectionScores := make(map[string]SectionScore, len(canonicalSections))
	for _, cs := range canonicalSections {
		content := lookupSection(sections, cs.aliases)
		sectionScores[cs.name] = scoreSection(content, jobDescription, cs.name)
	}

	readability := Readability(resumeText)

	var strengths, weaknesses []string
	if jdMatch > goodMatchMin {
		strengths = append(strengths, "Good keyword alignment with job description")
	} else {
		weaknesses = append(weaknesses, "Low keyword match — tailor your resume to the specific job")
	}
	if contact.complete() {
		strengths = append(strengths, "Contact information is present")
	} else {
		weaknesses = append(weaknesses, "Missing contact information (email or phone)")
	}
	if sectionCount >= wellStructuredMin {
		strengths = append(strengths, "Well-structured resume with clear sections")
	} else {
		weaknesses = append(weaknesses, "Resume needs more defined sections")
	}
	if readability > readabilityGoodMin {
		strengths = append(strengths, "Good readability and clear writing")
	} else {
		weaknesses = append(weaknesses, "Consider improving sentence clarity and conciseness")
	}
	for _, cs := range canonicalSections {
		switch score := sectionScores[cs.name].Score; {
		case score > sectionStrongMin:
			strengths = append(strengths, fmt.Sprintf("Strong %s section", cs.name))
		case score < sectionWeakMax:
			weaknesses = append(weaknesses, fmt.Sprintf("%s section needs improvement", titleWord(cs.name)))
		}
	}

	// Backfill with known tech terms so infrequent but decisive keywords
	// ("docker", "kubernetes") are reliably detected.
	for _, kw := range techKeywords {
		inResume := strings.Contains(resumeLower, kw)
		inJD := strings.Contains(jdLower, kw)
		switch {
		case inResume && inJD:
			found = appendUnique(found, kw)
		case !inResume && inJD:
			missing = appendUnique(missing, kw)
		}
	}
	found = capList(found, keywordMergeCap)
	missing = capList(missing, keywordMergeCap)

	var actionItems []string
	if len(missing) > 0 {
		actionItems = append(actionItems,
			"Add these missing keywords: "+strings.Join(capList(missing, 5), ", "))
	}
	if readability < readabilityGoodMin {
		actionItems = append(actionItems, "Improve readability — use shorter sentences and bullet points")
	}
	if !contact.hasLinkedIn {
		actionItems = append(actionItems, "Add your LinkedIn profile link")
	}
	for _, cs := range canonicalSections {
		if sectionScores[cs.name].Score < sectionNudgeMax {
			actionItems = append(actionItems,
				fmt.Sprintf("Strengthen your %s section with more relevant content", cs.name))
		}
	}
	if ats < atsFormattingNudge {
		actionItems = append(actionItems, "Use standard section headers for better ATS parsing")
	}

	var roles []string
	for _, entry := range roleTable {
		if strings.Contains(resumeLower, entry.keyword) {
			roles = append(roles, entry.role)
		}
	}
	if len(roles) == 0 {
		roles = append(roles, fallbackRoles...)
	}

	formattingFeedback := "Consider using standard section headers (Summary, Skills, Experience, " +
		"Education, Projects) for better ATS compatibility."
	if sectionCount >= wellStructuredMin {
		formattingFeedback = "Resume formatting looks good with clear sections."
	}

	return Result{
		JDMatch:            jdMatch,
		ATSScore:           ats,
		MissingKeywords:    capList(missing, resultKeywordCap),
		FoundKeywords:      capList(found, resultKeywordCap),
		SectionScores:      sectionScores,
		ProfileSummary:     profileSummary(jdMatch, sectionCount, contact, readability),
		Strengths:          capList(strengths, resultListCap),
		Weaknesses:         capList(weaknesses, resultListCap),
		ActionItems:        capList(actionItems, resultListCap),
		KeywordDensity:     math.Round(density*1000) / 1000,
		ReadabilityScore:   readability,
		FormattingFeedback: formattingFeedback,
		RecommendedRoles:   capList(roles, resultRoleCap),
		AnalysisMode:       "local",
	}
}

func profileSummary(jdMatch, sectionCount int, contact contactInfo, readability int) string {
	presence := "Weak"
	switch {
	case jdMatch > strongPresenceMin:
		presence = "Strong"
	case jdMatch > moderatePresenceMin:
		presence = "Moderate"
	}
	contactNote := "Contact information may be incomplete."
	if contact.complete() {
		contactNote = "Contact information is complete."
	}
	targeting := "Consider tailoring the resume more closely to the specific job requirements."
	if jdMatch >= goodMatchMin {
		targeting = "The resume is reasonably well-targeted for this role."
	}
	return fmt.Sprintf("The resume shows a %d%% alignment with the job description. "+
		"%s keyword presence. The resume has %d identifiable sections. %s "+
		"Readability score is %d/100. %s",
		jdMatch, presence, sectionCount, contactNote, readability, targeting)
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

func capList(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}

// titleWord uppercases the first letter of a section name for messages.
func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
