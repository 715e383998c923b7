package analyzer

import (
	"math"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`)
	phonePattern = regexp.MustCompile(`\+?[\d\s\-().]{7,15}`)
)

// contactInfo holds the contact-field signals the ATS heuristic looks for.
type contactInfo struct {
	hasEmail    bool
	hasPhone    bool
	hasLinkedIn bool
}

func detectContact(resumeText string) contactInfo {
	return contactInfo{
		hasEmail:    emailPattern.MatchString(resumeText),
		hasPhone:    phonePattern.MatchString(resumeText),
		hasLinkedIn: strings.Contains(strings.ToLower(resumeText), "linkedin.com"),
	}
}

func (c contactInfo) score() int {
	score := 0
	if c.hasEmail {
		score += emailPoints
	}
	if c.hasPhone {
		score += phonePoints
	}
	if c.hasLinkedIn {
		score += linkedinPoints
	}
	return score
}

func (c contactInfo) complete() bool {
	return c.hasEmail && c.hasPhone
}

// atsScore estimates ATS compatibility from the overall match, contact
// completeness, section structure and keyword density. A linear heuristic,
// capped at 100.
func atsScore(jdMatch int, contact contactInfo, sectionCount int, density float64) int {
	bonus := sectionCount * sectionBonusPer
	if bonus > sectionBonusCap {
		bonus = sectionBonusCap
	}
	total := float64(jdMatch)*atsMatchWeight + float64(contact.score()+bonus) + density*atsDensityWeight
	return int(math.Min(100, math.Round(total)))
}
