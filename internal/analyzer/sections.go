package analyzer

import (
	"regexp"
	"strings"
)

// Section is one detected resume block. Name is the normalized text of the
// header line that opened it ("Technical Skills" → "technical skills"), or
// "header" for content before the first recognized header.
type Section struct {
	Name    string
	Content string
}

// Header patterns, tested in order against each trimmed lowercased line;
// the first match wins.
var sectionHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:professional\s+)?summary`),
	regexp.MustCompile(`^(?:career\s+)?objective`),
	regexp.MustCompile(`^(?:technical\s+)?skills`),
	regexp.MustCompile(`^(?:work\s+)?experience`),
	regexp.MustCompile(`^education`),
	regexp.MustCompile(`^projects?`),
	regexp.MustCompile(`^certifications?`),
	regexp.MustCompile(`^achievements?`),
	regexp.MustCompile(`^awards?`),
	regexp.MustCompile(`^publications?`),
	regexp.MustCompile(`^references?`),
	regexp.MustCompile(`^languages?`),
	regexp.MustCompile(`^interests?`),
	regexp.MustCompile(`^hobbies?`),
	regexp.MustCompile(`^volunteer`),
}

var sectionNameStrip = regexp.MustCompile(`[^a-z\s]`)

// DetectSections splits resume text into named sections by header-line
// matching. The split is lossless: every input line lands in exactly one
// section (header lines open their section and stay as its first content
// line), so joining all Content fields in order with "\n" reproduces the
// input. Duplicate header names stay as separate entries. A resume with no
// recognized headers comes back as a single "header" section.
func DetectSections(text string) []Section {
	lines := strings.Split(text, "\n")
	var sections []Section
	current := "header"
	var buf []string
	flush := func() {
		if len(buf) > 0 {
			sections = append(sections, Section{Name: current, Content: strings.Join(buf, "\n")})
		}
		buf = nil
	}

	for _, line := range lines {
		stripped := strings.ToLower(strings.TrimSpace(line))
		matched := false
		for _, p := range sectionHeaderPatterns {
			if p.MatchString(stripped) {
				flush()
				current = strings.TrimSpace(sectionNameStrip.ReplaceAllString(stripped, ""))
				buf = append(buf, line)
				matched = true
				break
			}
		}
		if !matched {
			buf = append(buf, line)
		}
	}
	flush()
	return sections
}

// lookupSection resolves a canonical section through its known alias names,
// first alias present wins. Returns "" when no alias matches.
func lookupSection(sections []Section, aliases []string) string {
	for _, alias := range aliases {
		for _, s := range sections {
			if s.Name == alias {
				return s.Content
			}
		}
	}
	return ""
}

// countNamedSections counts distinct section names other than "header".
func countNamedSections(sections []Section) int {
	names := make(map[string]bool, len(sections))
	for _, s := range sections {
		if s.Name != "header" {
			names[s.Name] = true
		}
	}
	return len(names)
}
