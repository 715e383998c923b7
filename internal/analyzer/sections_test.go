package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com | +1 555 123 4567

Professional Summary
Backend engineer with five years of experience.

Technical Skills
Python, Django, PostgreSQL, Docker

Work Experience
Software Engineer at Acme. Built REST APIs.

Education
B.S. Computer Science, 2020`

func TestDetectSectionsNames(t *testing.T) {
	sections := DetectSections(sampleResume)
	var names []string
	for _, s := range sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"header", "professional summary", "technical skills", "work experience", "education"}, names)
}

func TestDetectSectionsNormalizesHeaderText(t *testing.T) {
	sections := DetectSections("SKILLS:\nGo, SQL")
	require.Len(t, sections, 1)
	// Key comes from the literal header line, lowercased and stripped of
	// non-letters, not from a canonical label.
	assert.Equal(t, "skills", sections[0].Name)
	assert.Equal(t, "SKILLS:\nGo, SQL", sections[0].Content)
}

func TestDetectSectionsLossless(t *testing.T) {
	inputs := []string{
		sampleResume,
		"no headers at all\njust two lines",
		"",
		"Skills\n\n\nPython\n",
		"Experience\nEducation\nSkills", // back-to-back headers
	}
	for _, in := range inputs {
		sections := DetectSections(in)
		var blocks []string
		for _, s := range sections {
			blocks = append(blocks, s.Content)
		}
		assert.Equal(t, in, strings.Join(blocks, "\n"), "input must be reconstructable")
	}
}

func TestDetectSectionsNoHeaders(t *testing.T) {
	sections := DetectSections("one unbroken paragraph without any recognizable markers")
	require.Len(t, sections, 1)
	assert.Equal(t, "header", sections[0].Name)
}

func TestDetectSectionsFirstPatternWins(t *testing.T) {
	// "summary" is tested before "objective"; a line matching both keys
	// under the first pattern's normalization of its literal text.
	sections := DetectSections("Summary\ntext")
	require.Len(t, sections, 1)
	assert.Equal(t, "summary", sections[0].Name)
}

func TestLookupSectionAliasOrder(t *testing.T) {
	sections := []Section{
		{Name: "technical skills", Content: "tech"},
		{Name: "skills", Content: "plain"},
	}
	// First alias present wins, regardless of document order.
	got := lookupSection(sections, []string{"skills", "technical skills"})
	assert.Equal(t, "plain", got)
	assert.Equal(t, "", lookupSection(sections, []string{"education"}))
}

func TestCountNamedSections(t *testing.T) {
	sections := DetectSections(sampleResume)
	assert.Equal(t, 4, countNamedSections(sections))

	// Duplicate names count once; header never counts.
	dup := DetectSections("Skills\na\nSkills\nb")
	assert.Equal(t, 1, countNamedSections(dup))
}
