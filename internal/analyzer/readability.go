package analyzer

import (
	"math"
	"regexp"
	"strings"
)

var sentenceDelim = regexp.MustCompile(`[.!?]+`)

// Readability scores text 0–100 from sentence length and word length.
// Sentences near the ideal length score best; a high fraction of long
// words drags the score down. Text with no sentences or no words gets the
// neutral fallback rather than an error.
func Readability(text string) int {
	sentences := 0
	for _, s := range sentenceDelim.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	words := Tokenize(text)
	if sentences == 0 || len(words) == 0 {
		return readabilityFallback
	}

	avgSentenceLen := float64(len(words)) / float64(sentences)
	longWords := 0
	for _, w := range words {
		if len(w) > longWordLen {
			longWords++
		}
	}
	longWordFraction := float64(longWords) / float64(len(words))

	sentenceScore := math.Max(0, 100-math.Abs(avgSentenceLen-idealSentenceLen)*sentenceLenPenalty)
	wordScore := math.Max(0, 100-longWordFraction*longWordPenalty)
	return int(math.Min(100, math.Round((sentenceScore+wordScore)/2)))
}
