package analyzer

import (
	"sort"
	"strings"
)

// ExtractKeywords returns the topN most frequent keyword-grade tokens of
// text, most frequent first. Ties keep first-seen order.
func ExtractKeywords(text string, topN int) []string {
	filtered := FilterStopWords(Tokenize(text))
	counts := make(map[string]int, len(filtered))
	var order []string
	for _, t := range filtered {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topN {
		order = order[:topN]
	}
	return order
}

// ExtractBigrams returns space-joined n-grams built over the filtered token
// stream. Contiguity is contiguity after stop-word removal, not in the
// original text: dropping a stop word can make two words adjacent that were
// not. Known approximation, kept to surface two-word technical phrases.
func ExtractBigrams(text string, n int) []string {
	filtered := FilterStopWords(Tokenize(text))
	if n < 1 || len(filtered) < n {
		return nil
	}
	grams := make([]string, 0, len(filtered)-n+1)
	for i := 0; i+n <= len(filtered); i++ {
		grams = append(grams, strings.Join(filtered[i:i+n], " "))
	}
	return grams
}

// keywordDensity reports what fraction of keywords appear in text as a
// case-insensitive substring.
func keywordDensity(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	found := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found++
		}
	}
	return float64(found) / float64(len(keywords))
}
