package analyzer

import "math"

// TFIDFCosineSimilarity computes the cosine similarity of the TF-IDF
// vectors of two texts over their pairwise vocabulary.
//
// This is deliberately not corpus TF-IDF: the "IDF" only ever sees two
// documents, so it collapses to a binary discriminability weight.
// ln(2/docCount)+1 is ln(2)+1 for words in one document and 1 for words in
// both. Returns 0 when either vector has zero magnitude (empty or
// stop-word-only input).
func TFIDFCosineSimilarity(textA, textB string) float64 {
	tokensA := dropStopWords(Tokenize(textA))
	tokensB := dropStopWords(Tokenize(textB))

	countsA := tokenCounts(tokensA)
	countsB := tokenCounts(tokensB)

	// Union vocabulary in first-seen order keeps the walk deterministic.
	seen := make(map[string]bool, len(countsA)+len(countsB))
	var vocab []string
	for _, t := range tokensA {
		if !seen[t] {
			seen[t] = true
			vocab = append(vocab, t)
		}
	}
	for _, t := range tokensB {
		if !seen[t] {
			seen[t] = true
			vocab = append(vocab, t)
		}
	}
	if len(vocab) == 0 {
		return 0
	}

	lenA := math.Max(float64(len(tokensA)), 1)
	lenB := math.Max(float64(len(tokensB)), 1)

	var dot, magA, magB float64
	for _, w := range vocab {
		docCount := 0
		if countsA[w] > 0 {
			docCount++
		}
		if countsB[w] > 0 {
			docCount++
		}
		idf := math.Log(2/float64(docCount)) + 1
		a := float64(countsA[w]) / lenA * idf
		b := float64(countsB[w]) / lenB * idf
		dot += a * b
		magA += a * a
		magB += b * b
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

func tokenCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
