package analyzer

import "strings"

// Tokenize splits text into lowercase word tokens in input order. The
// characters + # . count as word characters so tokens like "c++", "c#" and
// "node.js" survive as single units; trailing dots are trimmed so sentence
// punctuation does not stick to the last word. Tokens are 2–31 characters
// and always start with an ASCII letter.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len(w) >= minTokenLen && len(w) <= maxTokenLen {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			word.WriteRune(r)
		case (r == '+' || r == '#' || r == '.') && word.Len() > 0:
			word.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// FilterStopWords drops stop words and tokens shorter than 3 characters,
// leaving keyword-grade tokens.
func FilterStopWords(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if len(t) >= minKeywordLen && !stopWords[t] {
			out = append(out, t)
		}
	}
	return out
}

// dropStopWords removes stop words without the keyword length floor. The
// similarity engine vectorizes short tokens like "go" that keyword
// extraction ignores.
func dropStopWords(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if !stopWords[t] {
			out = append(out, t)
		}
	}
	return out
}
