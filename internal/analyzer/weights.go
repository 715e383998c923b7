package analyzer

// All scoring heuristics are plain linear blends with hand-picked weights.
// They are grouped here so they can be tuned and tested independently of the
// algorithms that use them.
const (
	minTokenLen   = 2
	maxTokenLen   = 31
	minKeywordLen = 3

	topJDKeywords      = 40 // JD keywords used for found/missing and density
	topSectionKeywords = 30 // JD keywords used for per-section density
	maxJDBigrams       = 20

	// Overall match: 50/50 blend of cosine similarity and keyword density.
	matchSimilarityWeight = 0.5
	matchDensityWeight    = 0.5
	matchScoreFloor       = 5

	// Per-section score: 60/40 blend, floored so a present section never
	// reads as a hard zero.
	sectionSimilarityWeight = 0.6
	sectionDensityWeight    = 0.4
	sectionScoreFloor       = 10
	missingSectionScore     = 20
	minSectionChars         = 10

	// ATS compatibility.
	emailPoints        = 10
	phonePoints        = 10
	linkedinPoints     = 5
	sectionBonusPer    = 6
	sectionBonusCap    = 30
	atsMatchWeight     = 0.4
	atsDensityWeight   = 20
	wellStructuredMin  = 4 // sections needed for "well-structured" feedback
	atsFormattingNudge = 60

	// Readability: sentences near 17 words score best, long words (>6
	// chars) are penalized.
	idealSentenceLen    = 17.0
	sentenceLenPenalty  = 3.0
	longWordLen         = 6
	longWordPenalty     = 200.0
	readabilityFallback = 50
	readabilityGoodMin  = 70

	// Derivation thresholds for strengths/weaknesses/action items.
	goodMatchMin        = 60
	sectionStrongMin    = 70
	sectionWeakMax      = 40
	sectionNudgeMax     = 50
	strongPresenceMin   = 65
	moderatePresenceMin = 40

	// List caps.
	keywordMergeCap  = 20
	resultKeywordCap = 15
	resultListCap    = 6
	resultRoleCap    = 5
)
