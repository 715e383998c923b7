package analyzer

// Static dictionaries. All of these are process-wide constant data and must
// never be mutated at runtime.

// stopWords filters common English function words out of keyword-grade
// token streams.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"had": true, "has": true, "have": true, "he": true, "her": true,
	"his": true, "how": true, "i": true, "if": true, "in": true,
	"into": true, "is": true, "it": true, "its": true, "just": true,
	"me": true, "more": true, "my": true, "no": true, "nor": true,
	"not": true, "of": true, "on": true, "or": true, "our": true,
	"out": true, "own": true, "per": true, "she": true, "so": true,
	"some": true, "than": true, "that": true, "the": true, "their": true,
	"them": true, "then": true, "there": true, "these": true, "they": true,
	"this": true, "those": true, "through": true, "to": true, "too": true,
	"under": true, "up": true, "very": true, "was": true, "we": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "whom": true, "why": true, "will": true,
	"with": true, "would": true, "you": true, "your": true, "yours": true,
	"yourself": true, "yourselves": true, "am": true, "been": true,
	"being": true, "both": true, "can": true, "could": true, "did": true,
	"do": true, "does": true, "doing": true, "done": true, "each": true,
	"few": true, "get": true, "gets": true, "got": true, "having": true,
	"here": true, "hers": true, "herself": true, "himself": true,
	"might": true, "must": true, "should": true, "theirs": true,
	"themselves": true, "itself": true,
}

// techKeywords backfills the found/missing lists with domain terms that
// generic frequency extraction can miss when they appear only once.
// Multi-word phrases from the source vocabulary are carried as individual
// words; matching is by substring, so "machine" and "learning" still catch
// "machine learning".
var techKeywords = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue",
	"nextjs", "nodejs", "express", "fastapi", "django", "flask", "spring",
	"sql", "nosql", "mongodb", "postgresql", "mysql", "redis", "docker",
	"kubernetes", "aws", "azure", "gcp", "git", "github", "gitlab", "ci",
	"cd", "devops", "agile", "scrum", "kanban", "html", "css", "sass",
	"tailwind", "bootstrap", "webpack", "vite", "graphql", "rest", "api",
	"microservices", "machine", "learning", "deep", "nlp", "ai",
	"tensorflow", "pytorch", "pandas", "numpy", "scipy", "sklearn", "data",
	"science", "analytics", "visualization", "tableau", "power", "bi",
	"excel", "cloud", "computing", "serverless", "lambda", "s3", "ec2",
	"rds", "dynamodb", "terraform", "ansible", "linux", "unix", "bash",
	"shell", "scripting", "automation", "testing", "jest", "pytest",
	"selenium", "figma", "photoshop", "illustrator", "ux", "ui", "design",
	"wireframe", "prototype", "project", "management", "leadership",
	"communication", "teamwork", "collaboration", "problem", "solving",
	"critical", "thinking", "analytical", "attention", "detail",
}

// roleEntry maps a resume keyword to a role recommendation. Scanned in
// order so output stays deterministic.
type roleEntry struct {
	keyword string
	role    string
}

var roleTable = []roleEntry{
	{"python", "Python Developer"},
	{"javascript", "Frontend Developer"},
	{"react", "React Developer"},
	{"nodejs", "Node.js Developer"},
	{"data science", "Data Scientist"},
	{"machine learning", "ML Engineer"},
	{"devops", "DevOps Engineer"},
	{"cloud", "Cloud Engineer"},
	{"design", "UI/UX Designer"},
	{"project management", "Project Manager"},
}

// fallbackRoles is returned when nothing in roleTable matches.
var fallbackRoles = []string{"Software Developer", "IT Professional"}
