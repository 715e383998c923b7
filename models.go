package main

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/resumelyze/worker/internal/analyzer"
	"github.com/resumelyze/worker/internal/database"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB                  *database.Queries
	R2                  *R2Config
	AwsConfig           *aws.Config
	RabbitConn          *amqp.Connection
	RabbitURL           string
	AgentRunner         *runner.Runner
	AgentSessionService session.Service
	AgentName           string
}

// aiAvailable reports whether the Gemini agent was configured at startup.
// Without it every session falls back to the local engine.
func (c *WorkerConfig) aiAvailable() bool {
	return c.AgentRunner != nil
}

// Session is the queue payload: one analysis request covering all resumes
// uploaded for a job posting. AnalysisMode is "ai", "local" or "hybrid";
// empty means "ai".
type Session struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Name           string    `json:"name"`
	UserID         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
	AnalysisMode   string    `json:"analysis_mode"`
}

// AIExtras carries AI-only findings the local engine never produces. All
// fields are optional; consumers must render a result with or without them.
type AIExtras struct {
	Cliches                []string `json:"cliches,omitempty"`
	ActionVerbAnalysis     string   `json:"action_verb_analysis,omitempty"`
	QuantificationAnalysis string   `json:"quantification_analysis,omitempty"`
	RewriteSuggestions     []string `json:"rewrite_suggestions,omitempty"`
	LetterGrade            string   `json:"letter_grade,omitempty"`
}

// aiAnalysis is what the agent returns: the shared result shape plus the
// optional AI-only fields, so a local result stays a structural subset.
type aiAnalysis struct {
	analyzer.Result
	AIExtras
}

// ResumeAnalysis is the per-resume entry in a session's stored results.
// Either Result is set, or IsErrorResult is true and Error says why.
type ResumeAnalysis struct {
	ResumeID      uuid.UUID        `json:"resume_id"`
	Filename      string           `json:"filename,omitempty"`
	Result        *analyzer.Result `json:"result,omitempty"`
	AIExtras      *AIExtras        `json:"ai_extras,omitempty"`
	IsErrorResult bool             `json:"is_error_result"`
	Error         string           `json:"error,omitempty"`
}

type SessionResults struct {
	ID        uuid.UUID        `json:"id"`
	Results   []ResumeAnalysis `json:"results" db:"results"`
	CreatedAt time.Time        `json:"created_at"`
	SessionID uuid.UUID        `json:"session_id"`
	UpdatedAt time.Time        `json:"updated_at"`
}
