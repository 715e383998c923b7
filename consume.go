package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/resumelyze/worker/internal/analyzer"
	"github.com/resumelyze/worker/internal/database"
	"github.com/streadway/amqp"
	"google.golang.org/adk/session"
)

// Analysis modes a session can request. Anything unknown falls back to AI
// (with the local engine as its safety net).
const (
	modeAI     = "ai"
	modeLocal  = "local"
	modeHybrid = "hybrid"
)

// Host-side input validation thresholds. The analysis engine itself accepts
// anything, but results for near-empty inputs are useless, so reject early.
const (
	minResumeChars         = 50
	minJobDescriptionChars = 10
)

// retry retries a function up to `attempts` times with growing backoff.
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

func normalizeMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case modeLocal:
		return modeLocal
	case modeHybrid:
		return modeHybrid
	default:
		return modeAI
	}
}

func errorEntry(resume database.Resume, msg string) ResumeAnalysis {
	return ResumeAnalysis{
		ResumeID:      resume.ID,
		Filename:      resume.OriginalFilename,
		IsErrorResult: true,
		Error:         msg,
	}
}

// analyzeSession runs the pipeline for all resumes in a session: download,
// text extraction, analysis in the requested mode, and DB persistence.
// Per-resume failures become error entries; only session-level failures
// (DB, bad job description) return an error.
func analyzeSession(currentSession Session, workerConfig *WorkerConfig) error {
	ctx := context.Background()
	mode := normalizeMode(currentSession.AnalysisMode)

	if len(strings.TrimSpace(currentSession.JobDescription)) < minJobDescriptionChars {
		return fmt.Errorf("job description too short for session %v", currentSession.ID)
	}

	resumes, err := workerConfig.DB.GetResumesBySession(ctx, currentSession.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for session: %v, err: %v", currentSession.ID, err)
	}

	results := &SessionResults{
		SessionID: currentSession.ID,
	}

	// The agent session exists only when the AI path can actually run.
	useAI := workerConfig.aiAvailable() && mode != modeLocal
	var agentSession *session.CreateResponse
	if useAI {
		agentSession, err = workerConfig.AgentSessionService.Create(ctx, &session.CreateRequest{
			AppName:   workerConfig.AgentName,
			UserID:    currentSession.UserID.String(),
			SessionID: currentSession.ID.String(),
		})
		if err != nil {
			return fmt.Errorf("failed to create agent session: %w", err)
		}
	}

	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})

	for _, resume := range resumes {
		// Downloads are retried: network failures are transient.
		fileBytes, err := retry(3, func() ([]byte, error) {
			return DownloadFromR2(ctx, awsClient, workerConfig.R2.Bucket, resume.ObjectKey)
		})
		if err != nil {
			log.Printf("failed to download %s after retries: %v", resume.ObjectKey, err)
			results.Results = append(results.Results, errorEntry(resume, fmt.Sprintf("file download error: %v", err)))
			continue
		}

		resumeText, err := ExtractResumeText(resume.Mime, fileBytes)
		if err != nil {
			log.Printf("text extraction failed for %s: %v", resume.ObjectKey, err)
			results.Results = append(results.Results, errorEntry(resume, fmt.Sprintf("text extraction error: %v", err)))
			continue
		}
		if len(strings.TrimSpace(resumeText)) < minResumeChars {
			results.Results = append(results.Results, errorEntry(resume, "resume text is too short or empty"))
			continue
		}

		entry := analyzeResume(ctx, workerConfig, agentSession, currentSession, mode, resumeText)
		entry.ResumeID = resume.ID
		entry.Filename = resume.OriginalFilename
		results.Results = append(results.Results, entry)
	}

	if useAI {
		err = workerConfig.AgentSessionService.Delete(ctx, &session.DeleteRequest{
			AppName:   agentSession.Session.AppName(),
			UserID:    agentSession.Session.UserID(),
			SessionID: agentSession.Session.ID(),
		})
		if err != nil {
			return fmt.Errorf("failed to delete agent session: %v", err)
		}
	}
	log.Printf("session %s analyzed (%d resumes, mode %s)", currentSession.ID, len(results.Results), mode)

	resultsJSON, err := json.Marshal(results.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal analyses results: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.CreateOrUpdateAnalysesResults(ctx, database.CreateOrUpdateAnalysesResultsParams{
			Results:      resultsJSON,
			SessionID:    results.SessionID,
			AnalysisMode: mode,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save analysis results after retries: %w", err)
	}

	return nil
}

// analyzeResume produces one result entry in the requested mode. The local
// engine is the safety net: any AI failure degrades to a local result with
// an explicit mode label instead of an error entry.
func analyzeResume(ctx context.Context, workerConfig *WorkerConfig, agentSession *session.CreateResponse, currentSession Session, mode, resumeText string) ResumeAnalysis {
	localResult := func(label string) ResumeAnalysis {
		result := analyzer.Analyze(resumeText, currentSession.JobDescription)
		result.AnalysisMode = label
		return ResumeAnalysis{Result: &result}
	}

	if mode == modeLocal {
		return localResult(modeLocal)
	}
	if !workerConfig.aiAvailable() {
		return localResult("local (no AI key)")
	}

	aiResult, err := runAgentAnalysis(ctx, workerConfig, agentSession, currentSession, resumeText)
	if err != nil {
		log.Printf("AI analysis failed for session %s, falling back to local: %v", currentSession.ID, err)
		return localResult("local (AI fallback)")
	}

	if mode == modeHybrid {
		local := analyzer.Analyze(resumeText, currentSession.JobDescription)
		merged := mergeHybrid(local, aiResult)
		return ResumeAnalysis{Result: &merged.Result, AIExtras: &merged.AIExtras}
	}
	return ResumeAnalysis{Result: &aiResult.Result, AIExtras: &aiResult.AIExtras}
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	conn, err := amqp.Dial(workerConfig.RabbitURL)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"sessions", // queue name
		true,       // durable (survives broker restarts)
		false,      // auto-delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"sessions", // queue name
		"",         // consumer tag
		true,       // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		currentSession := Session{}
		err = json.Unmarshal(msg.Body, &currentSession)
		if err != nil {
			log.Printf("error unmarshalling message body. err: %v", err)
			markSessionFailed(workerConfig, currentSession)
			continue
		}
		log.Printf("Worker %d processing session. session_id: %s", id+1, currentSession.ID)

		publishStatus(workerConfig, currentSession, "processing", "analysis started")
		workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
			Status: "processing",
			ID:     currentSession.ID,
		})

		err = analyzeSession(currentSession, workerConfig)
		if err != nil {
			log.Printf("error analyzing session_id: %v. err: %v", currentSession.ID, err)
			markSessionFailed(workerConfig, currentSession)
			continue
		}

		workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
			Status: "completed",
			ID:     currentSession.ID,
		})
		publishStatus(workerConfig, currentSession, "completed", "analysis completed")
	}
}

func markSessionFailed(workerConfig *WorkerConfig, currentSession Session) {
	workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
		Status: "failed",
		ID:     currentSession.ID,
	})
	publishStatus(workerConfig, currentSession, "failed", "analysis failed")
}

func publishStatus(workerConfig *WorkerConfig, currentSession Session, status, message string) {
	update := map[string]any{
		"session_id": currentSession.ID,
		"status":     status,
		"message":    message,
		"timestamp":  time.Now(),
	}
	if err := publishSessionUpdate(workerConfig.RabbitConn, currentSession.ID.String(), update); err != nil {
		log.Println("failed to publish update:", err)
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		log.Println("worker id ", i+1, "started")
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
