package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/atsworker/internal/ats"
	"github.com/muhammadolammi/atsworker/internal/database"
	"github.com/muhammadolammi/atsworker/internal/extract"
	"github.com/streadway/amqp"
)

// retryBackoff is the base wait between attempts; attempt i waits (i+1)*retryBackoff.
var retryBackoff = 500 * time.Millisecond

// retry retries a function up to `attempts` times with linear backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if i < attempts-1 {
			time.Sleep(time.Duration(i+1) * retryBackoff)
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

func errorResult(resume database.Resume, format string, args ...any) AnalysesResult {
	return AnalysesResult{
		ResumeID:      resume.ID,
		Filename:      resume.OriginalFilename,
		IsErrorResult: true,
		Error:         fmt.Sprintf(format, args...),
	}
}

// analyzeResume downloads, extracts and scores a single resume. Failures are
// returned as error results so the rest of the session can still be scored.
func analyzeResume(ctx context.Context, session Session, resume database.Resume, workerConfig *WorkerConfig) AnalysesResult {
	fileBytes, err := retry(3, func() ([]byte, error) {
		return workerConfig.Store.Download(ctx, resume.ObjectKey)
	})
	if err != nil {
		slog.Warn("resume download failed", slog.String("object_key", resume.ObjectKey), slog.Any("error", err))
		return errorResult(resume, "file download error: %v", err)
	}

	resumeText, err := extract.ResumeText(resume.Mime, fileBytes)
	if err != nil {
		slog.Warn("text extraction failed", slog.String("object_key", resume.ObjectKey), slog.Any("error", err))
		return errorResult(resume, "text extraction error: %v", err)
	}

	report, err := ats.Analyze(resumeText, session.JobDescription)
	if errors.Is(err, ats.ErrEmptyInput) {
		return errorResult(resume, "no extractable text in resume")
	}
	if err != nil {
		return errorResult(resume, "analysis error: %v", err)
	}

	result := AnalysesResult{
		ResumeID: resume.ID,
		Filename: resume.OriginalFilename,
		Report:   &report,
	}
	if workerConfig.Narrator != nil {
		msg, err := narrativeMessage(session, resumeText, report)
		if err == nil {
			result.Narrative, err = workerConfig.Narrator.Narrate(ctx, session.UserID.String(),
				session.ID.String()+":"+resume.ID.String(), msg)
		}
		if err != nil {
			// narrative is optional
			slog.Warn("narrative failed", slog.String("resume_id", resume.ID.String()), slog.Any("error", err))
		}
	}
	return result
}

// analyzeSession scores every resume of a session and persists the reports.
func analyzeSession(ctx context.Context, currentSession Session, workerConfig *WorkerConfig) error {
	if currentSession.JobDescription == "" {
		stored, err := workerConfig.DB.GetSession(ctx, currentSession.ID)
		if err != nil {
			return fmt.Errorf("error loading session %v: %w", currentSession.ID, err)
		}
		currentSession.UserID = stored.UserID
		currentSession.JobTitle = stored.JobTitle
		currentSession.JobDescription = stored.JobDescription
	}

	resumes, err := workerConfig.DB.GetResumesBySession(ctx, currentSession.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for session %v: %w", currentSession.ID, err)
	}

	results := &AnalysesResults{
		SessionID: currentSession.ID,
		Results:   make([]AnalysesResult, 0, len(resumes)),
	}
	for _, resume := range resumes {
		results.Results = append(results.Results, analyzeResume(ctx, currentSession, resume, workerConfig))
	}
	slog.Info("session analyzed",
		slog.String("session_id", currentSession.ID.String()),
		slog.Int("resumes", len(resumes)),
		slog.Int("average_score", results.AverageScore()),
	)

	resultsJSON, err := json.Marshal(results.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal ats reports: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.UpsertATSReports(ctx, database.UpsertATSReportsParams{
			SessionID:    results.SessionID,
			Reports:      resultsJSON,
			ResumeCount:  int32(len(results.Results)),
			AverageScore: int32(results.AverageScore()),
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save ats reports after retries: %w", err)
	}
	return nil
}

// setStatus records a session status in the database and announces it.
func setStatus(ctx context.Context, workerConfig *WorkerConfig, sessionID uuid.UUID, status, message string) {
	if sessionID == uuid.Nil {
		slog.Warn("skipping status update for message without session id", slog.String("status", status))
		return
	}
	if err := workerConfig.DB.UpdateSessionStatus(ctx, database.UpdateSessionStatusParams{
		Status: status,
		ID:     sessionID,
	}); err != nil {
		slog.Error("failed to update session status",
			slog.String("session_id", sessionID.String()), slog.String("status", status), slog.Any("error", err))
	}
	if err := workerConfig.Updates.Publish(sessionID.String(), statusUpdate(sessionID, status, message)); err != nil {
		slog.Error("failed to publish update", slog.String("session_id", sessionID.String()), slog.Any("error", err))
	}
}

// handleMessage processes one queued session message end to end.
func handleMessage(ctx context.Context, workerID int, workerConfig *WorkerConfig, body []byte) {
	session := Session{}
	if err := json.Unmarshal(body, &session); err != nil {
		slog.Error("error unmarshalling message body", slog.Any("error", err))
		setStatus(ctx, workerConfig, session.ID, statusFailed, "analysis failed")
		return
	}
	slog.Info("processing session", slog.Int("worker", workerID+1), slog.String("session_id", session.ID.String()))

	setStatus(ctx, workerConfig, session.ID, statusProcessing, "analysis started")

	if err := analyzeSession(ctx, session, workerConfig); err != nil {
		slog.Error("session analysis failed", slog.String("session_id", session.ID.String()), slog.Any("error", err))
		setStatus(ctx, workerConfig, session.ID, statusFailed, "analysis failed")
		return
	}
	setStatus(ctx, workerConfig, session.ID, statusCompleted, "analysis completed")
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		slog.Error("error dialling rabbitmq", slog.Int("worker", id+1), slog.Any("error", err))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		slog.Error("error opening rabbitmq channel", slog.Int("worker", id+1), slog.Any("error", err))
		return
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		workerConfig.Queue, // queue name
		true,               // durable (survives broker restarts)
		false,              // auto-delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		slog.Error("failed to declare queue", slog.String("queue", workerConfig.Queue), slog.Any("error", err))
		return
	}

	msgs, err := ch.Consume(
		workerConfig.Queue, // queue name
		"",                 // consumer tag
		true,               // auto-ack
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		slog.Error("error consuming rabbitmq messages", slog.Any("error", err))
		return
	}

	for msg := range msgs {
		handleMessage(context.Background(), id, workerConfig, msg.Body)
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		slog.Info("worker started", slog.Int("worker", i+1))
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
