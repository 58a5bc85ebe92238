package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/atsworker/internal/ats"
	"github.com/muhammadolammi/atsworker/internal/database"
)

type WorkerConfig struct {
	DB       resumeQueries
	Store    resumeDownloader
	Updates  updatePublisher
	Narrator narrator // nil disables narratives
	// connection settings for the per-worker consumer
	RABBITMQUrl string
	Queue       string
}

type resumeQueries interface {
	GetSession(ctx context.Context, id uuid.UUID) (database.Session, error)
	GetResumesBySession(ctx context.Context, sessionID uuid.UUID) ([]database.Resume, error)
	UpdateSessionStatus(ctx context.Context, arg database.UpdateSessionStatusParams) error
	UpsertATSReports(ctx context.Context, arg database.UpsertATSReportsParams) error
}

type resumeDownloader interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

type updatePublisher interface {
	Publish(sessionID string, update map[string]any) error
}

type narrator interface {
	Narrate(ctx context.Context, userID, sessionID, msg string) (string, error)
}

// AnalysesResult is the outcome for one resume of a session.
type AnalysesResult struct {
	ResumeID  uuid.UUID   `json:"resume_id"`
	Filename  string      `json:"filename"`
	Report    *ats.Result `json:"report,omitempty"`
	Narrative string      `json:"narrative,omitempty"`
	// Error result entry
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`
}

type AnalysesResults struct {
	SessionID uuid.UUID        `json:"session_id"`
	Results   []AnalysesResult `json:"results"`
}

// AverageScore is the mean overall score of the successful results, or 0.
func (r *AnalysesResults) AverageScore() int {
	total, n := 0, 0
	for _, res := range r.Results {
		if res.IsErrorResult || res.Report == nil {
			continue
		}
		total += res.Report.OverallScore
		n++
	}
	if n == 0 {
		return 0
	}
	return total / n
}

type Session struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Name           string    `json:"name"`
	UserID         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
}

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
	statusFailed     = "failed"
)
