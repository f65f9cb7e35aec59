package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/techdigest/techdigest/app/store"
)

const (
	jobStatusKey = "job:status"

	// JobStatusTTL keeps stale progress records from outliving their run.
	JobStatusTTL = 24 * time.Hour

	JobStateIdle      = "idle"
	JobStateRunning   = "running"
	JobStateCompleted = "completed"

	SourceStateFetching   = "fetching"
	SourceStateProcessing = "processing"
	SourceStateCompleted  = "completed"
	SourceStateError      = "error"
)

// JobStatus is the progress record for a refresh run. There is exactly one;
// each mutation rewrites it wholesale so readers always see a consistent
// snapshot.
type JobStatus struct {
	Status            string                   `json:"status"`
	Message           string                   `json:"message"`
	StartedAt         *time.Time               `json:"startedAt,omitempty"`
	CompletedAt       *time.Time               `json:"completedAt,omitempty"`
	UpdatedAt         *time.Time               `json:"updatedAt,omitempty"`
	Sources           map[string]*SourceStatus `json:"sources"`
	TotalArticles     int                      `json:"totalArticles"`
	ProcessedArticles int                      `json:"processedArticles"`
	Errors            []JobError               `json:"errors"`
}

// SourceStatus tracks one source within a run.
type SourceStatus struct {
	Status    string `json:"status"`
	Articles  int    `json:"articles"`
	Processed int    `json:"processed"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	IsCustom  bool   `json:"isCustom"`
	Error     string `json:"error,omitempty"`
}

// JobError records one failure without interrupting the run. URL is empty
// for source-level failures.
type JobError struct {
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
	Error  string `json:"error"`
}

// IdleStatus is what readers see before any refresh has run.
func IdleStatus() *JobStatus {
	return &JobStatus{
		Status:  JobStateIdle,
		Message: "No job has been run yet",
		Sources: map[string]*SourceStatus{},
		Errors:  []JobError{},
	}
}

var _ JobStatusRepository = (*StatusRepository)(nil)

// StatusRepository persists the job status record in the key-value store.
type StatusRepository struct {
	store store.Store
}

func NewStatusRepository(s store.Store) *StatusRepository {
	return &StatusRepository{store: s}
}

// GetStatus returns the stored record, or nil when none exists.
func (r *StatusRepository) GetStatus(ctx context.Context) (*JobStatus, error) {
	data, err := r.store.Get(ctx, jobStatusKey)
	if err != nil {
		return nil, fmt.Errorf("get job status: %w", err)
	}
	if data == "" {
		return nil, nil
	}

	var status JobStatus
	if err := json.Unmarshal([]byte(data), &status); err != nil {
		return nil, fmt.Errorf("unmarshal job status: %w", err)
	}
	return &status, nil
}

// SaveStatus stamps UpdatedAt and rewrites the record.
func (r *StatusRepository) SaveStatus(ctx context.Context, status *JobStatus) error {
	now := time.Now().UTC()
	status.UpdatedAt = &now

	if err := r.store.Set(ctx, jobStatusKey, status, JobStatusTTL); err != nil {
		return fmt.Errorf("save job status: %w", err)
	}
	return nil
}
