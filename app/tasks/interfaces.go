package tasks

import "context"

// TaskSchedulerInterface defines the interface for background task
// scheduling. Used by the main application and the API layer to run
// refreshes without blocking a request.
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}

// JobStatusRepository persists the single refresh progress record.
type JobStatusRepository interface {
	GetStatus(ctx context.Context) (*JobStatus, error)
	SaveStatus(ctx context.Context, status *JobStatus) error
}
