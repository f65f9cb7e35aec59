package api

import (
	"github.com/techdigest/techdigest/app/auth"
	"github.com/techdigest/techdigest/app/blog"
	"github.com/techdigest/techdigest/app/store"
	"github.com/techdigest/techdigest/app/tasks"
)

// RefreshEnqueuerInterface is the slice of the scheduler the API needs:
// kick off a refresh without waiting for it.
type RefreshEnqueuerInterface interface {
	EnqueueRefresh() error
}

var _ RefreshEnqueuerInterface = (*tasks.Scheduler)(nil)

type Handler struct {
	entryRepo    blog.EntryRepository
	sourceRepo   blog.SourceRepository
	statusRepo   tasks.JobStatusRepository
	userRepo     auth.UserRepository
	sessionRepo  auth.SessionRepository
	scheduler    RefreshEnqueuerInterface
	store        store.Store
	passwordSalt string
}
