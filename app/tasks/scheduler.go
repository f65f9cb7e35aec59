package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/techdigest/techdigest/app/blog"
	"github.com/techdigest/techdigest/app/summarize"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

// Scheduler runs refresh tasks on a fixed interval and on demand. Nothing
// prevents two refreshes from overlapping; the refresh interval is expected
// to dwarf a run's duration.
type Scheduler struct {
	entryRepo   blog.EntryRepository
	sourceRepo  blog.SourceRepository
	statusRepo  JobStatusRepository
	summarizer  summarize.Summarizer
	httpClient  *http.Client
	userAgent   string
	interval    time.Duration
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewScheduler(entryRepo blog.EntryRepository, sourceRepo blog.SourceRepository,
	statusRepo JobStatusRepository, summarizer summarize.Summarizer,
	httpClient *http.Client, userAgent string, interval time.Duration, workerCount int) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		entryRepo:   entryRepo,
		sourceRepo:  sourceRepo,
		statusRepo:  statusRepo,
		summarizer:  summarizer,
		httpClient:  httpClient,
		userAgent:   userAgent,
		interval:    interval,
		workerCount: workerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 10),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				if err := s.EnqueueRefresh(); err != nil {
					slog.Warn("Failed to enqueue scheduled refresh", "error", err)
				}
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

// EnqueueRefresh queues a full refresh run and returns immediately.
func (s *Scheduler) EnqueueRefresh() error {
	task := NewRefreshTask(s.entryRepo, s.sourceRepo, s.statusRepo, s.summarizer, s.httpClient, s.userAgent)
	return s.EnqueueTask(task)
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	if err := task.Execute(s.ctx); err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "error", err)
		return
	}

	slog.Debug("Worker task finished", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "duration", task.GetDuration())
}
