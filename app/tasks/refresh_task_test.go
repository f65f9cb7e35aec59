package tasks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/techdigest/techdigest/app/blog"
	"github.com/techdigest/techdigest/app/store"
	"github.com/techdigest/techdigest/app/summarize"
)

type stubSummarizer struct{}

func (stubSummarizer) Run(ctx context.Context, title, content string) summarize.Summary {
	return summarize.Summary{
		Brief:        "brief summary",
		Detailed:     "detailed summary",
		KeyPoints:    []string{"one point"},
		Technologies: []string{"go"},
	}
}

func articleBody(title string) string {
	filler := strings.Repeat("We run kubernetes and docker on aws with strong scalability requirements. ", 5)
	return "<html><head><title>" + title + "</title></head><body><p>" + filler + "</p></body></html>"
}

func newTestServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
<h2><a href="/posts/building-a-fast-cache">Building A Fast Cache For Production</a></h2>
<h2><a href="/posts/scaling-our-workers">Scaling Our Workers Across Regions</a></h2>
<h2><a href="/posts/short-note-on-releases">A Short Note On Upcoming Releases</a></h2>
</body></html>`))
	})
	mux.HandleFunc("/posts/building-a-fast-cache", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articleBody("Building A Fast Cache")))
	})
	mux.HandleFunc("/posts/scaling-our-workers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articleBody("Scaling Our Workers")))
	})
	mux.HandleFunc("/posts/short-note-on-releases", func(w http.ResponseWriter, r *http.Request) {
		// Below the minimum content threshold
		w.Write([]byte("<html><body><p>tiny</p></body></html>"))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return httptest.NewServer(mux)
}

func newTestTask(srv *httptest.Server, kv *store.Memory) (*RefreshTask, blog.EntryRepository) {
	entryRepo := blog.NewRepository(kv)
	sourceRepo := blog.NewCustomSources(kv)
	statusRepo := NewStatusRepository(kv)

	task := NewRefreshTask(entryRepo, sourceRepo, statusRepo, stubSummarizer{}, srv.Client(), "test-agent")
	return task, entryRepo
}

func runningStatus() *JobStatus {
	return &JobStatus{
		Status:  JobStateRunning,
		Sources: map[string]*SourceStatus{},
		Errors:  []JobError{},
	}
}

func TestProcessSource(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	kv := store.NewMemory()
	task, entryRepo := newTestTask(srv, kv)
	status := runningStatus()
	ctx := context.Background()

	source := blog.Source{ID: "custom_test", Name: "Test Blog", URL: srv.URL + "/", IsCustom: true}
	task.processSource(ctx, source, status)

	ss := status.Sources["custom_test"]
	if ss == nil {
		t.Fatal("Expected source status recorded")
	}
	if ss.Status != SourceStateCompleted {
		t.Errorf("Expected source completed, got %q (error: %q)", ss.Status, ss.Error)
	}
	if ss.Articles != 3 {
		t.Errorf("Expected 3 discovered articles, got %d", ss.Articles)
	}
	// The short article is a soft skip: counted processed, nothing stored
	if ss.Processed != 3 {
		t.Errorf("Expected 3 processed, got %d", ss.Processed)
	}
	if len(status.Errors) != 0 {
		t.Errorf("Expected no errors, got %v", status.Errors)
	}

	index, err := entryRepo.GetIndex(ctx)
	if err != nil {
		t.Fatalf("GetIndex failed: %v", err)
	}
	if len(index) != 2 {
		t.Fatalf("Expected 2 index entries, got %d", len(index))
	}

	entry, err := entryRepo.GetEntry(ctx, blog.EntryID(srv.URL+"/posts/building-a-fast-cache"))
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if entry == nil {
		t.Fatal("Expected entry persisted")
	}
	if entry.Summary != "brief summary" || entry.FullSummary != "detailed summary" {
		t.Errorf("Unexpected summary fields: %+v", entry)
	}
	if entry.Category != "infrastructure" {
		t.Errorf("Expected 'infrastructure' category, got %q", entry.Category)
	}
	if entry.Source != "custom_test" || entry.SourceName != "Test Blog" {
		t.Errorf("Unexpected source attribution: %+v", entry)
	}
	if entry.ContentLength < minContentLength {
		t.Errorf("Expected content length above threshold, got %d", entry.ContentLength)
	}
}

func TestProcessSourceIdempotent(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	kv := store.NewMemory()
	task, entryRepo := newTestTask(srv, kv)
	ctx := context.Background()

	source := blog.Source{ID: "custom_test", Name: "Test Blog", URL: srv.URL + "/", IsCustom: true}
	task.processSource(ctx, source, runningStatus())
	task.processSource(ctx, source, runningStatus())

	index, err := entryRepo.GetIndex(ctx)
	if err != nil {
		t.Fatalf("GetIndex failed: %v", err)
	}
	if len(index) != 2 {
		t.Errorf("Expected 2 index entries after rerun, got %d", len(index))
	}

	count, err := entryRepo.EntryCount(ctx)
	if err != nil {
		t.Fatalf("EntryCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 stored entries after rerun, got %d", count)
	}
}

func TestProcessSourceListingError(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	kv := store.NewMemory()
	task, _ := newTestTask(srv, kv)
	status := runningStatus()

	source := blog.Source{ID: "custom_bad", Name: "Broken Blog", URL: srv.URL + "/broken", IsCustom: true}
	task.processSource(context.Background(), source, status)

	ss := status.Sources["custom_bad"]
	if ss == nil || ss.Status != SourceStateError {
		t.Fatalf("Expected error status, got %+v", ss)
	}
	if ss.Error == "" {
		t.Error("Expected error message recorded")
	}
	if len(status.Errors) != 1 {
		t.Fatalf("Expected 1 job error, got %d", len(status.Errors))
	}
	if status.Errors[0].Source != "custom_bad" || status.Errors[0].URL != "" {
		t.Errorf("Unexpected job error: %+v", status.Errors[0])
	}
}

func TestStatusRepositoryRoundTrip(t *testing.T) {
	repo := NewStatusRepository(store.NewMemory())
	ctx := context.Background()

	got, err := repo.GetStatus(ctx)
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil before first save, got %+v", got)
	}

	status := runningStatus()
	status.Message = "working"
	if err := repo.SaveStatus(ctx, status); err != nil {
		t.Fatalf("SaveStatus failed: %v", err)
	}
	if status.UpdatedAt == nil {
		t.Error("Expected UpdatedAt stamped on save")
	}

	got, err = repo.GetStatus(ctx)
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if got == nil || got.Status != JobStateRunning || got.Message != "working" {
		t.Errorf("Round trip mismatch: %+v", got)
	}
}
