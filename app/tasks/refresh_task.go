package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/techdigest/techdigest/app/blog"
	"github.com/techdigest/techdigest/app/extract"
	"github.com/techdigest/techdigest/app/summarize"
)

const (
	// articlesPerSource bounds how many discovered links one run processes
	// for each source.
	articlesPerSource = 5

	// minContentLength is the threshold below which an article is judged
	// unextractable and skipped without recording an error.
	minContentLength = 200
)

// RefreshTask walks every source, discovers article links, and processes
// each new article: extract, classify, summarize, persist. Sources and
// articles are handled strictly sequentially; failures are scoped so one
// bad source or article never aborts the run.
type RefreshTask struct {
	Task
	entryRepo  blog.EntryRepository
	sourceRepo blog.SourceRepository
	statusRepo JobStatusRepository
	summarizer summarize.Summarizer
	httpClient *http.Client
	userAgent  string
}

func NewRefreshTask(entryRepo blog.EntryRepository, sourceRepo blog.SourceRepository,
	statusRepo JobStatusRepository, summarizer summarize.Summarizer,
	httpClient *http.Client, userAgent string) *RefreshTask {
	return &RefreshTask{
		Task:       NewTask(TaskTypeRefresh),
		entryRepo:  entryRepo,
		sourceRepo: sourceRepo,
		statusRepo: statusRepo,
		summarizer: summarizer,
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

func (t *RefreshTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	now := time.Now().UTC()
	status := &JobStatus{
		Status:    JobStateRunning,
		Message:   "Starting blog refresh...",
		StartedAt: &now,
		Sources:   map[string]*SourceStatus{},
		Errors:    []JobError{},
	}
	if err := t.statusRepo.SaveStatus(ctx, status); err != nil {
		return fmt.Errorf("failed to initialize job status: %w", err)
	}

	sources := blog.BuiltinSources()
	custom, err := t.sourceRepo.AllCustomSources(ctx)
	if err != nil {
		slog.Warn("Failed to load custom sources, refreshing built-ins only", "error", err)
	} else {
		sources = append(sources, custom...)
	}

	for _, source := range sources {
		t.processSource(ctx, source, status)
	}

	completed := time.Now().UTC()
	status.Status = JobStateCompleted
	status.Message = fmt.Sprintf("Completed! Processed %d articles.", status.ProcessedArticles)
	status.CompletedAt = &completed
	if err := t.statusRepo.SaveStatus(ctx, status); err != nil {
		return fmt.Errorf("failed to finalize job status: %w", err)
	}

	slog.Info("Task completed",
		"type", "Refresh",
		"duration", t.GetDuration(),
		"sources", len(sources),
		"processed", status.ProcessedArticles,
		"errors", len(status.Errors))

	return nil
}

func (t *RefreshTask) processSource(ctx context.Context, source blog.Source, status *JobStatus) {
	slog.Debug("Fetching source", "source", source.ID, "url", source.URL)

	status.Message = fmt.Sprintf("Fetching from %s...", source.Name)
	status.Sources[source.ID] = &SourceStatus{
		Status:   SourceStateFetching,
		Name:     source.Name,
		Logo:     source.Logo,
		IsCustom: source.IsCustom,
	}
	t.saveStatus(ctx, status)

	html, finalURL, err := t.fetchPage(ctx, source.URL)
	if err != nil {
		slog.Warn("Source listing fetch failed", "source", source.ID, "error", err)
		status.Sources[source.ID].Status = SourceStateError
		status.Sources[source.ID].Error = err.Error()
		status.Errors = append(status.Errors, JobError{Source: source.ID, Error: err.Error()})
		t.saveStatus(ctx, status)
		return
	}

	candidates := extract.Candidates(source.ID, html, finalURL)
	slog.Debug("Found articles", "source", source.ID, "count", len(candidates))

	if len(candidates) > articlesPerSource {
		candidates = candidates[:articlesPerSource]
	}

	status.Sources[source.ID].Articles = len(candidates)
	status.Sources[source.ID].Status = SourceStateProcessing
	status.TotalArticles += len(candidates)
	t.saveStatus(ctx, status)

	for _, candidate := range candidates {
		status.Message = fmt.Sprintf("Processing: %s...", truncate(candidate.Title, 50))
		t.saveStatus(ctx, status)

		if err := t.processArticle(ctx, candidate, source); err != nil {
			slog.Warn("Article processing failed", "source", source.ID, "url", candidate.URL, "error", err)
			status.Errors = append(status.Errors, JobError{Source: source.ID, URL: candidate.URL, Error: err.Error()})
			continue
		}

		status.Sources[source.ID].Processed++
		status.ProcessedArticles++
		t.saveStatus(ctx, status)
	}

	status.Sources[source.ID].Status = SourceStateCompleted
	t.saveStatus(ctx, status)
}

func (t *RefreshTask) processArticle(ctx context.Context, candidate extract.Candidate, source blog.Source) error {
	id := blog.EntryID(candidate.URL)

	existing, err := t.entryRepo.GetEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check existing entry: %w", err)
	}
	if existing != nil {
		slog.Debug("Article already processed", "url", candidate.URL)
		return t.entryRepo.AddToIndex(ctx, *existing)
	}

	html, _, err := t.fetchPage(ctx, candidate.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch article: %w", err)
	}

	content := extract.Content(html)
	if len(content) < minContentLength {
		slog.Debug("Insufficient content, skipping", "url", candidate.URL, "length", len(content))
		return nil
	}

	title := candidate.Title
	if title == "" {
		title = extract.Title(html)
	}
	if title == "" {
		title = "Untitled"
	}

	summary := t.summarizer.Run(ctx, title, content)
	category := blog.Classify(content, title)

	entry := blog.Entry{
		ID:            id,
		Source:        source.ID,
		SourceName:    source.Name,
		SourceLogo:    source.Logo,
		SourceColor:   source.Color,
		URL:           candidate.URL,
		Title:         title,
		Category:      category,
		Summary:       summary.Brief,
		FullSummary:   summary.Detailed,
		KeyPoints:     summary.KeyPoints,
		Technologies:  summary.Technologies,
		FetchedAt:     time.Now().UTC(),
		ContentLength: len(content),
	}

	if err := t.entryRepo.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	if err := t.entryRepo.AddToIndex(ctx, entry); err != nil {
		return fmt.Errorf("failed to update index: %w", err)
	}

	slog.Info("Processed article", "source", source.ID, "title", truncate(title, 50), "category", category)
	return nil
}

// fetchPage retrieves a page with browser-like headers, following
// redirects. The returned URL is the final one after redirects so relative
// links resolve against the right origin.
func (t *RefreshTask) fetchPage(ctx context.Context, pageURL string) (string, *url.URL, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read response body: %w", err)
	}

	finalURL := resp.Request.URL
	return string(data), finalURL, nil
}

// saveStatus persists progress; a failed write is logged and the run
// continues, readers just see a slightly stale record.
func (t *RefreshTask) saveStatus(ctx context.Context, status *JobStatus) {
	if err := t.statusRepo.SaveStatus(ctx, status); err != nil {
		slog.Warn("Failed to save job status", "error", err)
	}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
