package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/techdigest/techdigest/app/auth"
	"github.com/techdigest/techdigest/app/blog"
	"github.com/techdigest/techdigest/app/store"
	"github.com/techdigest/techdigest/app/tasks"
)

func NewHandler(entryRepo blog.EntryRepository, sourceRepo blog.SourceRepository,
	statusRepo tasks.JobStatusRepository, userRepo auth.UserRepository,
	sessionRepo auth.SessionRepository, scheduler RefreshEnqueuerInterface,
	s store.Store, passwordSalt string) *Handler {
	return &Handler{
		entryRepo:    entryRepo,
		sourceRepo:   sourceRepo,
		statusRepo:   statusRepo,
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		scheduler:    scheduler,
		store:        s,
		passwordSalt: passwordSalt,
	}
}

// GetBlogs lists index entries filtered by source, category, and age,
// newest first.
func (h *Handler) GetBlogs(c *gin.Context) {
	source := c.DefaultQuery("source", "all")
	category := c.DefaultQuery("category", "all")

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
		return
	}

	index, err := h.entryRepo.GetIndex(c.Request.Context())
	if err != nil {
		slog.Error("Store error", "operation", "get_index", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blogs"})
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days)

	blogs := make([]blog.IndexEntry, 0, len(index))
	for _, entry := range index {
		if source != "all" && entry.Source != source {
			continue
		}
		if category != "all" && entry.Category != category {
			continue
		}
		if !entry.FetchedAt.After(cutoff) {
			continue
		}
		blogs = append(blogs, entry)
	}

	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].FetchedAt.After(blogs[j].FetchedAt)
	})

	c.JSON(http.StatusOK, gin.H{"blogs": blogs, "total": len(blogs)})
}

func (h *Handler) GetSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": blog.BuiltinSources()})
}

func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": blog.Categories()})
}

func (h *Handler) GetBlogDetail(c *gin.Context) {
	id := c.Param("id")

	entry, err := h.entryRepo.GetEntry(c.Request.Context(), id)
	if err != nil {
		slog.Error("Store error", "operation", "get_entry", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blog"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": entry})
}

// Refresh kicks off a background refresh and returns immediately.
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.scheduler.EnqueueRefresh(); err != nil {
		slog.Error("Failed to enqueue refresh", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start refresh"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog refresh started"})
}

func (h *Handler) GetJobStatus(c *gin.Context) {
	status, err := h.statusRepo.GetStatus(c.Request.Context())
	if err != nil {
		slog.Error("Store error", "operation", "get_job_status", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load job status"})
		return
	}
	if status == nil {
		status = tasks.IdleStatus()
	}

	c.JSON(http.StatusOK, status)
}

func (h *Handler) ClearCache(c *gin.Context) {
	count, err := h.entryRepo.Clear(c.Request.Context())
	if err != nil {
		slog.Error("Store error", "operation", "clear_cache", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cache"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Cache cleared (%d entries).", count),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if err := h.store.Ping(c.Request.Context()); err != nil {
		health["store"] = "unavailable"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	health["store"] = "ok"

	if entryCount, err := h.entryRepo.EntryCount(c.Request.Context()); err == nil {
		health["entries"] = entryCount
	}

	c.JSON(http.StatusOK, health)
}
