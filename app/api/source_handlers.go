package api

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techdigest/techdigest/app/blog"
)

func (h *Handler) GetUserSources(c *gin.Context) {
	session := currentSession(c)

	sources, err := h.sourceRepo.GetUserSources(c.Request.Context(), session.UserID)
	if err != nil {
		slog.Error("Store error", "operation", "get_user_sources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sources"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sources": sources})
}

func (h *Handler) AddUserSource(c *gin.Context) {
	session := currentSession(c)

	var req struct {
		Name  string `json:"name"`
		URL   string `json:"url"`
		Logo  string `json:"logo"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and URL are required"})
		return
	}

	parsed, err := url.Parse(req.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL format"})
		return
	}

	sources, err := h.sourceRepo.GetUserSources(c.Request.Context(), session.UserID)
	if err != nil {
		slog.Error("Store error", "operation", "get_user_sources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add source"})
		return
	}

	for _, existing := range sources {
		if existing.URL == req.URL {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Source with this URL already exists"})
			return
		}
	}

	if req.Logo == "" {
		req.Logo = "📰"
	}
	if req.Color == "" {
		req.Color = "#6b7280"
	}

	source := blog.Source{
		ID:        "custom_" + uuid.NewString()[:8],
		Name:      req.Name,
		URL:       req.URL,
		Logo:      req.Logo,
		Color:     req.Color,
		UserID:    session.UserID,
		IsCustom:  true,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	sources = append(sources, source)
	if err := h.sourceRepo.SaveUserSources(c.Request.Context(), session.UserID, sources); err != nil {
		slog.Error("Store error", "operation", "save_user_sources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add source"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "source": source})
}

func (h *Handler) DeleteUserSource(c *gin.Context) {
	session := currentSession(c)
	sourceID := c.Param("id")

	sources, err := h.sourceRepo.GetUserSources(c.Request.Context(), session.UserID)
	if err != nil {
		slog.Error("Store error", "operation", "get_user_sources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete source"})
		return
	}

	remaining := make([]blog.Source, 0, len(sources))
	for _, source := range sources {
		if source.ID != sourceID {
			remaining = append(remaining, source)
		}
	}

	if len(remaining) == len(sources) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
		return
	}

	if err := h.sourceRepo.SaveUserSources(c.Request.Context(), session.UserID, remaining); err != nil {
		slog.Error("Store error", "operation", "save_user_sources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete source"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
