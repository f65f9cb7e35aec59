package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techdigest/techdigest/app/auth"
)

// SessionCookieName carries the opaque session token.
const SessionCookieName = "techdigest_session"

const sessionContextKey = "session"

func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email, password, and name are required"})
		return
	}

	existing, err := h.userRepo.GetUser(c.Request.Context(), req.Email)
	if err != nil {
		slog.Error("Store error", "operation", "get_user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	user := &auth.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: auth.HashPassword(req.Password, h.passwordSalt),
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.userRepo.SaveUser(c.Request.Context(), user); err != nil {
		slog.Error("Store error", "operation", "save_user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	if !h.startSession(c, user) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": gin.H{"email": user.Email, "name": user.Name}})
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.userRepo.GetUser(c.Request.Context(), req.Email)
	if err != nil {
		slog.Error("Store error", "operation", "get_user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if user == nil || !auth.VerifyPassword(req.Password, h.passwordSalt, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !h.startSession(c, user) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": gin.H{"email": user.Email, "name": user.Name}})
}

func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		if err := h.sessionRepo.DeleteSession(c.Request.Context(), token); err != nil {
			slog.Warn("Failed to delete session", "error", err)
		}
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCurrentUser reports the session's user, or null when not logged in.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	session := h.sessionFromRequest(c)
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{"email": session.Email, "name": session.Name}})
}

// startSession creates a session record and sets the cookie. Returns false
// after writing an error response.
func (h *Handler) startSession(c *gin.Context, user *auth.User) bool {
	token, err := h.sessionRepo.CreateSession(c.Request.Context(), &auth.Session{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		slog.Error("Store error", "operation", "create_session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session creation failed"})
		return false
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, token, int(auth.SessionTTL.Seconds()), "/", "", true, true)
	return true
}

func (h *Handler) sessionFromRequest(c *gin.Context) *auth.Session {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		return nil
	}

	session, err := h.sessionRepo.GetSession(c.Request.Context(), token)
	if err != nil {
		slog.Warn("Failed to load session", "error", err)
		return nil
	}
	return session
}

// requireSession gates routes behind a valid session cookie.
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := h.sessionFromRequest(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

func currentSession(c *gin.Context) *auth.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, _ := value.(*auth.Session)
	return session
}
