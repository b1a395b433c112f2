package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"alcyxob/training-client/internal/calendar"
	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/repository"
	"alcyxob/training-client/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys
const (
	ContextUserKey      = "user"
	ContextRequestIDKey = "requestID"
	HeaderRequestID     = "X-Request-ID"
)

// RequestIDMiddleware tags every request with an id, reusing the caller's when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// SessionMiddleware rejects requests while nobody is signed in and puts the user in
// the context for downstream handlers.
func SessionMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.CurrentUser(c.Request.Context())
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				abortWithError(c, http.StatusUnauthorized, "Not signed in")
				return
			}
			log.Printf("ERROR: Failed to read session user: %v", err)
			abortWithError(c, http.StatusInternalServerError, "Failed to read session")
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// PointerGuard answers 423 on pointer-driven calendar routes while the selected coach
// has blocked the athlete. Must run AFTER SessionMiddleware.
func PointerGuard(sync *service.SyncOrchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sync.RosterView().Blocked {
			abortWithError(c, http.StatusLocked, calendar.ErrPointerBlocked.Error())
			return
		}
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// respondError maps core errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calendar.ErrPointerBlocked):
		abortWithError(c, http.StatusLocked, err.Error())
	case errors.Is(err, calendar.ErrInvalidLayout),
		errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, service.ErrPlanIndexOutOfRange),
		errors.Is(err, service.ErrEmptyCredentials):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCoachNotFound), errors.Is(err, repository.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWriteInFlight), errors.Is(err, service.ErrSuperseded):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed),
		errors.Is(err, service.ErrNoSession),
		errors.Is(err, repository.ErrAuthExpired),
		errors.Is(err, repository.ErrUnauthorized):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		abortWithError(c, http.StatusBadGateway, "Coaching backend unavailable")
	default:
		log.Printf("ERROR: Unhandled error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// Helper function to get the signed-in user from context (used by handlers)
func getUserFromContext(c *gin.Context) (*domain.User, error) {
	raw, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	user, ok := raw.(*domain.User)
	if !ok {
		return nil, errors.New("invalid user type in context")
	}
	return user, nil
}
