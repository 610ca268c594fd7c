package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pricewatch/backend/internal/domain"
)

// Service is the engine orchestration the handlers depend on.
type Service interface {
	Latest() (*domain.Comparison, error)
	Refresh(ctx context.Context) (*domain.Comparison, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service Service
}

// NewHandler creates a new HTTP handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricewatch-backend",
		"version": "1.0.0",
	})
}

// GetComparison serves the latest comparison artifact.
func (h *Handler) GetComparison(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "comparison service not configured"})
		return
	}

	cmp, err := h.service.Latest()
	if err != nil {
		if errors.Is(err, domain.ErrNoComparison) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no comparison computed yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cmp)
}

// RefreshComparison reloads the scraper output files and recomputes the
// comparison. Sparse inputs still succeed; only a broken shopping list
// fails.
func (h *Handler) RefreshComparison(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "comparison service not configured"})
		return
	}

	cmp, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cmp)
}
