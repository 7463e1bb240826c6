package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StorePinger reports whether the document store answers.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// StorePingerFunc adapts a plain function to StorePinger.
type StorePingerFunc func(ctx context.Context) error

func (f StorePingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler exposes the readiness message and a store connectivity probe.
type HealthHandler struct {
	store StorePinger
}

func NewHealthHandler(store StorePinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Print Studio Backend Ready"})
}

// Status probes the document store and reports connectivity without failing
// the request; storefront deploys use it as a smoke check.
func (h *HealthHandler) Status(c *gin.Context) {
	status := gin.H{
		"backend":  "running",
		"database": "not configured",
	}

	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			status["database"] = "unreachable"
			status["database_error"] = err.Error()
		} else {
			status["database"] = "connected"
		}
	}

	c.JSON(http.StatusOK, status)
}
