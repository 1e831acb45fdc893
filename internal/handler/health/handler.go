package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medisuite/hospital-services/pkg/errors"
	"github.com/medisuite/hospital-services/pkg/httputil"
)

// Pinger is the slice of the database handle the check needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/healthz", h.Check)
}

func (h *Handler) Check(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		httputil.RespondWithError(c, errors.Unavailable("database unreachable", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
