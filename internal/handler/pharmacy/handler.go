// Package pharmacy exposes the admin service's REST view of pharmacy
// data. The underlying GraphQL call never fails the request; an
// unreachable pharmacy service shows up as an empty list.
package pharmacy

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/medisuite/hospital-services/internal/model"
	"github.com/medisuite/hospital-services/pkg/httputil"
)

type MedicineSource interface {
	FetchMedicines(ctx context.Context) []*model.RemoteMedicine
}

type Handler struct {
	source MedicineSource
}

func NewHandler(source MedicineSource) *Handler {
	return &Handler{source: source}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/pharmacy/medicines", h.ListMedicines)
}

func (h *Handler) ListMedicines(c *gin.Context) {
	medicines := h.source.FetchMedicines(c.Request.Context())
	httputil.RespondWithSuccess(c, medicines)
}
