package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profutur/profutur-api/internal/service"
)

type HealthService interface {
	Check(ctx context.Context) service.HealthReport
}

type HealthHandler struct {
	svc HealthService
}

func NewHealthHandler(svc HealthService) *HealthHandler {
	return &HealthHandler{
		svc: svc,
	}
}

// HandleHealthcheck godoc
// @Summary      Service health
// @Description  503 when the database does not answer.
// @Tags         health
// @Produce      json
// @Success      200  {object}  service.HealthReport
// @Failure      503  {object}  service.HealthReport
// @Router       / [get]
func (h *HealthHandler) HandleHealthcheck(ctx *gin.Context) {
	report := h.svc.Check(ctx.Request.Context())

	status := http.StatusOK
	if report.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, report)
}
