package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profutur/profutur-api/internal/api/handler/v1/request"
	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
	"github.com/profutur/profutur-api/internal/domain"
)

type FormationService interface {
	List(ctx context.Context, centerID *uint) ([]domain.Formation, error)
	GetByID(ctx context.Context, id uint) (domain.Formation, error)
	GetEnrollments(ctx context.Context, formationID uint) ([]domain.Enrollment, error)
	Create(ctx context.Context, callerID uint, f domain.Formation) (domain.Formation, error)
}

type FormationHandler struct {
	svc         FormationService
	enrollments EnrollmentService
}

func NewFormationHandler(svc FormationService, enrollments EnrollmentService) *FormationHandler {
	return &FormationHandler{
		svc:         svc,
		enrollments: enrollments,
	}
}

// HandleList godoc
// @Summary      List active formations
// @Tags         formations
// @Produce      json
// @Param        center_id  query     int  false  "only formations of this center"
// @Success      200        {array}   domain.Formation
// @Failure      400        {object}  response.Err
// @Router       /formations.list [get]
func (h *FormationHandler) HandleList(ctx *gin.Context) {
	var req request.ListFormationsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	formations, err := h.svc.List(ctx.Request.Context(), req.CenterID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleList -> h.svc.List", err))
		return
	}

	ctx.JSON(http.StatusOK, formations)
}

// HandleGetByID godoc
// @Summary      Formation by id
// @Tags         formations
// @Produce      json
// @Param        id   query     int  true  "formation id"
// @Success      200  {object}  domain.Formation
// @Failure      404  {object}  response.Err
// @Router       /formations.getById [get]
func (h *FormationHandler) HandleGetByID(ctx *gin.Context) {
	var req request.IDRequest
	if !bindQuery(ctx, &req) {
		return
	}

	formation, err := h.svc.GetByID(ctx.Request.Context(), req.ID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleGetByID -> h.svc.GetByID", err))
		return
	}

	ctx.JSON(http.StatusOK, formation)
}

// HandleGetEnrollments godoc
// @Summary      Enrollments of a formation
// @Tags         formations
// @Produce      json
// @Param        id   query     int  true  "formation id"
// @Success      200  {array}   domain.Enrollment
// @Failure      404  {object}  response.Err
// @Router       /formations.getEnrollments [get]
func (h *FormationHandler) HandleGetEnrollments(ctx *gin.Context) {
	var req request.IDRequest
	if !bindQuery(ctx, &req) {
		return
	}

	enrollments, err := h.svc.GetEnrollments(ctx.Request.Context(), req.ID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleGetEnrollments -> h.svc.GetEnrollments", err))
		return
	}

	ctx.JSON(http.StatusOK, enrollments)
}

// HandleMyEnrollments godoc
// @Summary      Enrollments of the caller
// @Tags         formations
// @Produce      json
// @Success      200  {array}   domain.Enrollment
// @Failure      401  {object}  response.Err
// @Router       /formations.myEnrollments [get]
// @Security BearerAuth
func (h *FormationHandler) HandleMyEnrollments(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	enrollments, err := h.enrollments.GetMyEnrollments(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleMyEnrollments -> h.enrollments.GetMyEnrollments", err))
		return
	}

	ctx.JSON(http.StatusOK, enrollments)
}

// HandleCreate godoc
// @Summary      Create a formation
// @Description  Only center users can create formations.
// @Tags         formations
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateFormationRequest  true  "formation"
// @Success      201      {object}  domain.Formation
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /formations.create [post]
// @Security BearerAuth
func (h *FormationHandler) HandleCreate(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req request.CreateFormationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	formation, err := h.svc.Create(ctx.Request.Context(), userID, domain.Formation{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Level:       domain.Level(req.Level),
		Duration:    req.Duration,
		Price:       req.Price,
		MaxStudents: req.MaxStudents,
		Image:       req.Image,
	})
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleCreate -> h.svc.Create", err))
		return
	}

	ctx.JSON(http.StatusCreated, formation)
}
