package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profutur/profutur-api/internal/api/handler/v1/request"
	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetCurrentProfile(ctx context.Context, userID uint) (service.CurrentProfile, error)
	GetStudentProfile(ctx context.Context, userID uint) (domain.StudentProfile, error)
	GetCenterProfile(ctx context.Context, userID uint) (domain.CenterProfile, error)
	GetAmbassadorProfile(ctx context.Context, userID uint) (domain.AmbassadorProfile, error)
}

type ProfileHandler struct {
	svc UserService
}

func NewProfileHandler(svc UserService) *ProfileHandler {
	return &ProfileHandler{
		svc: svc,
	}
}

// HandleGetCurrent godoc
// @Summary      Profile of the caller
// @Description  Returns the user and the profile matching its role. The profile is null for roles without one.
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.ProfileResponse
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /profiles.getCurrent [get]
// @Security BearerAuth
func (h *ProfileHandler) HandleGetCurrent(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	current, err := h.svc.GetCurrentProfile(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleGetCurrent -> h.svc.GetCurrentProfile", err))
		return
	}

	ctx.JSON(http.StatusOK, response.ProfileResponse{
		User:    current.User,
		Profile: current.Profile,
	})
}

// HandleGetStudent godoc
// @Summary      Student profile by user id
// @Tags         profiles
// @Produce      json
// @Param        id   query     int  true  "user id"
// @Success      200  {object}  domain.StudentProfile
// @Failure      404  {object}  response.Err
// @Router       /profiles.getStudent [get]
// @Security BearerAuth
func (h *ProfileHandler) HandleGetStudent(ctx *gin.Context) {
	handleGetProfile(ctx, "v1.HandleGetStudent -> h.svc.GetStudentProfile", h.svc.GetStudentProfile)
}

// HandleGetCenter godoc
// @Summary      Center profile by user id
// @Tags         profiles
// @Produce      json
// @Param        id   query     int  true  "user id"
// @Success      200  {object}  domain.CenterProfile
// @Failure      404  {object}  response.Err
// @Router       /profiles.getCenter [get]
// @Security BearerAuth
func (h *ProfileHandler) HandleGetCenter(ctx *gin.Context) {
	handleGetProfile(ctx, "v1.HandleGetCenter -> h.svc.GetCenterProfile", h.svc.GetCenterProfile)
}

// HandleGetAmbassador godoc
// @Summary      Ambassador profile by user id
// @Tags         profiles
// @Produce      json
// @Param        id   query     int  true  "user id"
// @Success      200  {object}  domain.AmbassadorProfile
// @Failure      404  {object}  response.Err
// @Router       /profiles.getAmbassador [get]
// @Security BearerAuth
func (h *ProfileHandler) HandleGetAmbassador(ctx *gin.Context) {
	handleGetProfile(ctx, "v1.HandleGetAmbassador -> h.svc.GetAmbassadorProfile", h.svc.GetAmbassadorProfile)
}

func handleGetProfile[T domain.Profile](ctx *gin.Context, op string, get func(context.Context, uint) (T, error)) {
	var req request.IDRequest
	if !bindQuery(ctx, &req) {
		return
	}

	profile, err := get(ctx.Request.Context(), req.ID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr(op, err))
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
