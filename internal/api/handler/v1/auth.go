package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profutur/profutur-api/internal/api/handler/v1/request"
	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
	"github.com/profutur/profutur-api/internal/config"
	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/pkg/jwthelper"
	"github.com/profutur/profutur-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	conf  *config.APIConfig
	svc   AuthService
	users UserService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, users UserService) *AuthHandler {
	return &AuthHandler{
		conf:  conf,
		svc:   svc,
		users: users,
	}
}

// HandleSignup godoc
// @Summary      Signup a new user
// @Description  Creates the user and the profile of its role. Admin cannot be chosen.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth.signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleSignup -> h.svc.Signup", err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth.login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent(), h.conf.JWTExpiration)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleMe godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200      {object}   domain.User
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /auth.me [get]
// @Security BearerAuth
func (h *AuthHandler) HandleMe(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	user, err := h.users.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleMe -> h.users.GetUser", err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}
