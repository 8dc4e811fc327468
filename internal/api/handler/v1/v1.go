// Package v1 holds the gin handlers of the /api/v1 surface. Operations are
// addressed RPC style as <router>.<operation>; queries read the query string
// and mutations a JSON body.
package v1

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
	"github.com/profutur/profutur-api/internal/api/middleware"
)

var errNoCaller = errors.New("no authenticated caller")

type validatable interface {
	Validate() error
}

// bindJSON decodes and validates the body, rendering the error itself.
func bindJSON(ctx *gin.Context, req validatable) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.FromValidationErr(err))
		return false
	}

	return true
}

func bindQuery(ctx *gin.Context, req validatable) bool {
	if err := ctx.ShouldBindQuery(req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.FromValidationErr(err))
		return false
	}

	return true
}

func callerID(ctx *gin.Context) (uint, bool) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthenticated(errNoCaller))
		return 0, false
	}

	return userID, true
}
