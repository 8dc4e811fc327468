package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
	"github.com/profutur/profutur-api/internal/pkg/jwthelper"
)

const userIDKey = "userID"

var ErrMissingToken = errors.New("missing bearer token")

type Authenticator struct {
	key []byte
}

func NewAuthenticator(key string) *Authenticator {
	return &Authenticator{
		key: []byte(key),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// caller's id in the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := a.parse(ctx)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthenticated(err))
			return
		}

		ctx.Set(userIDKey, claims.UserID)
		ctx.Next()
	}
}

// OptionalJWT identifies the caller when a valid token is present and lets
// anonymous requests through.
func (a *Authenticator) OptionalJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, err := a.parse(ctx); err == nil {
			ctx.Set(userIDKey, claims.UserID)
		}

		ctx.Next()
	}
}

func (a *Authenticator) parse(ctx *gin.Context) (*jwthelper.UserClaims, error) {
	header := ctx.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	return jwthelper.ParseToken(a.key, strings.TrimSpace(token))
}

// UserID returns the id stored by VerifyJWT or OptionalJWT.
func UserID(ctx *gin.Context) (uint, bool) {
	id, ok := ctx.Get(userIDKey)
	if !ok {
		return 0, false
	}

	userID, ok := id.(uint)
	return userID, ok && userID != 0
}

// SetUserID is used by tests that mount handlers without the authenticator.
func SetUserID(ctx *gin.Context, userID uint) {
	ctx.Set(userIDKey, userID)
}
