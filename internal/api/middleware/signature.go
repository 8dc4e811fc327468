package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
)

const (
	SignatureHeader = "X-Profutur-Signature"

	maxWebhookBody = 1 << 20
)

var ErrBadSignature = errors.New("invalid webhook signature")

// VerifySignature checks hex(HMAC-SHA256(secret, body)) in SignatureHeader.
// An empty secret disables the check.
func VerifySignature(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if secret == "" {
			ctx.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxWebhookBody))
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

		got, err := hex.DecodeString(ctx.GetHeader(SignatureHeader))
		if err != nil || !hmac.Equal(got, Sign(secret, body)) {
			response.RenderErr(ctx, response.ErrUnauthenticated(ErrBadSignature))
			return
		}

		ctx.Next()
	}
}

// Sign returns the raw HMAC of body.
func Sign(secret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}
