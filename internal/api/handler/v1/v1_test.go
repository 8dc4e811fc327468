package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
	"github.com/profutur/profutur-api/internal/api/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter returns an engine that authenticates every request as userID.
// A zero userID leaves requests anonymous.
func newRouter(userID uint) *gin.Engine {
	r := gin.New()
	if userID != 0 {
		r.Use(func(ctx *gin.Context) {
			middleware.SetUserID(ctx, userID)
			ctx.Next()
		})
	}
	return r
}

func doJSON(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	return rr
}

func decodeErr(t *testing.T, rr *httptest.ResponseRecorder) response.Err {
	t.Helper()

	var body response.Err
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
