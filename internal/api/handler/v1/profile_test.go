package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/profutur/profutur-api/internal/api/handler/v1/mocks"
	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/ledger"
	"github.com/profutur/profutur-api/internal/service"
)

func newProfileRouter(t *testing.T, userID uint) (*mocks.UserService, http.Handler) {
	svc := mocks.NewUserService(t)
	h := NewProfileHandler(svc)

	r := newRouter(userID)
	r.GET("/profiles.getCurrent", h.HandleGetCurrent)
	r.GET("/profiles.getStudent", h.HandleGetStudent)
	r.GET("/profiles.getCenter", h.HandleGetCenter)
	r.GET("/profiles.getAmbassador", h.HandleGetAmbassador)

	return svc, r
}

func TestProfileHandler_HandleGetCurrent(t *testing.T) {
	t.Run("Center", func(t *testing.T) {
		svc, r := newProfileRouter(t, 5)
		svc.On("GetCurrentProfile", mock.Anything, uint(5)).Return(service.CurrentProfile{
			User:    domain.User{ID: 5, Role: domain.RoleCenter},
			Profile: domain.CenterProfile{UserID: 5, CenterName: "Kin Academy"},
		}, nil)

		rr := doJSON(t, r, http.MethodGet, "/profiles.getCurrent", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"center_name":"Kin Academy"`)
	})

	t.Run("Plain user", func(t *testing.T) {
		svc, r := newProfileRouter(t, 6)
		svc.On("GetCurrentProfile", mock.Anything, uint(6)).Return(service.CurrentProfile{
			User: domain.User{ID: 6, Role: domain.RoleUser},
		}, nil)

		rr := doJSON(t, r, http.MethodGet, "/profiles.getCurrent", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"profile":null`)
	})
}

func TestProfileHandler_ByUserID(t *testing.T) {
	svc, r := newProfileRouter(t, 1)
	svc.On("GetStudentProfile", mock.Anything, uint(3)).Return(domain.StudentProfile{UserID: 3, TotalHoursLearned: 40}, nil)
	svc.On("GetCenterProfile", mock.Anything, uint(3)).Return(domain.CenterProfile{}, service.ErrProfileNotFound)
	svc.On("GetAmbassadorProfile", mock.Anything, uint(4)).Return(domain.AmbassadorProfile{UserID: 4}, nil)

	rr := doJSON(t, r, http.MethodGet, "/profiles.getStudent?id=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total_hours_learned":40`)

	rr = doJSON(t, r, http.MethodGet, "/profiles.getCenter?id=3", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/profiles.getAmbassador?id=4", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHealthHandler_HandleHealthcheck(t *testing.T) {
	tests := []struct {
		name   string
		report service.HealthReport
		code   int
	}{
		{"ok", service.HealthReport{Status: "ok", Database: "connected", Ledger: ledger.Status{Network: "local", Connected: true}}, http.StatusOK},
		{"degraded", service.HealthReport{Status: "degraded", Database: "disconnected"}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewHealthService(t)
			svc.On("Check", mock.Anything).Return(tt.report)
			h := NewHealthHandler(svc)
			r := newRouter(0)
			r.GET("/", h.HandleHealthcheck)

			rr := doJSON(t, r, http.MethodGet, "/", nil)

			assert.Equal(t, tt.code, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.report.Database)
		})
	}
}
