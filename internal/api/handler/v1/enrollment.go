package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profutur/profutur-api/internal/api/handler/v1/request"
	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
	"github.com/profutur/profutur-api/internal/domain"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, formationID uint) (domain.Enrollment, error)
	UpdateProgress(ctx context.Context, callerID, enrollmentID uint, progress int) (domain.Enrollment, error)
	IssueCertificate(ctx context.Context, callerID, enrollmentID uint) (domain.Certificate, error)
	GetMyEnrollments(ctx context.Context, studentID uint) ([]domain.Enrollment, error)
	DropEnrollment(ctx context.Context, callerID, enrollmentID uint) (domain.Enrollment, error)
}

type EnrollmentHandler struct {
	svc EnrollmentService
}

func NewEnrollmentHandler(svc EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		svc: svc,
	}
}

// HandleEnroll godoc
// @Summary      Enroll the caller in a formation
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        request  body      request.EnrollRequest  true  "formation"
// @Success      201      {object}  response.EnrollmentResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /enrollments.enrollInFormation [post]
// @Security BearerAuth
func (h *EnrollmentHandler) HandleEnroll(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req request.EnrollRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := h.svc.Enroll(ctx.Request.Context(), userID, req.FormationID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleEnroll -> h.svc.Enroll", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.EnrollmentResponse{
		Success:    true,
		Message:    "Enrolled successfully",
		Enrollment: enrollment,
	})
}

// HandleUpdateProgress godoc
// @Summary      Record progress on an enrollment
// @Description  Progress 100 completes the enrollment.
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateProgressRequest  true  "progress"
// @Success      200      {object}  response.EnrollmentResponse
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /enrollments.updateProgress [post]
// @Security BearerAuth
func (h *EnrollmentHandler) HandleUpdateProgress(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req request.UpdateProgressRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := h.svc.UpdateProgress(ctx.Request.Context(), userID, req.EnrollmentID, *req.Progress)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleUpdateProgress -> h.svc.UpdateProgress", err))
		return
	}

	ctx.JSON(http.StatusOK, response.EnrollmentResponse{
		Success:    true,
		Enrollment: enrollment,
	})
}

// HandleIssueCertificate godoc
// @Summary      Issue the certificate of a completed enrollment
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        request  body      request.EnrollmentIDRequest  true  "enrollment"
// @Success      200      {object}  response.CertificateResponse
// @Failure      403      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Router       /enrollments.issueCertificate [post]
// @Security BearerAuth
func (h *EnrollmentHandler) HandleIssueCertificate(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req request.EnrollmentIDRequest
	if !bindJSON(ctx, &req) {
		return
	}

	cert, err := h.svc.IssueCertificate(ctx.Request.Context(), userID, req.EnrollmentID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleIssueCertificate -> h.svc.IssueCertificate", err))
		return
	}

	ctx.JSON(http.StatusOK, response.CertificateResponse{
		Success:           true,
		CertificateNumber: cert.CertificateNumber,
		Certificate:       cert,
	})
}

// HandleGetMyEnrollments godoc
// @Summary      Enrollments of the caller with their formation
// @Tags         enrollments
// @Produce      json
// @Success      200  {array}   domain.Enrollment
// @Failure      401  {object}  response.Err
// @Router       /enrollments.getMyEnrollments [get]
// @Security BearerAuth
func (h *EnrollmentHandler) HandleGetMyEnrollments(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	enrollments, err := h.svc.GetMyEnrollments(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleGetMyEnrollments -> h.svc.GetMyEnrollments", err))
		return
	}

	ctx.JSON(http.StatusOK, enrollments)
}

// HandleDropEnrollment godoc
// @Summary      Drop an enrollment
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        request  body      request.EnrollmentIDRequest  true  "enrollment"
// @Success      200      {object}  response.EnrollmentResponse
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /enrollments.dropEnrollment [post]
// @Security BearerAuth
func (h *EnrollmentHandler) HandleDropEnrollment(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req request.EnrollmentIDRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := h.svc.DropEnrollment(ctx.Request.Context(), userID, req.EnrollmentID)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleDropEnrollment -> h.svc.DropEnrollment", err))
		return
	}

	ctx.JSON(http.StatusOK, response.EnrollmentResponse{
		Success:    true,
		Message:    "Enrollment dropped",
		Enrollment: enrollment,
	})
}
