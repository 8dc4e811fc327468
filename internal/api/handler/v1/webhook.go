package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/profutur/profutur-api/internal/api/handler/v1/request"
	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/service"
)

type WebhookService interface {
	ConfirmPayment(ctx context.Context, c service.Confirmation) (service.ConfirmationResult, error)
	ConfirmDonation(ctx context.Context, c service.Confirmation) (service.ConfirmationResult, error)
	ConfirmFormationEnrollment(ctx context.Context, c service.EnrollmentConfirmation) (domain.Enrollment, error)
}

// WebhookHandler receives the callbacks of the mobile money providers.
type WebhookHandler struct {
	svc WebhookService
	now func() time.Time
}

func NewWebhookHandler(svc WebhookService) *WebhookHandler {
	return &WebhookHandler{
		svc: svc,
		now: time.Now,
	}
}

// HandleConfirmPayment godoc
// @Summary      Provider confirmation of a mobile money payment
// @Description  Repeating a confirmation is harmless. Contradicting one is a conflict.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        request  body      request.ConfirmPaymentRequest  true  "confirmation"
// @Success      200      {object}  response.WebhookResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /webhooks.confirmMobileMoneyPayment [post]
func (h *WebhookHandler) HandleConfirmPayment(ctx *gin.Context) {
	var req request.ConfirmPaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := h.svc.ConfirmPayment(ctx.Request.Context(), service.Confirmation{
		TransactionID: req.TransactionID,
		Status:        domain.PaymentStatus(req.Status),
		Amount:        req.Amount,
	})
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleConfirmPayment -> h.svc.ConfirmPayment", err))
		return
	}

	ctx.JSON(http.StatusOK, webhookResponse("Payment", result))
}

// HandleConfirmEnrollment godoc
// @Summary      Activate or complete the enrollment paid by a completed payment
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        request  body      request.ConfirmEnrollmentRequest  true  "confirmation"
// @Success      200      {object}  response.EnrollmentConfirmedResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /webhooks.confirmFormationEnrollment [post]
func (h *WebhookHandler) HandleConfirmEnrollment(ctx *gin.Context) {
	var req request.ConfirmEnrollmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := h.svc.ConfirmFormationEnrollment(ctx.Request.Context(), service.EnrollmentConfirmation{
		TransactionID: req.TransactionID,
		FormationID:   req.FormationID,
		StudentID:     req.StudentID,
		Status:        domain.EnrollmentStatus(req.Status),
	})
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleConfirmEnrollment -> h.svc.ConfirmFormationEnrollment", err))
		return
	}

	ctx.JSON(http.StatusOK, response.EnrollmentConfirmedResponse{
		Success:     true,
		FormationID: enrollment.FormationID,
		StudentID:   enrollment.StudentID,
		Status:      string(enrollment.Status),
		Message:     "Enrollment confirmed",
		Enrollment:  enrollment,
	})
}

// HandleConfirmDonation godoc
// @Summary      Provider confirmation of a donation
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        request  body      request.ConfirmDonationRequest  true  "confirmation"
// @Success      200      {object}  response.WebhookResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /webhooks.confirmDonation [post]
func (h *WebhookHandler) HandleConfirmDonation(ctx *gin.Context) {
	var req request.ConfirmDonationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := h.svc.ConfirmDonation(ctx.Request.Context(), service.Confirmation{
		TransactionID:  req.TransactionID,
		Status:         domain.PaymentStatus(req.Status),
		Amount:         req.Amount,
		BlockchainHash: req.BlockchainHash,
	})
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleConfirmDonation -> h.svc.ConfirmDonation", err))
		return
	}

	ctx.JSON(http.StatusOK, webhookResponse("Donation", result))
}

// HandleHealth godoc
// @Summary      Liveness probe for providers
// @Tags         webhooks
// @Produce      json
// @Success      200  {object}  response.WebhookHealthResponse
// @Router       /webhooks.health [get]
func (h *WebhookHandler) HandleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.WebhookHealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
	})
}

func webhookResponse(subject string, result service.ConfirmationResult) response.WebhookResponse {
	message := fmt.Sprintf("%s %s successfully", subject, result.Status)
	if !result.Changed {
		message = fmt.Sprintf("%s already %s", subject, result.Status)
	}

	return response.WebhookResponse{
		Success:       result.Success,
		TransactionID: result.TransactionID,
		Status:        string(result.Status),
		Changed:       result.Changed,
		Message:       message,
	}
}
