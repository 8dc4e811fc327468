package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profutur/profutur-api/internal/api/handler/v1/request"
	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
	"github.com/profutur/profutur-api/internal/api/middleware"
	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/service"
)

type PaymentService interface {
	InitiatePayment(ctx context.Context, userID uint, req service.PaymentRequest) (domain.MobileMoneyTransaction, error)
	CheckPaymentStatus(ctx context.Context, transactionID, provider string) (service.PaymentStatusView, error)
	CreateCertificateNFT(ctx context.Context, callerID uint, req service.MintRequest) (service.MintedCertificate, error)
	VerifyCertificate(ctx context.Context, tokenID, certificateNumber string) (service.CertificateVerification, error)
	RecordDonation(ctx context.Context, donorID *uint, req service.DonationRequest) (service.DonationResult, error)
	GetDonationHistory(ctx context.Context, limit int) []domain.Donation
	GetPaymentStats(ctx context.Context) domain.PaymentStats
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleInitiatePayment godoc
// @Summary      Start a mobile money payment for a formation
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.InitiatePaymentRequest  true  "payment"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /payments.initiateMobileMoneyPayment [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleInitiatePayment(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req request.InitiatePaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tx, err := h.svc.InitiatePayment(ctx.Request.Context(), userID, service.PaymentRequest{
		Amount:      req.Amount,
		PhoneNumber: req.PhoneNumber,
		Provider:    req.Provider,
		FormationID: req.FormationID,
	})
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleInitiatePayment -> h.svc.InitiatePayment", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewPaymentResponse(tx))
}

// HandleCheckPaymentStatus godoc
// @Summary      Status of a mobile money payment
// @Description  Unknown transactions, and transactions of another provider, report not_found.
// @Tags         payments
// @Produce      json
// @Param        transaction_id  query     string  true  "transaction id"
// @Param        provider        query     string  true  "orange, vodacom or airtel"
// @Success      200             {object}  service.PaymentStatusView
// @Failure      400             {object}  response.Err
// @Router       /payments.checkPaymentStatus [get]
func (h *PaymentHandler) HandleCheckPaymentStatus(ctx *gin.Context) {
	var req request.CheckPaymentStatusRequest
	if !bindQuery(ctx, &req) {
		return
	}

	view, err := h.svc.CheckPaymentStatus(ctx.Request.Context(), req.TransactionID, req.Provider)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleCheckPaymentStatus -> h.svc.CheckPaymentStatus", err))
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// HandleCreateCertificateNFT godoc
// @Summary      Mint the certificate of a completed enrollment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCertificateRequest  true  "certificate"
// @Success      200      {object}  service.MintedCertificate
// @Failure      403      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Failure      503      {object}  response.Err
// @Router       /payments.createCertificateNFT [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleCreateCertificateNFT(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req request.CreateCertificateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	minted, err := h.svc.CreateCertificateNFT(ctx.Request.Context(), userID, service.MintRequest{
		EnrollmentID:   req.EnrollmentID,
		FormationTitle: req.FormationTitle,
		CompletionDate: req.CompletionDate,
		Grade:          req.Grade,
	})
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleCreateCertificateNFT -> h.svc.CreateCertificateNFT", err))
		return
	}

	ctx.JSON(http.StatusOK, minted)
}

// HandleVerifyCertificate godoc
// @Summary      Verify a certificate token
// @Tags         payments
// @Produce      json
// @Param        token_id            query     string  true  "ledger token id"
// @Param        certificate_number  query     string  true  "certificate number"
// @Success      200                 {object}  service.CertificateVerification
// @Failure      400                 {object}  response.Err
// @Router       /payments.verifyCertificate [get]
func (h *PaymentHandler) HandleVerifyCertificate(ctx *gin.Context) {
	var req request.VerifyCertificateRequest
	if !bindQuery(ctx, &req) {
		return
	}

	verification, err := h.svc.VerifyCertificate(ctx.Request.Context(), req.TokenID, req.CertificateNumber)
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleVerifyCertificate -> h.svc.VerifyCertificate", err))
		return
	}

	ctx.JSON(http.StatusOK, verification)
}

// HandleRecordDonation godoc
// @Summary      Record a donation
// @Description  Anchored on the ledger before it is stored. Anonymous donations are allowed.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.RecordDonationRequest  true  "donation"
// @Success      201      {object}  service.DonationResult
// @Failure      400      {object}  response.Err
// @Failure      503      {object}  response.Err
// @Router       /payments.recordDonation [post]
func (h *PaymentHandler) HandleRecordDonation(ctx *gin.Context) {
	var req request.RecordDonationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	var donorID *uint
	if userID, ok := middleware.UserID(ctx); ok {
		donorID = &userID
	}

	result, err := h.svc.RecordDonation(ctx.Request.Context(), donorID, service.DonationRequest{
		Amount:      req.Amount,
		PhoneNumber: req.PhoneNumber,
		Provider:    req.Provider,
		Message:     req.Message,
	})
	if err != nil {
		response.RenderErr(ctx, response.FromServiceErr("v1.HandleRecordDonation -> h.svc.RecordDonation", err))
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// HandleGetDonationHistory godoc
// @Summary      Most recent donations
// @Tags         payments
// @Produce      json
// @Param        limit  query     int  false  "defaults to 10, at most 100"
// @Success      200    {array}   domain.Donation
// @Failure      400    {object}  response.Err
// @Router       /payments.getDonationHistory [get]
func (h *PaymentHandler) HandleGetDonationHistory(ctx *gin.Context) {
	var req request.DonationHistoryRequest
	if !bindQuery(ctx, &req) {
		return
	}

	ctx.JSON(http.StatusOK, h.svc.GetDonationHistory(ctx.Request.Context(), req.Limit))
}

// HandleGetPaymentStats godoc
// @Summary      Donation and payment totals
// @Tags         payments
// @Produce      json
// @Success      200  {object}  domain.PaymentStats
// @Router       /payments.getPaymentStats [get]
func (h *PaymentHandler) HandleGetPaymentStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.GetPaymentStats(ctx.Request.Context()))
}
