package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shule-labs/shule-api/internal/service"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
	"github.com/shule-labs/shule-api/pkg/response"
)

// FinanceHandler exposes fee and payment endpoints.
type FinanceHandler struct {
	finance *service.FinanceService
}

// NewFinanceHandler constructs FinanceHandler.
func NewFinanceHandler(finance *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

// ListFees godoc
// @Summary List fee lines
// @Tags Finance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /fees [get]
func (h *FinanceHandler) ListFees(c *gin.Context) {
	fees, err := h.finance.ListFees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fees)
}

// CreateFee godoc
// @Summary Define fee line
// @Tags Finance
// @Accept json
// @Produce json
// @Param payload body service.CreateFeeRequest true "Fee payload"
// @Success 201 {object} response.Envelope
// @Router /fees [post]
func (h *FinanceHandler) CreateFee(c *gin.Context) {
	var req service.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	fee, err := h.finance.CreateFee(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, fee)
}

// ListPayments godoc
// @Summary List payments
// @Tags Finance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /payments [get]
func (h *FinanceHandler) ListPayments(c *gin.Context) {
	payments, err := h.finance.ListPayments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payments)
}

// RecordPayment godoc
// @Summary Record payment
// @Tags Finance
// @Accept json
// @Produce json
// @Param payload body service.RecordPaymentRequest true "Payment payload"
// @Success 201 {object} response.Envelope
// @Router /payments [post]
func (h *FinanceHandler) RecordPayment(c *gin.Context) {
	var req service.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	payment, err := h.finance.RecordPayment(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payment)
}
