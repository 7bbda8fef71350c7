package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"spa_booking_backend/internal/services"
	"spa_booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// PaymentHandler holds the payment service.
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

// InitiatePayment handles the simulated payment initiation step.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req services.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "InitiatePayment: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	initiation, err := h.paymentService.InitiatePayment(req)
	if err != nil {
		utils.LogError(err, "InitiatePayment: Error from paymentService.InitiatePayment")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), err.Error()))
		return
	}
	c.JSON(http.StatusOK, initiation)
}

// ConfirmPayment marks a booking's payment as completed.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req services.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ConfirmPayment: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}
	if req.BookingID == nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "bookingId is required.", ""))
		return
	}

	err := h.paymentService.ConfirmPayment(*req.BookingID)
	if err != nil {
		utils.LogError(err, "ConfirmPayment: Error from paymentService.ConfirmPayment")
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No booking found with id "+strconv.FormatInt(*req.BookingID, 10)+".", ""))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to confirm payment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed successfully"})
}

// PaymentQR renders the QR image referenced by qrCodeUrl. It is stateless:
// the payload is rebuilt from the query parameters on every request.
func (h *PaymentHandler) PaymentQR(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Query("bookingId"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "bookingId query parameter is required and must be numeric.", ""))
		return
	}
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || amount <= 0 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "amount query parameter is required and must be positive.", ""))
		return
	}

	png, err := qrcode.Encode(h.paymentService.QRPayload(bookingID, amount), qrcode.Medium, 256)
	if err != nil {
		utils.LogError(err, "PaymentQR: Failed to encode QR code")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate QR code.", "Internal error"))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
