package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daveylupes/womantech/internal/services"
	"github.com/daveylupes/womantech/internal/utils"
)

type PaymentHandler struct {
	BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService, logger utils.Logger) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    NewBaseHandler(logger),
		paymentService: paymentService,
	}
}

// List reports the payment surface state
// @Summary List payments
// @Description Payment history is not live yet; returns a typed placeholder
// @Tags payments
// @Produce json
// @Success 200 {object} services.PlaceholderResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	result, err := h.paymentService.List(c.Request.Context())
	if err != nil {
		h.RespondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
