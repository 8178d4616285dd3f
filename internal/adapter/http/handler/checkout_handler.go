package handler

import (
	"localpay-gateway/internal/adapter/http/dto"
	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"
	"localpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler turns the cart into a settled invoice.
type CheckoutHandler struct {
	checkout ports.CheckoutService
}

func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout handles POST /api/v1/checkout. An empty body settles with the
// auto strategy.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	dto.SanitizeStruct(&req)

	strategy, _ := domain.ParseStrategy(req.Strategy)
	result, err := h.checkout.Checkout(c.Request.Context(), ports.CheckoutRequest{
		Merchant:        req.Merchant,
		MerchantAddress: req.MerchantAddress,
		Strategy:        strategy,
		Session:         req.WalletSession(),
		Recipient:       req.Recipient,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
