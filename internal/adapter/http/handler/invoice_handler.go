package handler

import (
	"localpay-gateway/internal/adapter/http/dto"
	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"
	"localpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoices   ports.InvoiceStore
	settlement ports.SettlementService
	notifier   ports.NotificationChannel
}

func NewInvoiceHandler(invoices ports.InvoiceStore, settlement ports.SettlementService, notifier ports.NotificationChannel) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, settlement: settlement, notifier: notifier}
}

// Create handles POST /api/v1/invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	inv, err := h.invoices.Create(c.Request.Context(), domain.InvoiceDraft{
		Merchant:        req.Merchant,
		MerchantAddress: req.MerchantAddress,
		Amount:          req.Amount,
		Items:           req.Items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, inv)
}

// List handles GET /api/v1/invoices, newest first. ?status= filters.
func (h *InvoiceHandler) List(c *gin.Context) {
	var status domain.InvoiceStatus
	if s := c.Query("status"); s != "" {
		status = domain.InvoiceStatus(s)
		if !status.Valid() {
			response.Error(c, apperror.Validation("invalid status: must be pending, paid, or failed"))
			return
		}
	}

	all := h.invoices.List(c.Request.Context())
	items := make([]domain.Invoice, 0, len(all))
	for _, inv := range all {
		if status == "" || inv.Status == status {
			items = append(items, inv)
		}
	}
	response.OK(c, dto.InvoiceListResponse{Items: items, Total: len(items)})
}

// Get handles GET /api/v1/invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.invoices.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, inv)
}

// Settle handles POST /api/v1/invoices/:id/settle.
func (h *InvoiceHandler) Settle(c *gin.Context) {
	var req dto.SettleInvoiceRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	dto.SanitizeStruct(&req)

	strategy, _ := domain.ParseStrategy(req.Strategy)
	settle := domain.SettleRequest{
		InvoiceID:       c.Param("id"),
		Strategy:        strategy,
		Session:         req.WalletSession(),
		MerchantAddress: req.MerchantAddress,
		Recipient:       req.Recipient,
	}

	if req.Async {
		inv, err := h.settlement.SettleAsync(c.Request.Context(), settle)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Accepted(c, inv)
		return
	}

	result, err := h.settlement.Settle(c.Request.Context(), settle)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Result handles GET /api/v1/invoices/:id/result.
func (h *InvoiceHandler) Result(c *gin.Context) {
	payload, err := h.notifier.Result(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payload)
}
