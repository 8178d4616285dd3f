package handler

import (
	"localpay-gateway/internal/adapter/http/dto"
	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"
	"localpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// CartHandler handles the cart endpoints.
type CartHandler struct {
	cart ports.CartAggregator
}

func NewCartHandler(cart ports.CartAggregator) *CartHandler {
	return &CartHandler{cart: cart}
}

// Get handles GET /api/v1/cart.
func (h *CartHandler) Get(c *gin.Context) {
	response.OK(c, h.snapshot(c))
}

// AddItem handles POST /api/v1/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	item := domain.LineItem{ID: req.ID, Title: req.Title, Price: req.Price, Image: req.Image}
	if err := h.cart.AddToCart(c.Request.Context(), item, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.snapshot(c))
}

// RemoveItem handles DELETE /api/v1/cart/items/:id.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.RemoveFromCart(c.Request.Context(), domain.ProductID(c.Param("id")))
	response.OK(c, h.snapshot(c))
}

// Clear handles DELETE /api/v1/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.ClearCart(c.Request.Context())
	response.OK(c, h.snapshot(c))
}

func (h *CartHandler) snapshot(c *gin.Context) dto.CartResponse {
	ctx := c.Request.Context()
	items := h.cart.Cart(ctx)
	if items == nil {
		items = []domain.LineItem{}
	}
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return dto.CartResponse{Items: items, Total: h.cart.CartTotal(ctx), Count: count}
}
