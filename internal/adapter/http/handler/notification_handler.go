package handler

import (
	"localpay-gateway/internal/adapter/http/dto"
	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifier ports.NotificationChannel
}

func NewNotificationHandler(notifier ports.NotificationChannel) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// Recent handles GET /api/v1/notifications.
func (h *NotificationHandler) Recent(c *gin.Context) {
	items := h.notifier.Recent(c.Request.Context())
	if items == nil {
		items = []domain.Notification{}
	}
	response.OK(c, dto.NotificationListResponse{Items: items})
}
