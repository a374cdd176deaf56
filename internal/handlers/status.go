package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

type StatusHandler struct {
	orders *services.OrderService
}

func NewStatusHandler(orders *services.OrderService) *StatusHandler {
	return &StatusHandler{orders: orders}
}

// GetStatus godoc
// @Summary     Order status
// @Description Lightweight status poll for a single order.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       order_id path int true "Order ID"
// @Success     200 {object} models.StatusResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id}/status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orders.Get(c.Request.Context(), middleware.ProfileFromContext(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{
		OrderID:    order.ID,
		Status:     string(order.Status),
		AdminID:    order.AdminID,
		FinishedAt: order.FinishedAt,
	})
}
