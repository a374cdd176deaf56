package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

// AdminHandler serves the administrator screens: the pending queue, the
// caller's assigned orders and the history.
type AdminHandler struct {
	orders *services.OrderService
}

func NewAdminHandler(orders *services.OrderService) *AdminHandler {
	return &AdminHandler{orders: orders}
}

// Pending godoc
// @Summary     Pending queue
// @Description Orders in state Esperando with the client name.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /admin/orders/pending [get]
func (h *AdminHandler) Pending(c *gin.Context) {
	orders, err := h.orders.Pending(c.Request.Context(), middleware.ProfileFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewOrderListResponse(orders))
}

// Assigned godoc
// @Summary     My assigned orders
// @Description Orders in state Procesando claimed by the caller.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /admin/orders/assigned [get]
func (h *AdminHandler) Assigned(c *gin.Context) {
	orders, err := h.orders.Assigned(c.Request.Context(), middleware.ProfileFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewOrderListResponse(orders))
}

// History godoc
// @Summary     Finished orders
// @Description Orders in state Terminado with client and administrator names, newest first.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /admin/orders/history [get]
func (h *AdminHandler) History(c *gin.Context) {
	orders, err := h.orders.History(c.Request.Context(), middleware.ProfileFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewOrderListResponse(orders))
}

// Assign godoc
// @Summary     Claim an order
// @Description Binds the caller to the order and moves it to Procesando. Fails with 409
// @Description and reload=true when another administrator claimed it first.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       order_id path int true "Order ID"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /admin/orders/{order_id}/assign [post]
func (h *AdminHandler) Assign(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orders.Assign(c.Request.Context(), middleware.ProfileFromContext(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}

// Complete godoc
// @Summary     Finish an order
// @Description Moves an order from Procesando to Terminado.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       order_id path int true "Order ID"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /admin/orders/{order_id}/complete [post]
func (h *AdminHandler) Complete(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orders.Complete(c.Request.Context(), middleware.ProfileFromContext(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}
