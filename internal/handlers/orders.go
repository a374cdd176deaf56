package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

// OrdersHandler serves the client side: submitting, listing and deleting
// one's own orders.
type OrdersHandler struct {
	orders        *services.OrderService
	maxUploadSize int64
}

func NewOrdersHandler(orders *services.OrderService, maxUploadSize int64) *OrdersHandler {
	return &OrdersHandler{
		orders:        orders,
		maxUploadSize: maxUploadSize,
	}
}

// CreateOrder godoc
// @Summary     Submit a print order
// @Description Uploads the document to the documentos bucket and creates the order in
// @Description state Esperando. n_copias defaults to 1. If the order cannot be saved the
// @Description uploaded document is removed again.
// @Tags        orders
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       descripcion formData string true "What to print"
// @Param       n_copias formData int false "Number of copies" default(1)
// @Param       a_color formData bool false "Print in color" default(false)
// @Param       file formData file true "Document or photo"
// @Success     201 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	in, doc, file, ok := parseOrderForm(c, h.maxUploadSize)
	if !ok {
		return
	}
	defer file.Close()

	order, err := h.orders.Submit(c.Request.Context(), middleware.ProfileFromContext(c), in, doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewOrderResponse(order))
}

// ListOrders godoc
// @Summary     My orders
// @Description Orders submitted by the caller, newest first.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ClientOrders(c.Request.Context(), middleware.ProfileFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewOrderListResponse(orders))
}

// GetOrder godoc
// @Summary     Get an order
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       order_id path int true "Order ID"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orders.Get(c.Request.Context(), middleware.ProfileFromContext(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}

// DeleteOrder godoc
// @Summary     Delete an order
// @Description Only the owner may delete, and only while the order is Esperando.
// @Tags        orders
// @Security    Bearer
// @Param       order_id path int true "Order ID"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /orders/{order_id} [delete]
func (h *OrdersHandler) DeleteOrder(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), middleware.ProfileFromContext(c), orderID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
