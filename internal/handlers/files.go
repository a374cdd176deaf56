package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

type FilesHandler struct {
	orders *services.OrderService
}

func NewFilesHandler(orders *services.OrderService) *FilesHandler {
	return &FilesHandler{orders: orders}
}

// GetDocument godoc
// @Summary     Open the order document
// @Description Redirects to the public URL of the document attached to the order.
// @Tags        files
// @Security    Bearer
// @Param       order_id path int true "Order ID"
// @Success     302
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id}/document [get]
func (h *FilesHandler) GetDocument(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orders.Get(c.Request.Context(), middleware.ProfileFromContext(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	if order.DocumentURL == nil || *order.DocumentURL == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "document not found"})
		return
	}

	c.Redirect(http.StatusFound, *order.DocumentURL)
}
