package httpserver

import (
	"net/http"

	"storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

type placeOrderRequest struct {
	CartID string `json:"cart_id" binding:"required"`
}

type updateOrderRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

func (h *handlers) placeOrder(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id required"})
		return
	}
	order, err := h.deps.OrderSvc.PlaceOrder(c.Request.Context(), req.CartID, user.ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

func (h *handlers) listOrders(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	orders, err := h.deps.OrderSvc.List(c.Request.Context(), user.ID, user.IsStaff)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *handlers) getOrder(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := pathID(c, "orderID")
	if !ok {
		return
	}
	order, err := h.deps.OrderSvc.Get(c.Request.Context(), id, user.ID, user.IsStaff)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func (h *handlers) updateOrder(c *gin.Context) {
	id, ok := pathID(c, "orderID")
	if !ok {
		return
	}
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_status required"})
		return
	}
	order, err := h.deps.OrderSvc.UpdatePaymentStatus(c.Request.Context(), id, domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
