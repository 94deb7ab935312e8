package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type cartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *handlers) createCart(c *gin.Context) {
	cart, err := h.deps.CartSvc.Create(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toCartResponse(*cart))
}

func (h *handlers) getCart(c *gin.Context) {
	cart, err := h.deps.CartSvc.Get(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(*cart))
}

func (h *handlers) deleteCart(c *gin.Context) {
	if err := h.deps.CartSvc.Delete(c.Request.Context(), c.Param("cartID")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listCartItems(c *gin.Context) {
	cart, err := h.deps.CartSvc.Get(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	items := make([]cartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, toCartItemResponse(item))
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and quantity required"})
		return
	}
	item, err := h.deps.CartSvc.AddItem(c.Request.Context(), c.Param("cartID"), req.ProductID, req.Quantity)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toCartItemResponse(*item))
}

func (h *handlers) getCartItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	item, err := h.deps.CartSvc.GetItem(c.Request.Context(), c.Param("cartID"), itemID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toCartItemResponse(*item))
}

func (h *handlers) updateCartItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
		return
	}
	item, err := h.deps.CartSvc.UpdateItem(c.Request.Context(), c.Param("cartID"), itemID, req.Quantity)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toCartItemResponse(*item))
}

func (h *handlers) deleteCartItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	if err := h.deps.CartSvc.DeleteItem(c.Request.Context(), c.Param("cartID"), itemID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
