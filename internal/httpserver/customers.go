package httpserver

import (
	"net/http"

	customersvc "storefront/internal/service/customer"
	"github.com/gin-gonic/gin"
)

func (h *handlers) me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	customer, err := h.deps.CustomerSvc.Me(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(*customer))
}

func (h *handlers) updateMe(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var in customersvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	customer, err := h.deps.CustomerSvc.UpdateMe(c.Request.Context(), user.ID, in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(*customer))
}
