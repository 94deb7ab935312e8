package httpserver

import (
	"net/http"

	"storefront/internal/domain"
	reviewsvc "storefront/internal/service/review"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listReviews(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}
	reviews, err := h.deps.ReviewSvc.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *handlers) getReview(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "reviewID")
	if !ok {
		return
	}
	review, err := h.deps.ReviewSvc.Get(c.Request.Context(), productID, reviewID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *handlers) createReview(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}
	var in reviewsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	review, err := h.deps.ReviewSvc.Create(c.Request.Context(), productID, in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *handlers) updateReview(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "reviewID")
	if !ok {
		return
	}
	var in reviewsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	review, err := h.deps.ReviewSvc.Update(c.Request.Context(), productID, reviewID, in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *handlers) deleteReview(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "reviewID")
	if !ok {
		return
	}
	if err := h.deps.ReviewSvc.Delete(c.Request.Context(), productID, reviewID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
