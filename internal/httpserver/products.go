package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/domain"
	productsvc "storefront/internal/service/product"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *handlers) getProduct(c *gin.Context) {
	id, ok := pathID(c, "productID")
	if !ok {
		return
	}
	product, err := h.deps.ProductSvc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

func (h *handlers) createProduct(c *gin.Context) {
	var in productsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	product, err := h.deps.ProductSvc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*product))
}

func (h *handlers) updateProduct(c *gin.Context) {
	id, ok := pathID(c, "productID")
	if !ok {
		return
	}
	var in productsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	product, err := h.deps.ProductSvc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

func (h *handlers) deleteProduct(c *gin.Context) {
	id, ok := pathID(c, "productID")
	if !ok {
		return
	}
	if err := h.deps.ProductSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProtected) {
			c.JSON(http.StatusMethodNotAllowed, gin.H{
				"error": "Product cannot be deleted because it is associated with an order item.",
			})
			return
		}
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addImageRequest struct {
	Image string `json:"image" binding:"required"`
}

func (h *handlers) listImages(c *gin.Context) {
	id, ok := pathID(c, "productID")
	if !ok {
		return
	}
	images, err := h.deps.ProductSvc.ListImages(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if images == nil {
		images = []domain.ProductImage{}
	}
	c.JSON(http.StatusOK, images)
}

func (h *handlers) addImage(c *gin.Context) {
	id, ok := pathID(c, "productID")
	if !ok {
		return
	}
	var req addImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image required"})
		return
	}
	image, err := h.deps.ProductSvc.AddImage(c.Request.Context(), id, req.Image)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

// pathID parses a numeric path parameter, responding 404 on garbage so
// unknown and malformed ids look the same to clients.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}
