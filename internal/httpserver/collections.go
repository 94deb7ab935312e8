package httpserver

import (
	"errors"
	"net/http"

	"storefront/internal/domain"
	collectionsvc "storefront/internal/service/collection"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listCollections(c *gin.Context) {
	collections, err := h.deps.CollectionSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if collections == nil {
		collections = []domain.Collection{}
	}
	c.JSON(http.StatusOK, collections)
}

func (h *handlers) getCollection(c *gin.Context) {
	id, ok := pathID(c, "collectionID")
	if !ok {
		return
	}
	collection, err := h.deps.CollectionSvc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (h *handlers) createCollection(c *gin.Context) {
	var in collectionsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	collection, err := h.deps.CollectionSvc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, collection)
}

func (h *handlers) updateCollection(c *gin.Context) {
	id, ok := pathID(c, "collectionID")
	if !ok {
		return
	}
	var in collectionsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	collection, err := h.deps.CollectionSvc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (h *handlers) deleteCollection(c *gin.Context) {
	id, ok := pathID(c, "collectionID")
	if !ok {
		return
	}
	if err := h.deps.CollectionSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProtected) {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Collection cannot be deleted."})
			return
		}
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
