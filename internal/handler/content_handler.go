package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListContent reports every singleton variant with its row count.
func (a *API) ListContent(c *gin.Context) {
	ctx := c.Request.Context()
	items := make([]gin.H, 0, len(a.content.Variants()))
	for _, name := range a.content.Variants() {
		count, err := a.content.Count(ctx, name)
		if err != nil {
			a.respondServiceError(c, err)
			return
		}
		items = append(items, gin.H{"variant": name, "rows": count})
	}
	c.JSON(http.StatusOK, gin.H{"content": items})
}

// GetContent returns a singleton variant, creating it with defaults when absent.
func (a *API) GetContent(c *gin.Context) {
	record, err := a.content.Get(c.Request.Context(), c.Param("variant"))
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": record})
}

// CreateContent inserts a singleton variant explicitly; 409 when it already exists.
func (a *API) CreateContent(c *gin.Context) {
	record, err := a.content.Create(c.Request.Context(), c.Param("variant"), c.ShouldBindJSON)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"content": record})
}

// UpdateContent applies the JSON body to a singleton variant.
func (a *API) UpdateContent(c *gin.Context) {
	record, err := a.content.Update(c.Request.Context(), c.Param("variant"), c.ShouldBindJSON)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": record})
}

// DeleteContent removes surplus rows of a variant; 409 when only the canonical row exists.
func (a *API) DeleteContent(c *gin.Context) {
	removed, err := a.content.Delete(c.Request.Context(), c.Param("variant"))
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
