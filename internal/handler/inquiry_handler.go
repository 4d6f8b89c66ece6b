package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/financeforward/internal/service"
	"github.com/gin-gonic/gin"
)

type inquiryFlagRequest struct {
	IDs   []uint `json:"ids"`
	Value *bool  `json:"value"`
}

type inquiryNotesRequest struct {
	Notes string `json:"notes"`
}

// ListInquiries returns inquiries filtered by type, read and responded state.
func (a *API) ListInquiries(c *gin.Context) {
	filter := service.ContactFilter{
		Search:      strings.TrimSpace(c.Query("search")),
		InquiryType: strings.TrimSpace(c.Query("type")),
	}
	var err error
	if filter.IsRead, err = parseBoolQuery(c, "read"); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if filter.IsResponded, err = parseBoolQuery(c, "responded"); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	contacts, err := a.contacts.List(c.Request.Context(), filter)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": contacts, "total": len(contacts)})
}

func (a *API) GetInquiry(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	contact, err := a.contacts.Get(c.Request.Context(), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": contact})
}

// MarkInquiriesRead sets the read flag on the given inquiries; value defaults to true.
func (a *API) MarkInquiriesRead(c *gin.Context) {
	a.setInquiryFlag(c, a.contacts.MarkRead)
}

// MarkInquiriesResponded sets the responded flag on the given inquiries; value defaults to true.
func (a *API) MarkInquiriesResponded(c *gin.Context) {
	a.setInquiryFlag(c, a.contacts.MarkResponded)
}

func (a *API) setInquiryFlag(c *gin.Context, apply func(ctx context.Context, ids []uint, value bool) (int64, error)) {
	var payload inquiryFlagRequest
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}
	if len(payload.IDs) == 0 {
		respondError(c, http.StatusBadRequest, "ids are required")
		return
	}
	value := true
	if payload.Value != nil {
		value = *payload.Value
	}

	updated, err := apply(c.Request.Context(), payload.IDs, value)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// UpdateInquiryNotes replaces the staff notes of an inquiry.
func (a *API) UpdateInquiryNotes(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	var payload inquiryNotesRequest
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	contact, err := a.contacts.UpdateNotes(c.Request.Context(), id, payload.Notes)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": contact})
}

func (a *API) DeleteInquiry(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.contacts.Delete(c.Request.Context(), id); err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListInquiryTypes returns the categories offered on the contact form.
func (a *API) ListInquiryTypes(c *gin.Context) {
	types := make([]gin.H, 0, len(service.InquiryTypes))
	for _, item := range service.InquiryTypes {
		types = append(types, gin.H{"value": item.Value, "label": item.Label})
	}
	c.JSON(http.StatusOK, gin.H{"items": types})
}
