package handler

import (
	"net/http"
	"strings"

	"github.com/financeforward/internal/db"
	"github.com/financeforward/internal/service"
	"github.com/gin-gonic/gin"
)

// resourceHandler serves admin CRUD for one collection.
type resourceHandler[T any, PT service.ListRecord[T]] struct {
	api   *API
	items *service.Collection[T, PT]
}

// registerResource mounts list, get, create, update and delete under path.
// create replaces the default create handler when non-nil.
func registerResource[T any, PT service.ListRecord[T]](a *API, group *gin.RouterGroup, path string, items *service.Collection[T, PT], create gin.HandlerFunc) {
	h := &resourceHandler[T, PT]{api: a, items: items}
	if create == nil {
		create = h.create
	}
	group.GET(path, h.list)
	group.GET(path+"/:id", h.get)
	group.POST(path, create)
	group.PUT(path+"/:id", h.update)
	group.DELETE(path+"/:id", h.remove)
}

func (h *resourceHandler[T, PT]) list(c *gin.Context) {
	filter := service.ListFilter{Search: strings.TrimSpace(c.Query("search")), Flags: map[string]bool{}}
	for _, name := range h.items.Flags() {
		value, err := parseBoolQuery(c, name)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if value != nil {
			filter.Flags[name] = *value
		}
	}

	records, err := h.items.List(c.Request.Context(), filter)
	if err != nil {
		h.api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": records, "total": len(records)})
}

func (h *resourceHandler[T, PT]) get(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	record, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		h.api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": record})
}

func (h *resourceHandler[T, PT]) create(c *gin.Context) {
	record := h.items.New()
	if !bindJSON(c, record, "invalid request body") {
		return
	}
	if err := h.items.Create(c.Request.Context(), record); err != nil {
		h.api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": record})
}

func (h *resourceHandler[T, PT]) update(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	record, err := h.items.Update(c.Request.Context(), id, c.ShouldBindJSON)
	if err != nil {
		h.api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": record})
}

func (h *resourceHandler[T, PT]) remove(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.items.Delete(c.Request.Context(), id); err != nil {
		h.api.respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePost saves a new blog post; the signed-in admin becomes the author unless one is given.
func (a *API) CreatePost(c *gin.Context) {
	var post db.BlogPost
	if !bindJSON(c, &post, "invalid request body") {
		return
	}
	if err := a.blog.Create(c.Request.Context(), &post, currentUserID(c)); err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": &post})
}

// RegisterAdminResources mounts the collection endpoints on the admin API group.
func (a *API) RegisterAdminResources(group *gin.RouterGroup) {
	registerResource(a, group, "/services", a.catalog.Services, nil)
	registerResource(a, group, "/programs", a.catalog.Programs, nil)
	registerResource(a, group, "/workshops", a.catalog.Workshops, nil)
	registerResource(a, group, "/testimonials", a.catalog.Testimonials, nil)
	registerResource(a, group, "/posts", a.blog.Posts, a.CreatePost)
}
