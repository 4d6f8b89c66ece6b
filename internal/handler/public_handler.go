package handler

import (
	"errors"
	"net/http"

	"github.com/financeforward/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShowHome renders the landing page.
func (a *API) ShowHome(c *gin.Context) {
	page, err := a.pages.Home(c.Request.Context())
	if err != nil {
		a.renderPageError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title": a.siteSettings(c).SiteTitle,
		"page":  page,
	})
}

// ShowAbout renders the My Story page.
func (a *API) ShowAbout(c *gin.Context) {
	page, err := a.pages.About(c.Request.Context())
	if err != nil {
		a.renderPageError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"title": page.Story.PageTitle,
		"page":  page,
	})
}

// ShowServices renders services, programs and workshops.
func (a *API) ShowServices(c *gin.Context) {
	page, err := a.pages.Services(c.Request.Context())
	if err != nil {
		a.renderPageError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "services.html", gin.H{
		"title": "Services",
		"page":  page,
	})
}

// ShowInsights renders the insights landing page.
func (a *API) ShowInsights(c *gin.Context) {
	page, err := a.pages.Insights(c.Request.Context())
	if err != nil {
		a.renderPageError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "insights.html", gin.H{
		"title": page.Insights.PageTitle,
		"page":  page,
	})
}

// ShowBlog renders one page of the blog listing.
func (a *API) ShowBlog(c *gin.Context) {
	page, err := a.pages.Blog(c.Request.Context(), c.Query("page"))
	if err != nil {
		a.renderPageError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "blog.html", gin.H{
		"title": "Blog",
		"page":  page,
	})
}

// ShowBlogDetail renders a published post; unknown or unpublished slugs get a 404.
func (a *API) ShowBlogDetail(c *gin.Context) {
	page, err := a.pages.BlogDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		a.renderPageError(c, err)
		return
	}

	description := page.Post.MetaDescription
	if description == "" {
		description = page.Post.Excerpt
	}
	a.renderHTML(c, http.StatusOK, "blog_detail.html", gin.H{
		"title":           page.Post.Title,
		"metaDescription": description,
		"page":            page,
	})
}

// NotFound renders the 404 page for unmatched routes.
func (a *API) NotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "error.html", gin.H{
		"title":   "Page not found",
		"status":  http.StatusNotFound,
		"message": "The page you are looking for does not exist.",
	})
}

func (a *API) renderPageError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		a.NotFound(c)
		return
	}

	c.Error(err)
	a.logger.Error("page render failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{
		"title":   "Something went wrong",
		"status":  http.StatusInternalServerError,
		"message": "Please try again in a moment.",
	})
}
