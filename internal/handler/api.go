package handler

import (
	"strings"
	"time"

	"github.com/financeforward/internal/db"
	"github.com/financeforward/internal/logging"
	"github.com/financeforward/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	logger   *zap.Logger
	content  *service.ContentService
	catalog  *service.CatalogService
	blog     *service.BlogService
	pages    *service.PageService
	contacts *service.ContactService
	media    *service.MediaService

	siteBaseURL string
}

const siteSettingsContextKey = "__site_settings"

// NewAPI constructs a handler set with shared services. Uploaded media is written to
// uploadDir and linked below uploadURL. siteBaseURL prefixes canonical page links.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL, siteBaseURL string, logger *zap.Logger) *API {
	logger = logging.OrNop(logger)
	content := service.NewContentService(gdb, logger)
	catalog := service.NewCatalogService(gdb)
	blog := service.NewBlogService(gdb)

	return &API{
		db:       gdb,
		logger:   logger,
		content:  content,
		catalog:  catalog,
		blog:     blog,
		pages:    service.NewPageService(content, catalog, blog),
		contacts: service.NewContactService(gdb, logger),
		media:    service.NewMediaService(uploadDir, uploadURL),

		siteBaseURL: strings.TrimRight(siteBaseURL, "/"),
	}
}

// siteSettings loads the settings once per request. A failed load is recorded on the
// context and the page falls back to the default settings.
func (a *API) siteSettings(c *gin.Context) *db.SiteSettings {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if settings, ok := cached.(*db.SiteSettings); ok {
			return settings
		}
	}

	settings, err := a.content.SiteSettings(c.Request.Context())
	if err != nil {
		c.Error(err)
		fallback := db.DefaultSiteSettings()
		settings = &fallback
	}

	c.Set(siteSettingsContextKey, settings)
	return settings
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = a.siteSettings(c)
	}
	if _, exists := payload["currentPath"]; !exists {
		payload["currentPath"] = c.Request.URL.Path
	}
	if _, exists := payload["canonicalURL"]; !exists && a.siteBaseURL != "" {
		payload["canonicalURL"] = a.siteBaseURL + c.Request.URL.Path
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}
