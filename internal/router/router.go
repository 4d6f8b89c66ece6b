package router

import (
	"fmt"
	"net/http"

	"github.com/financeforward/internal/config"
	"github.com/financeforward/internal/handler"
	"github.com/financeforward/internal/logging"
	"github.com/financeforward/web"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sessionName = "financeforward_session"

// SetupRouter configures the gin engine: middleware, templates, static files, the
// public site and the session-protected admin area.
func SetupRouter(gdb *gorm.DB, cfg config.AppConfig, logger *zap.Logger) (*gin.Engine, error) {
	logger = logging.OrNop(logger)

	r := gin.New()
	r.Use(RequestID(), RequestLogger(logger), gin.Recovery(), SecurityHeaders())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	templates, err := web.Templates(handler.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(templates)

	static, err := web.Static()
	if err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	api := handler.NewAPI(gdb, cfg.UploadDir, cfg.UploadURLPath, cfg.SiteBaseURL, logger)

	r.GET("/healthz", api.HealthCheck)

	r.GET("/", api.ShowHome)
	r.GET("/about", api.ShowAbout)
	r.GET("/services", api.ShowServices)
	r.GET("/insights", api.ShowInsights)
	r.GET("/blog", api.ShowBlog)
	r.GET("/blog/:slug", api.ShowBlogDetail)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)
	r.NoRoute(api.NotFound)

	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		pages := admin.Group("")
		pages.Use(handler.AuthRequired())
		{
			pages.GET("", func(c *gin.Context) { c.Redirect(http.StatusFound, "/admin/dashboard") })
			pages.GET("/dashboard", api.ShowDashboard)
		}

		apiGroup := admin.Group("/api")
		apiGroup.Use(handler.APIAuthRequired())
		{
			apiGroup.GET("/content", api.ListContent)
			apiGroup.GET("/content/:variant", api.GetContent)
			apiGroup.POST("/content/:variant", api.CreateContent)
			apiGroup.PUT("/content/:variant", api.UpdateContent)
			apiGroup.DELETE("/content/:variant", api.DeleteContent)

			api.RegisterAdminResources(apiGroup)

			apiGroup.GET("/inquiries", api.ListInquiries)
			apiGroup.GET("/inquiries/:id", api.GetInquiry)
			apiGroup.POST("/inquiries/read", api.MarkInquiriesRead)
			apiGroup.POST("/inquiries/responded", api.MarkInquiriesResponded)
			apiGroup.PUT("/inquiries/:id/notes", api.UpdateInquiryNotes)
			apiGroup.DELETE("/inquiries/:id", api.DeleteInquiry)
			apiGroup.GET("/inquiry-types", api.ListInquiryTypes)

			apiGroup.POST("/uploads", api.UploadImage)
		}
	}

	return r, nil
}
