package handler

import (
	"net/http"
	"strings"

	"github.com/financeforward/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
)

// ShowLoginPage renders the admin sign-in form.
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "Admin sign in",
	})
}

// Login checks the submitted credentials and starts an admin session.
func (a *API) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user db.User
	if err := a.db.WithContext(c.Request.Context()).Where("username = ?", username).First(&user).Error; err != nil || !user.CheckPassword(password) {
		a.logger.Warn("admin sign in rejected", zap.String("username", username))
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title":    "Admin sign in",
			"error":    "Invalid username or password.",
			"username": username,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin sign in",
			"error": "Could not start the session.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout ends the admin session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard renders record counts and the unread inquiry badge.
func (a *API) ShowDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	counts := []struct {
		Label string
		Count int64
	}{
		{Label: "Services"},
		{Label: "Programs"},
		{Label: "Workshops"},
		{Label: "Testimonials"},
		{Label: "Blog posts"},
		{Label: "Inquiries"},
	}
	models := []interface{}{&db.Service{}, &db.Program{}, &db.Workshop{}, &db.Testimonial{}, &db.BlogPost{}, &db.Contact{}}
	for i, model := range models {
		if err := a.db.WithContext(ctx).Model(model).Count(&counts[i].Count).Error; err != nil {
			c.Error(err)
		}
	}

	unread, err := a.contacts.UnreadCount(ctx)
	if err != nil {
		c.Error(err)
	}

	session := sessions.Default(c)
	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":    "Dashboard",
		"username": session.Get(sessionUsernameKey),
		"counts":   counts,
		"unread":   unread,
		"variants": a.content.Variants(),
	})
}

// AuthRequired redirects visitors without an admin session to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUserID(c) == 0 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// APIAuthRequired rejects admin API calls without a session with 401.
func APIAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUserID(c) == 0 {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) uint {
	id, _ := sessions.Default(c).Get(sessionUserIDKey).(uint)
	return id
}
