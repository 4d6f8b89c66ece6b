package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/financeforward/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubHTMLRender struct {
	last *stubHTMLInstance
}

type stubHTMLInstance struct {
	name string
	data interface{}
}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	r.last = &stubHTMLInstance{name: name, data: data}
	return r.last
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

// payload returns the data of the last rendered template.
func (r *stubHTMLRender) payload(t *testing.T) gin.H {
	t.Helper()
	require.NotNil(t, r.last, "no template rendered")
	data, ok := r.last.data.(gin.H)
	require.True(t, ok, "unexpected template data %T", r.last.data)
	return data
}

type handlerEnv struct {
	db       *gorm.DB
	api      *API
	router   *gin.Engine
	renderer *stubHTMLRender
	cookies  []*http.Cookie
}

const (
	testAdminUser     = "admin"
	testAdminPassword = "admin-secret"
	testSiteBaseURL   = "https://coach.example.com/"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := db.Open(dsn, logger.Default.LogMode(logger.Silent))
	require.NoError(t, err, "open test database")
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

// newHandlerEnv wires the handlers the way the router does, with templates stubbed out.
func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := setupHandlerTestDB(t)
	_, err := db.EnsureUser(gdb, testAdminUser, testAdminPassword)
	require.NoError(t, err)

	api := NewAPI(gdb, t.TempDir(), "/media", testSiteBaseURL, nil)
	renderer := &stubHTMLRender{}

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

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

	r.GET("/admin/login", api.ShowLoginPage)
	r.POST("/admin/login", api.Login)
	r.GET("/admin/logout", api.Logout)
	r.GET("/admin/dashboard", AuthRequired(), api.ShowDashboard)

	group := r.Group("/admin/api", APIAuthRequired())
	group.GET("/content", api.ListContent)
	group.GET("/content/:variant", api.GetContent)
	group.POST("/content/:variant", api.CreateContent)
	group.PUT("/content/:variant", api.UpdateContent)
	group.DELETE("/content/:variant", api.DeleteContent)
	api.RegisterAdminResources(group)
	group.GET("/inquiries", api.ListInquiries)
	group.GET("/inquiries/:id", api.GetInquiry)
	group.POST("/inquiries/read", api.MarkInquiriesRead)
	group.POST("/inquiries/responded", api.MarkInquiriesResponded)
	group.PUT("/inquiries/:id/notes", api.UpdateInquiryNotes)
	group.DELETE("/inquiries/:id", api.DeleteInquiry)
	group.GET("/inquiry-types", api.ListInquiryTypes)
	group.POST("/uploads", api.UploadImage)

	return &handlerEnv{db: gdb, api: api, router: r, renderer: renderer}
}

func (e *handlerEnv) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range e.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		e.cookies = cookies
	}
	return w
}

func (e *handlerEnv) get(path string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *handlerEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req)
}

func (e *handlerEnv) sendJSON(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return e.do(req)
}

func (e *handlerEnv) login(t *testing.T) {
	t.Helper()
	w := e.postForm("/admin/login", url.Values{"username": {testAdminUser}, "password": {testAdminPassword}})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}
