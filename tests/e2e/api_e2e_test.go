package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/financeforward/internal/config"
	"github.com/financeforward/internal/db"
	"github.com/financeforward/internal/router"
	"github.com/financeforward/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	db        *gorm.DB
	public    httpClient
	admin     httpClient
	baseURL   string
	uploadDir string
	adminUser string
	adminPass string
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

func TestE2E_SiteFlow(t *testing.T) {
	suite := newE2ESuite(t)

	t.Run("public pages", suite.testPublicPages)
	t.Run("contact form", suite.testContactForm)
	suite.login(t)
	t.Run("admin content", suite.testAdminContent)
	t.Run("admin blog", suite.testAdminBlog)
	t.Run("admin inquiries", suite.testAdminInquiries)
	t.Run("uploads", suite.testUploads)
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(filepath.Join(t.TempDir(), "e2e.db"), logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if _, err := db.EnsureUser(gdb, "admin", "e2e-secret"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	seeder := service.NewSeedService(gdb, service.NewContentService(gdb, nil), nil)
	expertise, err := service.LoadExpertise("")
	if err != nil {
		t.Fatalf("failed to load expertise: %v", err)
	}
	if _, err := seeder.PopulateExpertise(context.Background(), expertise); err != nil {
		t.Fatalf("failed to populate expertise: %v", err)
	}

	uploadDir := t.TempDir()
	engine, err := router.SetupRouter(gdb, config.AppConfig{
		SessionSecret: "e2e-session-secret",
		UploadDir:     uploadDir,
		UploadURLPath: "/media",
	}, nil)
	if err != nil {
		t.Fatalf("failed to set up router: %v", err)
	}

	return &e2eSuite{
		db:        gdb,
		public:    newLocalClient(engine, true),
		admin:     newLocalClient(engine, true),
		baseURL:   "http://example.test",
		uploadDir: uploadDir,
		adminUser: "admin",
		adminPass: "e2e-secret",
	}
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	form := url.Values{
		"username": {s.adminUser},
		"password": {s.adminPass},
	}
	resp := s.mustRequest(t, s.admin, http.MethodPost, "/admin/login", strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login failed, status %d", resp.StatusCode)
	}
}

func (s *e2eSuite) checkHTML(t *testing.T, path, expect string, code int) {
	t.Helper()
	resp := s.mustRequest(t, s.public, http.MethodGet, path, nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != code {
		t.Fatalf("%s: expected status %d, got %d", path, code, resp.StatusCode)
	}
	body := readBody(t, resp)
	if expect != "" && !strings.Contains(body, expect) {
		t.Fatalf("%s: response does not contain %q", path, expect)
	}
}

func (s *e2eSuite) testPublicPages(t *testing.T) {
	s.checkHTML(t, "/", "Investment Management", http.StatusOK)
	s.checkHTML(t, "/about", "My Story", http.StatusOK)
	s.checkHTML(t, "/services", "Retirement Planning", http.StatusOK)
	s.checkHTML(t, "/insights", "Financial Insights", http.StatusOK)
	s.checkHTML(t, "/blog", "No articles published yet.", http.StatusOK)
	s.checkHTML(t, "/blog?page=9", "No articles published yet.", http.StatusOK)
	s.checkHTML(t, "/contact", "Speaking Engagement", http.StatusOK)
	s.checkHTML(t, "/nowhere", "does not exist", http.StatusNotFound)
	s.checkHTML(t, "/healthz", `"status":"ok"`, http.StatusOK)

	var count int64
	if err := s.db.Model(&db.HomePage{}).Count(&count).Error; err != nil {
		t.Fatalf("count home pages: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single home page row, got %d", count)
	}
}

func (s *e2eSuite) testContactForm(t *testing.T) {
	form := url.Values{
		"first_name":   {"Ana"},
		"last_name":    {"Lee"},
		"email":        {"ana@example.com"},
		"inquiry_type": {"consultation"},
		"subject":      {"Retirement"},
		"message":      {"Need help planning."},
	}
	headers := map[string]string{"Content-Type": "application/x-www-form-urlencoded"}

	resp := s.mustRequest(t, s.public, http.MethodPost, "/contact", strings.NewReader(form.Encode()), headers)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("contact submit expected 303, got %d", resp.StatusCode)
	}
	location := resp.Header.Get("Location")
	s.checkHTML(t, location, "Thank you for your message!", http.StatusOK)

	form.Set("email", "")
	resp = s.mustRequest(t, s.public, http.MethodPost, "/contact", strings.NewReader(form.Encode()), headers)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("invalid contact expected 422, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "This field is required.") {
		t.Fatalf("invalid contact: missing field error in %q", body)
	}
}

func (s *e2eSuite) testAdminContent(t *testing.T) {
	resp := s.mustRequest(t, s.public, http.MethodGet, "/admin/api/content/home", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous content read expected 401, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPut, "/admin/api/content/site-settings", map[string]interface{}{
		"siteTitle":    "Finance Forward",
		"contactEmail": "hello@financeforward.test",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update settings expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/content/site-settings", map[string]interface{}{})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second settings row expected 409, got %d", resp.StatusCode)
	}

	s.checkHTML(t, "/contact", "hello@financeforward.test", http.StatusOK)

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/dashboard", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "1 unread inquiries") {
		t.Fatalf("dashboard: missing unread badge")
	}
}

func (s *e2eSuite) testAdminBlog(t *testing.T) {
	resp := s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/posts", map[string]interface{}{
		"title":       "Budgeting Basics",
		"content":     "## Start small\nTrack every rupee.",
		"excerpt":     "A first budget.",
		"isPublished": true,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create post expected 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var created struct {
		Item struct {
			ID   uint   `json:"id"`
			Slug string `json:"slug"`
		} `json:"item"`
	}
	decodeJSON(t, resp, &created)
	if created.Item.Slug != "budgeting-basics" {
		t.Fatalf("unexpected slug %q", created.Item.Slug)
	}

	s.checkHTML(t, "/blog", "Budgeting Basics", http.StatusOK)
	s.checkHTML(t, "/blog/budgeting-basics", "<h2>Start small</h2>", http.StatusOK)
	s.checkHTML(t, "/", "Budgeting Basics", http.StatusOK)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPut, "/admin/api/posts/"+idStr(created.Item.ID), map[string]interface{}{
		"isPublished": false,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unpublish expected 200, got %d", resp.StatusCode)
	}
	s.checkHTML(t, "/blog/budgeting-basics", "", http.StatusNotFound)
}

func (s *e2eSuite) testAdminInquiries(t *testing.T) {
	resp := s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/inquiries?read=false", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list inquiries expected 200, got %d", resp.StatusCode)
	}
	var listed struct {
		Items []struct {
			ID        uint   `json:"id"`
			Email     string `json:"email"`
			Reference string `json:"reference"`
		} `json:"items"`
		Total int `json:"total"`
	}
	decodeJSON(t, resp, &listed)
	if listed.Total != 1 || listed.Items[0].Email != "ana@example.com" {
		t.Fatalf("unexpected inquiries: %+v", listed)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/inquiries/read", map[string]interface{}{
		"ids": []uint{listed.Items[0].ID},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("mark read expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/inquiries?read=false", nil, nil)
	defer resp.Body.Close()
	decodeJSON(t, resp, &listed)
	if listed.Total != 0 {
		t.Fatalf("expected no unread inquiries, got %d", listed.Total)
	}
}

func (s *e2eSuite) testUploads(t *testing.T) {
	resp := s.uploadTestImage(t)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload expected 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var uploaded struct {
		Media struct {
			URL   string `json:"url"`
			Width int    `json:"width"`
		} `json:"media"`
	}
	decodeJSON(t, resp, &uploaded)
	if !strings.HasPrefix(uploaded.Media.URL, "/media/") || uploaded.Media.Width != 4 {
		t.Fatalf("unexpected upload response: %+v", uploaded)
	}

	resp = s.mustRequest(t, s.public, http.MethodGet, uploaded.Media.URL, nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("uploaded file expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Content-Type") != "image/png" {
		t.Fatalf("unexpected content type %q", resp.Header.Get("Content-Type"))
	}
}

func (s *e2eSuite) uploadTestImage(t *testing.T) *http.Response {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "test.png")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(buf.Bytes()); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	headers := map[string]string{
		"Content-Type": writer.FormDataContentType(),
	}
	return s.mustRequest(t, s.admin, http.MethodPost, "/admin/api/uploads", body, headers)
}

func (s *e2eSuite) mustRequest(t *testing.T, client httpClient, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, s.baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request %s %s: %v", method, path, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func (s *e2eSuite) mustRequestJSON(t *testing.T, client httpClient, method, path string, payload map[string]interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	headers := map[string]string{"Content-Type": "application/json"}
	return s.mustRequest(t, client, method, path, bytes.NewReader(data), headers)
}

func decodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	body := readBody(t, resp)
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		t.Fatalf("failed to decode json: %v\nbody=%s", err, body)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(data)
}

func idStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
