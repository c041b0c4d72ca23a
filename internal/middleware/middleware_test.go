package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEcho returns an Echo with CSRF and a POST /form handler.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Use(CSRF())
	e.GET("/form", func(c echo.Context) error { return c.String(http.StatusOK, GetCSRFToken(c)) })
	e.POST("/form", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	return e
}

func TestCSRF_IssuesCookieOnGet(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/form", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CSRFCookieName, cookies[0].Name)
	assert.Equal(t, cookies[0].Value, rec.Body.String(), "handler sees the issued token")
}

func postForm(e *echo.Echo, cookie, field string) *httptest.ResponseRecorder {
	form := url.Values{}
	if field != "" {
		form.Set(CSRFFormField, field)
	}
	req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCSRF_Post(t *testing.T) {
	e := newTestEcho()

	assert.Equal(t, http.StatusNoContent, postForm(e, "tok", "tok").Code)
	assert.Equal(t, http.StatusForbidden, postForm(e, "tok", "other").Code)
	assert.Equal(t, http.StatusForbidden, postForm(e, "tok", "").Code)
	assert.Equal(t, http.StatusForbidden, postForm(e, "", "tok").Code)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, RequestID(c)) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	id := rec.Header().Get("X-Request-ID")
	assert.Len(t, id, 36)
	assert.Equal(t, id, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	e := echo.New()
	e.Use(Recovery())
	e.GET("/", func(c echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(SecurityHeaders(false))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "img-src 'self' data: https:")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestIPExtractor(t *testing.T) {
	extract := buildIPExtractor([]string{"10.0.0.0/8", "not-a-cidr"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.1.2.3")
	assert.Equal(t, "203.0.113.9", extract(req), "trusted proxy forwards the client")

	req.RemoteAddr = "198.51.100.7:5555"
	assert.Equal(t, "198.51.100.7", extract(req), "untrusted peer headers are ignored")
}
