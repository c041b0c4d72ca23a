package directors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyxmakerx/catalogadmin/internal/backend"
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
)

func newPlugin(t *testing.T, handler http.HandlerFunc) *Plugin {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	b, err := backend.New(backend.Config{BaseURL: srv.URL, Routes: backend.DefaultRoutes()})
	require.NoError(t, err)
	p, err := New(b, nil)
	require.NoError(t, err)
	return p
}

func TestLoad_DecodesNombres(t *testing.T) {
	p := newPlugin(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/directores", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 3, "nombres": "Agnès Varda", "estado": true},
			{"id": 4, "nombres": "Akira Kurosawa", "estado": false},
		})
	})

	require.NoError(t, p.Store.Load(context.Background()))

	items := p.Store.Items()
	require.Len(t, items, 2)
	label, ok := catalog.ResolveID(items, 4)
	assert.True(t, ok)
	assert.Equal(t, "Akira Kurosawa", label)
	assert.False(t, items[1].Estado)
}

func TestSubmit_RequiresNombres(t *testing.T) {
	called := false
	p := newPlugin(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	p.Form.SetDraft(func(d *Director) { d.Nombres = "   " })
	_, err := p.Form.Submit(context.Background())

	var verr *catalog.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Field("nombres"))
	assert.False(t, called, "invalid draft must not reach the backend")
}

func TestPage_ValidationRendersInline(t *testing.T) {
	p := newPlugin(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	})
	e := echo.New()
	p.RegisterRoutes(e)

	form := url.Values{"nombres": {""}, "estado": {"true"}}
	req := httptest.NewRequest(http.MethodPost, "/directores", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nombre es obligatorio")
	assert.True(t, p.Form.Draft().Estado, "draft keeps the submitted values")
}
