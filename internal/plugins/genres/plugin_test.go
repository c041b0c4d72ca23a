package genres

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyxmakerx/catalogadmin/internal/backend"
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
)

// fakeCatalog is an in-memory /generos collection served over HTTP.
type fakeCatalog struct {
	mu     sync.Mutex
	status int
	nextID int
	items  []map[string]any
	posted []map[string]any
}

func (f *fakeCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != 0 {
		w.WriteHeader(f.status)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(f.items)
	case http.MethodPost:
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		f.posted = append(f.posted, body)
		f.nextID++
		body["id"] = f.nextID
		f.items = append(f.items, body)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// sent returns the bodies received by POST.
func (f *fakeCatalog) sent() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.posted...)
}

func newPlugin(t *testing.T, fake *fakeCatalog, reporter catalog.Reporter) *Plugin {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	b, err := backend.New(backend.Config{BaseURL: srv.URL, Routes: backend.DefaultRoutes()})
	require.NoError(t, err)
	p, err := New(b, reporter)
	require.NoError(t, err)
	return p
}

func TestCreate_AgainstBackend(t *testing.T) {
	fake := &fakeCatalog{nextID: 6}
	p := newPlugin(t, fake, nil)

	p.Form.SetDraft(func(g *Genre) {
		(&GenreRequest{Nombre: "Comedia", Estado: true, Descripcion: "..."}).Apply(g)
	})
	created, err := p.Form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)

	items := p.Store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].ID)
	assert.Equal(t, "Comedia", items[0].Nombre)
	assert.True(t, items[0].Estado)
	assert.Equal(t, "...", items[0].Descripcion)

	posted := fake.sent()
	require.Len(t, posted, 1)
	sent := posted[0]
	assert.NotContains(t, sent, "id")
	assert.Equal(t, "Comedia", sent["nombre"])
	assert.Contains(t, sent, "fecha_creacion")
	assert.Contains(t, sent, "fecha_actualizacion")
}

func TestLoad_ServerErrorKeepsCollection(t *testing.T) {
	fake := &fakeCatalog{items: []map[string]any{
		{"id": 1, "nombre": "Drama", "estado": true, "descripcion": ""},
	}}
	var reports int
	p := newPlugin(t, fake, catalog.ReporterFunc(func(_ context.Context, resource, op string, err error) {
		reports++
		assert.Equal(t, "generos", resource)
		assert.Equal(t, catalog.OpList, op)
		assert.ErrorIs(t, err, backend.ErrNetwork)
	}))
	require.NoError(t, p.Store.Load(context.Background()))

	fake.mu.Lock()
	fake.status = http.StatusInternalServerError
	fake.mu.Unlock()
	err := p.Store.Load(context.Background())

	assert.ErrorIs(t, err, backend.ErrNetwork)
	assert.Equal(t, 1, reports)
	assert.Equal(t, 1, p.Store.Len())
}

func TestPage_CreateThroughForm(t *testing.T) {
	fake := &fakeCatalog{}
	p := newPlugin(t, fake, nil)
	e := echo.New()
	p.RegisterRoutes(e)

	form := url.Values{"nombre": {"<b>Terror</b>"}, "descripcion": {"  miedo "}}
	req := httptest.NewRequest(http.MethodPost, "/generos", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	items := p.Store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Terror", items[0].Nombre, "markup stripped before sending")
	assert.Equal(t, "miedo", items[0].Descripcion)
	assert.False(t, items[0].Estado, "unchecked box means inactive")

	show := httptest.NewRecorder()
	e.ServeHTTP(show, httptest.NewRequest(http.MethodGet, "/generos", nil))
	assert.Contains(t, show.Body.String(), "Terror")
	assert.Contains(t, show.Body.String(), "Inactivo")
}

func TestNewDraft_StartsActive(t *testing.T) {
	assert.Equal(t, Genre{Estado: true}, NewDraft())
}

func TestNormalize(t *testing.T) {
	g := Genre{Nombre: "  <i>Acción</i> ", Descripcion: "<script>x()</script>ok"}
	g.Normalize()
	assert.Equal(t, "Acción", g.Nombre)
	assert.Equal(t, "ok", g.Descripcion)
}
