package contenttypes

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/catalogadmin/internal/admin"
	"github.com/keyxmakerx/catalogadmin/internal/backend"
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
)

// Plugin bundles the content type section.
type Plugin struct {
	Store *catalog.Store[ContentType]
	Form  *catalog.Form[ContentType]
	Page  *admin.Page[ContentType]
}

// New builds the content type section on top of the backend's collection.
func New(b *backend.Backend, reporter catalog.Reporter) (*Plugin, error) {
	client, err := backend.For[ContentType](b, backend.Types)
	if err != nil {
		return nil, fmt.Errorf("contenttypes: %w", err)
	}

	store := catalog.NewStore[ContentType](string(backend.Types), client, reporter)
	form := catalog.NewForm(store, NewDraft)

	return &Plugin{
		Store: store,
		Form:  form,
		Page: admin.NewPage(admin.Definition[ContentType]{
			Title:    "Tipos",
			NewLabel: "Nuevo tipo",
			Path:     "/tipos",
			Fields: []admin.Field[ContentType]{
				admin.TextField("nombre", "Nombre", func(t ContentType) string { return t.Nombre }),
				admin.TextAreaField("descripcion", "Descripción", func(t ContentType) string { return t.Descripcion }),
			},
			Bind: admin.FormBinder[ContentType, ContentTypeRequest](),
		}, form),
	}, nil
}

// RegisterRoutes mounts the content type page under /tipos.
func (p *Plugin) RegisterRoutes(e *echo.Echo) {
	p.Page.RegisterRoutes(e)
}
