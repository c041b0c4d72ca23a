package directors

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/catalogadmin/internal/admin"
	"github.com/keyxmakerx/catalogadmin/internal/backend"
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
)

// Plugin bundles the director section.
type Plugin struct {
	Store *catalog.Store[Director]
	Form  *catalog.Form[Director]
	Page  *admin.Page[Director]
}

// New builds the director section on top of the backend's collection.
func New(b *backend.Backend, reporter catalog.Reporter) (*Plugin, error) {
	client, err := backend.For[Director](b, backend.Directors)
	if err != nil {
		return nil, fmt.Errorf("directors: %w", err)
	}

	store := catalog.NewStore[Director](string(backend.Directors), client, reporter)
	form := catalog.NewForm(store, NewDraft)

	return &Plugin{
		Store: store,
		Form:  form,
		Page: admin.NewPage(admin.Definition[Director]{
			Title:    "Directores",
			NewLabel: "Nuevo director",
			Path:     "/directores",
			Fields: []admin.Field[Director]{
				admin.TextField("nombres", "Nombre", func(d Director) string { return d.Nombres }),
				admin.StatusField("estado", "Estado", func(d Director) bool { return d.Estado }),
			},
			Bind: admin.FormBinder[Director, DirectorRequest](),
		}, form),
	}, nil
}

// RegisterRoutes mounts the director page under /directores.
func (p *Plugin) RegisterRoutes(e *echo.Echo) {
	p.Page.RegisterRoutes(e)
}
