package genres

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/catalogadmin/internal/admin"
	"github.com/keyxmakerx/catalogadmin/internal/backend"
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
)

// Plugin bundles the genre section: list state, form and page.
type Plugin struct {
	Store *catalog.Store[Genre]
	Form  *catalog.Form[Genre]
	Page  *admin.Page[Genre]
}

// New builds the genre section on top of the backend's genre collection.
func New(b *backend.Backend, reporter catalog.Reporter) (*Plugin, error) {
	client, err := backend.For[Genre](b, backend.Genres)
	if err != nil {
		return nil, fmt.Errorf("genres: %w", err)
	}

	store := catalog.NewStore[Genre](string(backend.Genres), client, reporter)
	form := catalog.NewForm(store, NewDraft)

	return &Plugin{
		Store: store,
		Form:  form,
		Page:  admin.NewPage(definition(), form),
	}, nil
}

// RegisterRoutes mounts the genre page under /generos.
func (p *Plugin) RegisterRoutes(e *echo.Echo) {
	p.Page.RegisterRoutes(e)
}

// definition describes the genre page.
func definition() admin.Definition[Genre] {
	return admin.Definition[Genre]{
		Title:    "Géneros",
		NewLabel: "Nuevo género",
		Path:     "/generos",
		Fields: []admin.Field[Genre]{
			admin.TextField("nombre", "Nombre", func(g Genre) string { return g.Nombre }),
			admin.TextAreaField("descripcion", "Descripción", func(g Genre) string { return g.Descripcion }),
			admin.StatusField("estado", "Estado", func(g Genre) bool { return g.Estado }),
		},
		Bind: admin.FormBinder[Genre, GenreRequest](),
	}
}
