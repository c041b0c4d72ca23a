package producers

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/catalogadmin/internal/admin"
	"github.com/keyxmakerx/catalogadmin/internal/backend"
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
)

// Plugin bundles the producer section.
type Plugin struct {
	Store *catalog.Store[Producer]
	Form  *catalog.Form[Producer]
	Page  *admin.Page[Producer]
}

// New builds the producer section on top of the backend's collection.
func New(b *backend.Backend, reporter catalog.Reporter) (*Plugin, error) {
	client, err := backend.For[Producer](b, backend.Producers)
	if err != nil {
		return nil, fmt.Errorf("producers: %w", err)
	}

	store := catalog.NewStore[Producer](string(backend.Producers), client, reporter)
	form := catalog.NewForm(store, NewDraft)

	return &Plugin{
		Store: store,
		Form:  form,
		Page: admin.NewPage(admin.Definition[Producer]{
			Title:    "Productoras",
			NewLabel: "Nueva productora",
			Path:     "/productoras",
			Fields: []admin.Field[Producer]{
				admin.TextField("nombre", "Nombre", func(p Producer) string { return p.Nombre }),
				admin.TextField("slogan", "Slogan", func(p Producer) string { return p.Slogan }),
				admin.TextAreaField("descripcion", "Descripción", func(p Producer) string { return p.Descripcion }),
				admin.StatusField("estado", "Estado", func(p Producer) bool { return p.Estado }),
			},
			Bind: admin.FormBinder[Producer, ProducerRequest](),
		}, form),
	}, nil
}

// RegisterRoutes mounts the producer page under /productoras.
func (p *Plugin) RegisterRoutes(e *echo.Echo) {
	p.Page.RegisterRoutes(e)
}
