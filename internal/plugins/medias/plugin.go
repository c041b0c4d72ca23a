package medias

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/catalogadmin/internal/admin"
	"github.com/keyxmakerx/catalogadmin/internal/backend"
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
)

// Plugin bundles the media section.
type Plugin struct {
	Store   *catalog.Store[Media]
	Form    *catalog.Form[Media]
	Page    *admin.Page[Media]
	Lookups Lookups
}

// New builds the media section. The lookup Stores must belong to the other
// sections; they are reloaded alongside the media collection on every visit.
func New(b *backend.Backend, reporter catalog.Reporter, lookups Lookups) (*Plugin, error) {
	if lookups.Genres == nil || lookups.Directors == nil || lookups.Producers == nil || lookups.Types == nil {
		return nil, fmt.Errorf("medias: all four lookup stores are required")
	}
	client, err := backend.For[Media](b, backend.Medias)
	if err != nil {
		return nil, fmt.Errorf("medias: %w", err)
	}

	store := catalog.NewStore[Media](string(backend.Medias), client, reporter)
	form := catalog.NewForm(store, NewDraft)

	return &Plugin{
		Store:   store,
		Form:    form,
		Page:    admin.NewPage(definition(lookups), form),
		Lookups: lookups,
	}, nil
}

// RegisterRoutes mounts the media page under /medias.
func (p *Plugin) RegisterRoutes(e *echo.Echo) {
	p.Page.RegisterRoutes(e)
}

func definition(l Lookups) admin.Definition[Media] {
	genreOpts, genreLabel := selectOf(l.Genres, "Seleccione un género")
	directorOpts, directorLabel := selectOf(l.Directors, "Seleccione un director")
	producerOpts, producerLabel := selectOf(l.Producers, "Seleccione una productora")
	typeOpts, typeLabel := selectOf(l.Types, "Seleccione un tipo")

	return admin.Definition[Media]{
		Title:    "Medias",
		NewLabel: "Nueva media",
		Path:     "/medias",
		Fields: []admin.Field[Media]{
			admin.TextField("titulo", "Título", func(m Media) string { return m.Titulo }),
			admin.TextAreaField("sinopsis", "Sinopsis", func(m Media) string { return m.Sinopsis }),
			admin.URLField("url_pelicula", "URL Película", func(m Media) string { return m.URLPelicula }).
				WithPlaceholder("https://..."),
			admin.ImageField("imagen_portada", "Imagen Portada", func(m Media) string { return m.ImagenPortada }).
				WithPlaceholder("https://..."),
			admin.NumberField("anio_estreno", "Año de estreno", func(m Media) int { return m.AnioEstreno }).
				WithErrorKey("año_estreno"),
			admin.SelectField("genero_id", "Género", func(m Media) catalog.Ref { return m.GeneroID }, genreOpts, genreLabel),
			admin.SelectField("director_id", "Director", func(m Media) catalog.Ref { return m.DirectorID }, directorOpts, directorLabel),
			admin.SelectField("productora_id", "Productora", func(m Media) catalog.Ref { return m.ProductoraID }, producerOpts, producerLabel),
			admin.SelectField("tipo_id", "Tipo", func(m Media) catalog.Ref { return m.TipoID }, typeOpts, typeLabel),
		},
		Bind:    admin.FormBinder[Media, MediaRequest](),
		Preload: l.Load,
	}
}
