// Package medias is the media item section of the dashboard. A media item
// references a genre, a director, a producer and a content type; the page
// shows those references by label and offers them as select controls.
package medias

import (
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
	"github.com/keyxmakerx/catalogadmin/internal/sanitize"
)

// DefaultReleaseYear prefills the year input of a new media item.
const DefaultReleaseYear = 1900

// Media is one movie or series as stored by the catalog backend. Only the
// title is required; links and year are free input, as the backend accepts
// them.
type Media struct {
	ID            int         `json:"id,omitempty"`
	Titulo        string      `json:"titulo" validate:"required"`
	Sinopsis      string      `json:"sinopsis"`
	URLPelicula   string      `json:"url_pelicula"`
	ImagenPortada string      `json:"imagen_portada"`
	AnioEstreno   int         `json:"año_estreno"`
	GeneroID      catalog.Ref `json:"genero_id"`
	DirectorID    catalog.Ref `json:"director_id"`
	ProductoraID  catalog.Ref `json:"productora_id"`
	TipoID        catalog.Ref `json:"tipo_id"`
	catalog.Timestamps
}

// RecordID implements catalog.Record.
func (m Media) RecordID() int { return m.ID }

// Normalize strips markup from the text fields and whitespace from the URLs.
func (m *Media) Normalize() {
	m.Titulo = sanitize.Text(m.Titulo)
	m.Sinopsis = sanitize.Text(m.Sinopsis)
	m.URLPelicula = sanitize.URL(m.URLPelicula)
	m.ImagenPortada = sanitize.URL(m.ImagenPortada)
}

// NewDraft returns an empty media item with the default release year and no
// references selected.
func NewDraft() Media {
	return Media{AnioEstreno: DefaultReleaseYear}
}

// MediaRequest holds the fields submitted by the create and edit forms. The
// placeholder option of a select submits "", which binds to 0 (no selection).
type MediaRequest struct {
	Titulo        string `form:"titulo"`
	Sinopsis      string `form:"sinopsis"`
	URLPelicula   string `form:"url_pelicula"`
	ImagenPortada string `form:"imagen_portada"`
	AnioEstreno   int    `form:"anio_estreno"`
	GeneroID      int    `form:"genero_id"`
	DirectorID    int    `form:"director_id"`
	ProductoraID  int    `form:"productora_id"`
	TipoID        int    `form:"tipo_id"`
}

// Apply copies the submitted values onto a draft or edit buffer.
func (r *MediaRequest) Apply(m *Media) {
	m.Titulo = r.Titulo
	m.Sinopsis = r.Sinopsis
	m.URLPelicula = r.URLPelicula
	m.ImagenPortada = r.ImagenPortada
	m.AnioEstreno = r.AnioEstreno
	m.GeneroID = catalog.RefTo(r.GeneroID)
	m.DirectorID = catalog.RefTo(r.DirectorID)
	m.ProductoraID = catalog.RefTo(r.ProductoraID)
	m.TipoID = catalog.RefTo(r.TipoID)
}
