// Package genres is the genre section of the dashboard. Genres are lookup
// records: media items reference them by id and show their name.
package genres

import (
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
	"github.com/keyxmakerx/catalogadmin/internal/sanitize"
)

// Genre is one film genre as stored by the catalog backend.
type Genre struct {
	ID          int    `json:"id,omitempty"`
	Nombre      string `json:"nombre" validate:"required"`
	Estado      bool   `json:"estado"`
	Descripcion string `json:"descripcion"`
	catalog.Timestamps
}

// RecordID implements catalog.Record.
func (g Genre) RecordID() int { return g.ID }

// Label implements catalog.Lookup.
func (g Genre) Label() string { return g.Nombre }

// Normalize strips markup and surrounding whitespace from the text fields.
func (g *Genre) Normalize() {
	g.Nombre = sanitize.Text(g.Nombre)
	g.Descripcion = sanitize.Text(g.Descripcion)
}

// NewDraft returns an empty genre; new genres start active.
func NewDraft() Genre {
	return Genre{Estado: true}
}

// --- Request DTOs (bound from HTTP requests) ---

// GenreRequest holds the fields submitted by the create and edit forms.
type GenreRequest struct {
	Nombre      string `form:"nombre"`
	Estado      bool   `form:"estado"`
	Descripcion string `form:"descripcion"`
}

// Apply copies the submitted values onto a draft or edit buffer.
func (r *GenreRequest) Apply(g *Genre) {
	g.Nombre = r.Nombre
	g.Estado = r.Estado
	g.Descripcion = r.Descripcion
}
