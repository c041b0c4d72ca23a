// Package contenttypes is the content type section of the dashboard (movie,
// series, documentary...). Types have no active flag.
package contenttypes

import (
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
	"github.com/keyxmakerx/catalogadmin/internal/sanitize"
)

// ContentType is one kind of media as stored by the catalog backend.
type ContentType struct {
	ID          int    `json:"id,omitempty"`
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
	catalog.Timestamps
}

// RecordID implements catalog.Record.
func (t ContentType) RecordID() int { return t.ID }

// Label implements catalog.Lookup.
func (t ContentType) Label() string { return t.Nombre }

// Normalize strips markup and surrounding whitespace from the text fields.
func (t *ContentType) Normalize() {
	t.Nombre = sanitize.Text(t.Nombre)
	t.Descripcion = sanitize.Text(t.Descripcion)
}

// NewDraft returns an empty content type.
func NewDraft() ContentType {
	return ContentType{}
}

// ContentTypeRequest holds the fields submitted by the create and edit forms.
type ContentTypeRequest struct {
	Nombre      string `form:"nombre"`
	Descripcion string `form:"descripcion"`
}

// Apply copies the submitted values onto a draft or edit buffer.
func (r *ContentTypeRequest) Apply(t *ContentType) {
	t.Nombre = r.Nombre
	t.Descripcion = r.Descripcion
}
