// Package directors is the director section of the dashboard. Directors are
// lookup records referenced by media items; their label is the full name.
package directors

import (
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
	"github.com/keyxmakerx/catalogadmin/internal/sanitize"
)

// Director is one film director as stored by the catalog backend.
type Director struct {
	ID      int    `json:"id,omitempty"`
	Nombres string `json:"nombres" validate:"required"`
	Estado  bool   `json:"estado"`
	catalog.Timestamps
}

// RecordID implements catalog.Record.
func (d Director) RecordID() int { return d.ID }

// Label implements catalog.Lookup.
func (d Director) Label() string { return d.Nombres }

// Normalize strips markup and surrounding whitespace from the name.
func (d *Director) Normalize() {
	d.Nombres = sanitize.Text(d.Nombres)
}

// NewDraft returns an empty director; new directors start active.
func NewDraft() Director {
	return Director{Estado: true}
}

// DirectorRequest holds the fields submitted by the create and edit forms.
type DirectorRequest struct {
	Nombres string `form:"nombres"`
	Estado  bool   `form:"estado"`
}

// Apply copies the submitted values onto a draft or edit buffer.
func (r *DirectorRequest) Apply(d *Director) {
	d.Nombres = r.Nombres
	d.Estado = r.Estado
}
