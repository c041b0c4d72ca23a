// Package producers is the production company section of the dashboard.
package producers

import (
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
	"github.com/keyxmakerx/catalogadmin/internal/sanitize"
)

// Producer is one production company as stored by the catalog backend.
type Producer struct {
	ID          int    `json:"id,omitempty"`
	Nombre      string `json:"nombre" validate:"required"`
	Estado      bool   `json:"estado"`
	Slogan      string `json:"slogan"`
	Descripcion string `json:"descripcion"`
	catalog.Timestamps
}

// RecordID implements catalog.Record.
func (p Producer) RecordID() int { return p.ID }

// Label implements catalog.Lookup.
func (p Producer) Label() string { return p.Nombre }

// Normalize strips markup and surrounding whitespace from the text fields.
func (p *Producer) Normalize() {
	p.Nombre = sanitize.Text(p.Nombre)
	p.Slogan = sanitize.Text(p.Slogan)
	p.Descripcion = sanitize.Text(p.Descripcion)
}

// NewDraft returns an empty producer; new producers start active.
func NewDraft() Producer {
	return Producer{Estado: true}
}

// ProducerRequest holds the fields submitted by the create and edit forms.
type ProducerRequest struct {
	Nombre      string `form:"nombre"`
	Estado      bool   `form:"estado"`
	Slogan      string `form:"slogan"`
	Descripcion string `form:"descripcion"`
}

// Apply copies the submitted values onto a draft or edit buffer.
func (r *ProducerRequest) Apply(p *Producer) {
	p.Nombre = r.Nombre
	p.Estado = r.Estado
	p.Slogan = r.Slogan
	p.Descripcion = r.Descripcion
}
