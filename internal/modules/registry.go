// Package modules defines the section registry of the dashboard. Each
// section is one catalog resource with its own management page. The landing
// page and the navigation bar are rendered from this list.
package modules

import (
	"strings"

	"github.com/keyxmakerx/catalogadmin/internal/backend"
)

// SectionInfo holds metadata about one dashboard section.
type SectionInfo struct {
	// Resource is the backend collection the section manages.
	Resource backend.Resource

	// Name is the human-readable label shown on the landing page.
	Name string

	// Path is the dashboard path of the section page (e.g., "/generos").
	Path string

	// Description is a short summary shown under the label.
	Description string

	// Icon is a short text glyph shown on the landing card.
	Icon string
}

// Registry returns every dashboard section in menu order. This is the
// canonical source of truth for what sections exist.
func Registry() []SectionInfo {
	return []SectionInfo{
		{
			Resource:    backend.Genres,
			Name:        "Género",
			Path:        "/generos",
			Description: "Géneros cinematográficos y su estado.",
			Icon:        "🧬",
		},
		{
			Resource:    backend.Directors,
			Name:        "Directores",
			Path:        "/directores",
			Description: "Directores disponibles para las medias.",
			Icon:        "🎬",
		},
		{
			Resource:    backend.Producers,
			Name:        "Productoras",
			Path:        "/productoras",
			Description: "Productoras con su slogan y descripción.",
			Icon:        "🏢",
		},
		{
			Resource:    backend.Types,
			Name:        "Tipos",
			Path:        "/tipos",
			Description: "Tipos de contenido (película, serie...).",
			Icon:        "🔖",
		},
		{
			Resource:    backend.Medias,
			Name:        "Medias",
			Path:        "/medias",
			Description: "Películas y series con sus referencias.",
			Icon:        "📺",
		},
	}
}

// Find returns the section managing the given resource, or nil if not found.
func Find(res backend.Resource) *SectionInfo {
	for _, s := range Registry() {
		if s.Resource == res {
			return &s
		}
	}
	return nil
}

// FindByPath returns the section whose page is at path (or below it).
func FindByPath(path string) *SectionInfo {
	for _, s := range Registry() {
		if path == s.Path || strings.HasPrefix(path, s.Path+"/") {
			return &s
		}
	}
	return nil
}

// Title returns the title bar text for a request path: the last path
// segment upper-cased, or "HOME" at the root.
func Title(path string) string {
	path = strings.TrimRight(path, "/")
	last := path[strings.LastIndex(path, "/")+1:]
	if last == "" {
		last = "Home"
	}
	return strings.ToUpper(last)
}
