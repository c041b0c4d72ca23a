package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/keyxmakerx/catalogadmin/internal/modules"
)

// Writer accumulates component output and keeps the first write error, so
// component bodies can write without checking every call.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as-is.
func (hw *Writer) Raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// Text writes s HTML-escaped. Used for text content and attribute values.
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// URL writes u as an escaped attribute value. Unsafe schemes such as
// javascript: are replaced by templ's sanitized placeholder.
func (hw *Writer) URL(u string) {
	hw.Text(string(templ.URL(u)))
}

// Component renders a nested component into the same output.
func (hw *Writer) Component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// CSRFField writes the hidden CSRF input every POST form needs.
func (hw *Writer) CSRFField(ctx context.Context) {
	hw.Raw(`<input type="hidden" name="csrf_token" value="`)
	hw.Text(GetCSRFToken(ctx))
	hw.Raw(`">`)
}

// Err returns the first write error.
func (hw *Writer) Err() error {
	return hw.err
}

// Base is the page shell: document head, title bar with the section
// navigation, flash banners, then body.
func Base(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<!DOCTYPE html><html lang="es">`)
		hw.Component(ctx, head(title))
		hw.Raw(`<body>`)
		hw.Component(ctx, navbar(GetActivePath(ctx)))
		hw.Raw(`<main>`)
		hw.Component(ctx, flash("flash-success", "status", GetFlashSuccess(ctx)))
		hw.Component(ctx, flash("flash-error", "alert", GetFlashError(ctx)))
		hw.Component(ctx, body)
		hw.Raw(`</main></body></html>`)
		return hw.Err()
	})
}

func head(title string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw(`<title>`)
		hw.Text(title)
		hw.Raw(` · Catálogo</title><link rel="stylesheet" href="/static/css/app.css"></head>`)
		return hw.Err()
	})
}

// navbar renders the title bar and one link per section, marking the
// section that owns the active path.
func navbar(active string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		current := modules.FindByPath(active)

		barTitle := modules.Title(active)
		if current != nil {
			barTitle = modules.Title(current.Path)
		}

		hw.Raw(`<nav class="navbar"><a class="brand" href="/">Catálogo</a><h1>`)
		hw.Text(barTitle)
		hw.Raw(`</h1><ul>`)
		for _, s := range modules.Registry() {
			hw.Component(ctx, navLink(s, current != nil && current.Path == s.Path))
		}
		hw.Raw(`</ul></nav>`)
		return hw.Err()
	})
}

func navLink(s modules.SectionInfo, active bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<li><a href="`)
		hw.URL(s.Path)
		hw.Raw(`"`)
		if active {
			hw.Raw(` class="active" aria-current="page"`)
		}
		hw.Raw(`>`)
		hw.Text(s.Name)
		hw.Raw(`</a></li>`)
		return hw.Err()
	})
}

// flash renders one banner; an empty message renders nothing.
func flash(class, role, msg string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if msg == "" {
			return nil
		}
		hw := NewWriter(w)
		hw.Raw(`<div class="flash `)
		hw.Raw(class)
		hw.Raw(`" role="`)
		hw.Raw(role)
		hw.Raw(`">`)
		hw.Text(msg)
		hw.Raw(`</div>`)
		return hw.Err()
	})
}
