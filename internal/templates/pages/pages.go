// Package pages holds the standalone pages of the dashboard: the landing
// menu and the error page.
package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/keyxmakerx/catalogadmin/internal/modules"
	"github.com/keyxmakerx/catalogadmin/internal/templates/layouts"
)

// Landing renders the home panel with one card per section.
func Landing() templ.Component {
	return layouts.Base("Panel de inicio", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		hw.Raw(`<h2 class="panel-title">PANEL DE INICIO</h2><div class="cards">`)
		for _, s := range modules.Registry() {
			hw.Raw(`<a class="card" href="`)
			hw.URL(s.Path)
			hw.Raw(`"><span class="card-icon" aria-hidden="true">`)
			hw.Text(s.Icon)
			hw.Raw(`</span><h3>`)
			hw.Text(s.Name)
			hw.Raw(`</h3><p>`)
			hw.Text(s.Description)
			hw.Raw(`</p></a>`)
		}
		hw.Raw(`</div>`)
		return hw.Err()
	}))
}

// ErrorPage renders a full-page error with the status code and a user-safe
// message. The request id is shown so a report can be matched to the logs.
func ErrorPage(code int, message string) templ.Component {
	return layouts.Base("Error "+strconv.Itoa(code), templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		hw.Raw(`<section class="error-page"><h2>`)
		hw.Text(strconv.Itoa(code))
		hw.Raw(`</h2><p>`)
		hw.Text(message)
		hw.Raw(`</p>`)
		if id := layouts.GetRequestID(ctx); id != "" {
			hw.Raw(`<p class="muted">ID de solicitud: <code>`)
			hw.Text(id)
			hw.Raw(`</code></p>`)
		}
		hw.Raw(`<a href="/">Volver al inicio</a></section>`)
		return hw.Err()
	}))
}
