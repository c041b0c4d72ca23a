// Package admin is the generic presentation layer of the dashboard. One
// Page type serves every catalog section: it mounts the section's Store,
// renders the creation form, the record cards and the edit form, and maps
// form actions onto catalog.Form. Sections only supply a Definition.
package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sourcegraph/conc"

	"github.com/keyxmakerx/catalogadmin/internal/apperror"
	"github.com/keyxmakerx/catalogadmin/internal/backend"
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
	"github.com/keyxmakerx/catalogadmin/internal/middleware"
	"github.com/keyxmakerx/catalogadmin/internal/templates/layouts"
)

// Success notices carried in the ?ok= query parameter after a redirect.
const (
	noticeCreated = "created"
	noticeUpdated = "updated"
	noticeDeleted = "deleted"
)

// Definition configures the page of one section.
type Definition[T catalog.Record] struct {
	// Title is the page title (e.g. "Géneros").
	Title string

	// NewLabel heads the creation form (e.g. "Nuevo género").
	NewLabel string

	// Path is the dashboard path of the section (e.g. "/generos").
	Path string

	// Fields are rendered in order, both as inputs and on the cards.
	Fields []Field[T]

	// Bind reads a submitted form into a setter for the draft/edit buffer.
	Bind BindFunc[T]

	// Preload runs alongside the section's own load on every mount. The
	// media section loads its lookup collections here. Optional.
	Preload func(ctx context.Context) error
}

// Page serves one catalog section.
type Page[T catalog.Record] struct {
	def  Definition[T]
	form *catalog.Form[T]
}

// NewPage creates the page of a section over its Form.
func NewPage[T catalog.Record](def Definition[T], form *catalog.Form[T]) *Page[T] {
	return &Page[T]{def: def, form: form}
}

// Path returns the section path.
func (p *Page[T]) Path() string {
	return p.def.Path
}

// RegisterRoutes mounts the section's handlers on e.
func (p *Page[T]) RegisterRoutes(e *echo.Echo) {
	g := e.Group(p.def.Path)
	g.GET("", p.Show)
	g.POST("", p.Create)
	g.POST("/cancel", p.Cancel)
	g.POST("/:id", p.SubmitEdit)
	g.POST("/:id/edit", p.BeginEdit)
	g.POST("/:id/delete", p.Delete)
}

// --- Handlers ---

// Show mounts the section: reloads the collection (and the preload, if any)
// concurrently, optionally begins an edit from ?edit={id}, and renders.
func (p *Page[T]) Show(c echo.Context) error {
	loadErr := p.mount(c.Request().Context())

	if raw := c.QueryParam("edit"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return err
		}
		if _, ok := p.form.BeginEdit(id); !ok {
			return apperror.NewNotFound("El registro solicitado no existe.")
		}
	}

	v := view{notice: noticeText(c.QueryParam("ok"))}
	if loadErr != nil {
		v.banner = apperror.NewBadGateway("No se pudieron cargar los registros. Se muestran los últimos datos conocidos.", loadErr)
		return p.render(c, http.StatusBadGateway, v)
	}
	return p.render(c, http.StatusOK, v)
}

// Create submits the creation form.
func (p *Page[T]) Create(c echo.Context) error {
	apply, err := p.def.Bind(c)
	if err != nil {
		return err
	}
	if _, err := p.form.SubmitWith(c.Request().Context(), apply); err != nil {
		return p.fail(c, err, targetCreate, "No se pudo crear el registro.")
	}
	return p.redirect(c, noticeCreated)
}

// BeginEdit opens the edit form of a record.
func (p *Page[T]) BeginEdit(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := p.ensureEditing(c.Request().Context(), id); err != nil {
		return err
	}
	return p.redirect(c, "")
}

// SubmitEdit saves the edit form of a record. A submit for a record other
// than the one being edited (another tab) switches the edit to it first.
func (p *Page[T]) SubmitEdit(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	apply, err := p.def.Bind(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if cur, ok := p.form.Store().EditingID(); !ok || cur != id {
		if err := p.ensureEditing(ctx, id); err != nil {
			return err
		}
	}
	if _, err := p.form.SubmitEditWith(ctx, id, apply); err != nil {
		return p.fail(c, err, targetEdit, "No se pudieron guardar los cambios.")
	}
	return p.redirect(c, noticeUpdated)
}

// Cancel discards the edit form.
func (p *Page[T]) Cancel(c echo.Context) error {
	p.form.CancelEdit()
	return p.redirect(c, "")
}

// Delete removes a record. There is no confirmation step.
func (p *Page[T]) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := p.form.Delete(c.Request().Context(), id); err != nil {
		return p.fail(c, err, targetNone, "No se pudo eliminar el registro.")
	}
	return p.redirect(c, noticeDeleted)
}

// --- Helpers ---

// mount loads the section's collection and runs the preload concurrently.
// Only the section's own failure is returned; preload failures are reported
// by the lookup stores and show up as blank labels.
func (p *Page[T]) mount(ctx context.Context) error {
	var loadErr error
	var wg conc.WaitGroup
	wg.Go(func() {
		loadErr = p.form.Store().Load(ctx)
	})
	if p.def.Preload != nil {
		wg.Go(func() {
			_ = p.def.Preload(ctx)
		})
	}
	wg.Wait()
	return loadErr
}

// ensureEditing begins editing id, loading the collection first when the
// record is not in memory yet (e.g. after a restart).
func (p *Page[T]) ensureEditing(ctx context.Context, id int) error {
	if _, ok := p.form.BeginEdit(id); ok {
		return nil
	}
	if err := p.form.Store().Load(ctx); err != nil {
		return apperror.NewBadGateway("No se pudieron cargar los registros.", err)
	}
	if _, ok := p.form.BeginEdit(id); !ok {
		return apperror.NewNotFound("El registro solicitado no existe.")
	}
	return nil
}

// fail re-renders the page after a failed submit. Validation failures are
// shown inline (422); backend failures as a banner (502). The draft or edit
// buffer still holds the user's input.
func (p *Page[T]) fail(c echo.Context, err error, target formTarget, message string) error {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		return p.render(c, http.StatusUnprocessableEntity, view{
			banner: apperror.NewValidation("Revise los campos marcados.", err),
			errors: verr,
			target: target,
		})
	case errors.Is(err, backend.ErrNetwork):
		return p.render(c, http.StatusBadGateway, view{
			banner: apperror.NewBadGateway(message, err),
			target: target,
		})
	case errors.Is(err, catalog.ErrNotEditing):
		return p.redirect(c, "")
	default:
		return apperror.NewInternal(err)
	}
}

// render writes the section page with the given status.
func (p *Page[T]) render(c echo.Context, status int, v view) error {
	ctx := c.Request().Context()
	if v.notice != "" {
		ctx = layouts.SetFlashSuccess(ctx, v.notice)
	}
	if v.banner != nil {
		ctx = layouts.SetFlashError(ctx, v.banner.Message)
	}
	c.SetRequest(c.Request().WithContext(ctx))

	return middleware.Render(c, status, layouts.Base(p.def.Title, p.body(v)))
}

// redirect sends the browser back to the section page (303).
func (p *Page[T]) redirect(c echo.Context, notice string) error {
	target := p.def.Path
	if notice != "" {
		target += "?ok=" + notice
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// parseID reads a positive record id.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperror.NewBadRequest("Identificador de registro inválido.")
	}
	return id, nil
}

// noticeText maps a ?ok= value to its flash message.
func noticeText(code string) string {
	switch code {
	case noticeCreated:
		return "Registro creado."
	case noticeUpdated:
		return "Cambios guardados."
	case noticeDeleted:
		return "Registro eliminado."
	default:
		return ""
	}
}
