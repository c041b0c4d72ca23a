package admin

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/keyxmakerx/catalogadmin/internal/apperror"
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
	"github.com/keyxmakerx/catalogadmin/internal/templates/layouts"
)

// formTarget tells the view which form a validation failure belongs to.
type formTarget int

const (
	targetNone formTarget = iota
	targetCreate
	targetEdit
)

// view is the per-render state that is not held by the Store or Form.
type view struct {
	notice string
	banner *apperror.AppError
	errors *catalog.ValidationError
	target formTarget
}

// errorsFor returns the validation errors when they belong to target.
func (v view) errorsFor(target formTarget) *catalog.ValidationError {
	if v.target != target {
		return nil
	}
	return v.errors
}

// body renders the section content: creation form, then one card per
// record, with the record being edited replaced by its edit form.
func (p *Page[T]) body(v view) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		store := p.form.Store()

		hw.Component(ctx, p.createPanel(p.form.Draft(), v.errorsFor(targetCreate)))

		// --- Records ---
		items := store.Items()
		editID, buffer, editing := store.EditBuffer()

		if len(items) == 0 {
			hw.Raw(`<p class="muted">No hay registros.</p>`)
		}
		for _, rec := range items {
			if editing && rec.RecordID() == editID {
				hw.Component(ctx, p.editPanel(editID, buffer, v.errorsFor(targetEdit)))
				continue
			}
			hw.Component(ctx, p.card(rec))
		}
		return hw.Err()
	})
}

// createPanel renders the creation form prefilled from the draft.
func (p *Page[T]) createPanel(draft T, errs *catalog.ValidationError) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		hw.Raw(`<section class="panel create"><h2>`)
		hw.Text(p.def.NewLabel)
		hw.Raw(`</h2><form method="post" action="`)
		hw.URL(p.def.Path)
		hw.Raw(`">`)
		hw.CSRFField(ctx)
		hw.Component(ctx, p.inputs("new", draft, errs))
		hw.Raw(`<div class="actions"><button type="submit">Crear</button></div></form></section>`)
		return hw.Err()
	})
}

// editPanel renders the edit buffer of record id with save and cancel.
func (p *Page[T]) editPanel(id int, buffer T, errs *catalog.ValidationError) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		sid := strconv.Itoa(id)

		hw.Raw(`<section class="panel record editing" id="record-`)
		hw.Text(sid)
		hw.Raw(`"><form method="post" action="`)
		hw.URL(p.def.Path + "/" + sid)
		hw.Raw(`">`)
		hw.CSRFField(ctx)
		hw.Component(ctx, p.inputs("edit-"+sid, buffer, errs))
		hw.Raw(`<div class="actions"><button type="submit">Guardar</button></div></form>`)
		hw.Component(ctx, actionForm(p.def.Path+"/cancel", "Cancelar", "secondary"))
		hw.Raw(`</section>`)
		return hw.Err()
	})
}

// card renders the read-only view of one record with its actions.
func (p *Page[T]) card(rec T) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		id := strconv.Itoa(rec.RecordID())
		itemPath := p.def.Path + "/" + id

		hw.Raw(`<article class="panel record" id="record-`)
		hw.Text(id)
		hw.Raw(`"><dl>`)
		for _, f := range p.def.Fields {
			hw.Raw(`<dt>`)
			hw.Text(f.Label)
			hw.Raw(`</dt><dd>`)
			hw.Component(ctx, display(f, rec))
			hw.Raw(`</dd>`)
		}
		hw.Raw(`</dl><div class="actions">`)
		hw.Component(ctx, actionForm(itemPath+"/edit", "Editar", ""))
		hw.Component(ctx, actionForm(itemPath+"/delete", "Eliminar", "danger"))
		hw.Raw(`</div></article>`)
		return hw.Err()
	})
}

// actionForm is a single-button POST form.
func actionForm(action, label, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		hw.Raw(`<form method="post" action="`)
		hw.URL(action)
		hw.Raw(`">`)
		hw.CSRFField(ctx)
		hw.Raw(`<button type="submit"`)
		if class != "" {
			hw.Raw(` class="`)
			hw.Text(class)
			hw.Raw(`"`)
		}
		hw.Raw(`>`)
		hw.Text(label)
		hw.Raw(`</button></form>`)
		return hw.Err()
	})
}

// display renders the read-only value of one field.
func display[T any](f Field[T], rec T) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		value := f.DisplayValue(rec)
		switch {
		case value == "" && (f.Kind == KindURL || f.Kind == KindImage):
		case f.Kind == KindURL:
			hw.Raw(`<a href="`)
			hw.URL(value)
			hw.Raw(`" rel="noopener noreferrer" target="_blank">`)
			hw.Text(value)
			hw.Raw(`</a>`)
		case f.Kind == KindImage:
			hw.Raw(`<img src="`)
			hw.URL(value)
			hw.Raw(`" alt="`)
			hw.Text(f.Label)
			hw.Raw(`" loading="lazy">`)
		default:
			hw.Text(value)
		}
		return hw.Err()
	})
}

// --- Inputs ---

// inputs renders one labelled input per field, prefilled from rec, with the
// field's validation message underneath.
func (p *Page[T]) inputs(prefix string, rec T, errs *catalog.ValidationError) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		for _, f := range p.def.Fields {
			id := prefix + "-" + f.Name

			hw.Raw(`<div class="field"><label for="`)
			hw.Text(id)
			hw.Raw(`">`)
			hw.Text(f.Label)
			hw.Raw(`</label>`)
			hw.Component(ctx, input(f, id, rec))
			hw.Component(ctx, fieldError(f.Label, errs.Field(f.ErrorKey())))
			hw.Raw(`</div>`)
		}
		return hw.Err()
	})
}

// input picks the control for the field kind.
func input[T any](f Field[T], id string, rec T) templ.Component {
	switch f.Kind {
	case KindTextArea:
		return textArea(id, f.Name, f.Placeholder, f.InputValue(rec))
	case KindStatus:
		return checkbox(id, f.Name, f.Checked(rec))
	case KindSelect:
		return selectInput(id, f.Name, f.Options(rec))
	default:
		return textInput(inputType(f.Kind), id, f.Name, f.Placeholder, f.InputValue(rec))
	}
}

func textInput(kind, id, name, placeholder, value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		hw.Raw(`<input type="`)
		hw.Raw(kind)
		hw.Raw(`" id="`)
		hw.Text(id)
		hw.Raw(`" name="`)
		hw.Text(name)
		hw.Raw(`" value="`)
		hw.Text(value)
		hw.Raw(`"`)
		if placeholder != "" {
			hw.Raw(` placeholder="`)
			hw.Text(placeholder)
			hw.Raw(`"`)
		}
		hw.Raw(`>`)
		return hw.Err()
	})
}

func textArea(id, name, placeholder, value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		hw.Raw(`<textarea id="`)
		hw.Text(id)
		hw.Raw(`" name="`)
		hw.Text(name)
		hw.Raw(`" placeholder="`)
		hw.Text(placeholder)
		hw.Raw(`">`)
		hw.Text(value)
		hw.Raw(`</textarea>`)
		return hw.Err()
	})
}

// checkbox submits "true" when ticked and nothing otherwise.
func checkbox(id, name string, checked bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		hw.Raw(`<input type="checkbox" id="`)
		hw.Text(id)
		hw.Raw(`" name="`)
		hw.Text(name)
		hw.Raw(`" value="true"`)
		if checked {
			hw.Raw(` checked`)
		}
		hw.Raw(`>`)
		return hw.Err()
	})
}

func selectInput(id, name string, options []catalog.Option) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := layouts.NewWriter(w)
		hw.Raw(`<select id="`)
		hw.Text(id)
		hw.Raw(`" name="`)
		hw.Text(name)
		hw.Raw(`">`)
		for _, opt := range options {
			hw.Raw(`<option value="`)
			hw.Text(opt.Value)
			hw.Raw(`"`)
			if opt.Selected {
				hw.Raw(` selected`)
			}
			hw.Raw(`>`)
			hw.Text(opt.Label)
			hw.Raw(`</option>`)
		}
		hw.Raw(`</select>`)
		return hw.Err()
	})
}

// fieldError renders the validation message of one field, if any.
func fieldError(label, msg string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if msg == "" {
			return nil
		}
		hw := layouts.NewWriter(w)
		hw.Raw(`<p class="field-error">`)
		hw.Text(label + " " + msg)
		hw.Raw(`</p>`)
		return hw.Err()
	})
}

// inputType maps a field kind to its <input type>. Link fields stay "text"
// so the browser does not reject scheme-less links the backend already holds.
func inputType(kind FieldKind) string {
	switch kind {
	case KindNumber:
		return "number"
	default:
		return "text"
	}
}
