package admin

import (
	"strconv"

	"github.com/keyxmakerx/catalogadmin/internal/catalog"
)

// FieldKind selects how a field is rendered as an input and on the card.
type FieldKind int

const (
	KindText FieldKind = iota
	KindTextArea
	KindURL
	KindImage
	KindNumber
	KindStatus
	KindSelect
)

// Field describes one property of a record: its form input and its read-only
// display. Build fields with the constructors below; a zero Field renders
// nothing useful.
type Field[T any] struct {
	// Name is the form field name and the id suffix of the input.
	Name string

	// Label is shown next to the input and on the record card.
	Label string

	// Kind selects the input and display flavour.
	Kind FieldKind

	// Placeholder is the input hint.
	Placeholder string

	errorKey string
	text     func(T) string
	number   func(T) int
	flag     func(T) bool
	ref      func(T) catalog.Ref
	options  func(selected catalog.Ref) []catalog.Option
	resolve  func(catalog.Ref) (string, bool)
}

// --- Constructors ---

// TextField is a single-line text input.
func TextField[T any](name, label string, get func(T) string) Field[T] {
	return Field[T]{Name: name, Label: label, Kind: KindText, Placeholder: label, text: get}
}

// TextAreaField is a multi-line text input.
func TextAreaField[T any](name, label string, get func(T) string) Field[T] {
	return Field[T]{Name: name, Label: label, Kind: KindTextArea, Placeholder: label, text: get}
}

// URLField is a URL input shown as a link.
func URLField[T any](name, label string, get func(T) string) Field[T] {
	return Field[T]{Name: name, Label: label, Kind: KindURL, Placeholder: label, text: get}
}

// ImageField is a URL input shown as an image.
func ImageField[T any](name, label string, get func(T) string) Field[T] {
	return Field[T]{Name: name, Label: label, Kind: KindImage, Placeholder: label, text: get}
}

// NumberField is an integer input.
func NumberField[T any](name, label string, get func(T) int) Field[T] {
	return Field[T]{Name: name, Label: label, Kind: KindNumber, number: get}
}

// StatusField is the active-state checkbox, shown as "Activo"/"Inactivo".
func StatusField[T any](name, label string, get func(T) bool) Field[T] {
	return Field[T]{Name: name, Label: label, Kind: KindStatus, flag: get}
}

// SelectField picks an optional reference. options builds the choices with
// the current selection marked; resolve turns a reference into its label for
// the card (blank when absent).
func SelectField[T any](
	name, label string,
	get func(T) catalog.Ref,
	options func(selected catalog.Ref) []catalog.Option,
	resolve func(catalog.Ref) (string, bool),
) Field[T] {
	return Field[T]{
		Name:    name,
		Label:   label,
		Kind:    KindSelect,
		ref:     get,
		options: options,
		resolve: resolve,
	}
}

// WithPlaceholder overrides the input hint.
func (f Field[T]) WithPlaceholder(p string) Field[T] {
	f.Placeholder = p
	return f
}

// WithErrorKey sets the validation key of the field when it differs from the
// form name (e.g. form "anio_estreno" for JSON "año_estreno").
func (f Field[T]) WithErrorKey(key string) Field[T] {
	f.errorKey = key
	return f
}

// --- Accessors used by the views ---

// ErrorKey returns the key this field's validation message is stored under.
func (f Field[T]) ErrorKey() string {
	if f.errorKey != "" {
		return f.errorKey
	}
	return f.Name
}

// InputValue returns the value to prefill the input with.
func (f Field[T]) InputValue(rec T) string {
	switch f.Kind {
	case KindNumber:
		return strconv.Itoa(f.number(rec))
	case KindStatus:
		if f.flag(rec) {
			return "true"
		}
		return ""
	case KindSelect:
		return f.ref(rec).String()
	default:
		return f.text(rec)
	}
}

// Checked reports whether a status checkbox is ticked.
func (f Field[T]) Checked(rec T) bool {
	return f.Kind == KindStatus && f.flag(rec)
}

// Options returns the select choices with rec's reference selected.
func (f Field[T]) Options(rec T) []catalog.Option {
	if f.Kind != KindSelect || f.options == nil {
		return nil
	}
	return f.options(f.ref(rec))
}

// DisplayValue returns the read-only text of the field.
func (f Field[T]) DisplayValue(rec T) string {
	switch f.Kind {
	case KindStatus:
		if f.flag(rec) {
			return "Activo"
		}
		return "Inactivo"
	case KindSelect:
		if f.resolve == nil {
			return ""
		}
		label, _ := f.resolve(f.ref(rec))
		return label
	default:
		return f.InputValue(rec)
	}
}
