package admin

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"

	"github.com/keyxmakerx/catalogadmin/internal/catalog"
	"github.com/keyxmakerx/catalogadmin/internal/templates/layouts"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestInput_PerKind(t *testing.T) {
	genres := []lookup{{1, "Drama"}}
	m := movie{Year: 1900, Genre: catalog.RefTo(1), Cover: "www.example.com/c.jpg"}

	tests := []struct {
		name  string
		field Field[movie]
		want  string
	}{
		{
			name:  "number",
			field: NumberField("anio_estreno", "Año", func(m movie) int { return m.Year }),
			want:  `<input type="number" id="x" name="anio_estreno" value="1900">`,
		},
		{
			name:  "image stays text",
			field: ImageField("imagen_portada", "Imagen", func(m movie) string { return m.Cover }).WithPlaceholder("https://..."),
			want:  `<input type="text" id="x" name="imagen_portada" value="www.example.com/c.jpg" placeholder="https://...">`,
		},
		{
			name: "select",
			field: SelectField("genero_id", "Género",
				func(m movie) catalog.Ref { return m.Genre },
				func(sel catalog.Ref) []catalog.Option { return catalog.Options(genres, "Seleccione un género", sel) },
				func(r catalog.Ref) (string, bool) { return catalog.ResolveLabel(genres, r) },
			),
			want: `<select id="x" name="genero_id"><option value="">Seleccione un género</option><option value="1" selected>Drama</option></select>`,
		},
		{
			name:  "status",
			field: StatusField("estado", "Estado", func(movie) bool { return true }),
			want:  `<input type="checkbox" id="x" name="estado" value="true" checked>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, context.Background(), input(tt.field, "x", m)); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestFieldError_EmptyRendersNothing(t *testing.T) {
	if got := render(t, context.Background(), fieldError("Nombre", "")); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
	got := render(t, context.Background(), fieldError("Nombre", "es obligatorio"))
	if got != `<p class="field-error">Nombre es obligatorio</p>` {
		t.Errorf("unexpected output %q", got)
	}
}

func TestActionForm_CarriesCSRF(t *testing.T) {
	ctx := layouts.SetCSRFToken(context.Background(), "tok")
	got := render(t, ctx, actionForm("/generos/3/delete", "Eliminar", "danger"))
	want := `<form method="post" action="/generos/3/delete"><input type="hidden" name="csrf_token" value="tok">` +
		`<button type="submit" class="danger">Eliminar</button></form>`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}
