package layouts

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestBase_HighlightsSectionAndFlashes(t *testing.T) {
	ctx := SetActivePath(context.Background(), "/productoras")
	ctx = SetFlashError(ctx, "No se pudo cargar <productoras>")
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>cuerpo</p>")
		return err
	})

	var buf bytes.Buffer
	if err := Base("Productoras", body).Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, "<h1>PRODUCTORAS</h1>") {
		t.Error("title bar should show the section name")
	}
	if !strings.Contains(html, `href="/productoras" class="active"`) {
		t.Error("active section not highlighted")
	}
	if !strings.Contains(html, "No se pudo cargar &lt;productoras&gt;") {
		t.Error("flash error missing or unescaped")
	}
	if !strings.Contains(html, "<p>cuerpo</p>") {
		t.Error("body not rendered")
	}
}

func TestWriter_URLSanitizesScheme(t *testing.T) {
	var buf bytes.Buffer
	hw := NewWriter(&buf)
	hw.URL("javascript:alert(1)")

	if strings.Contains(buf.String(), "javascript") {
		t.Errorf("unsafe URL written: %q", buf.String())
	}
}

func TestWriter_CSRFField(t *testing.T) {
	var buf bytes.Buffer
	hw := NewWriter(&buf)
	hw.CSRFField(SetCSRFToken(context.Background(), "tok\"1"))

	want := `<input type="hidden" name="csrf_token" value="tok&#34;1">`
	if buf.String() != want {
		t.Errorf("CSRFField = %q, want %q", buf.String(), want)
	}
}
