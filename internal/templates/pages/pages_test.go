package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/keyxmakerx/catalogadmin/internal/templates/layouts"
)

func TestLanding_ListsEverySection(t *testing.T) {
	var buf bytes.Buffer
	ctx := layouts.SetActivePath(context.Background(), "/")
	if err := Landing().Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"PANEL DE INICIO",
		`href="/generos"`, "Género",
		`href="/directores"`, `href="/productoras"`, `href="/tipos"`, `href="/medias"`,
		"<h1>HOME</h1>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("landing page missing %q", want)
		}
	}
}

func TestErrorPage_EscapesMessage(t *testing.T) {
	var buf bytes.Buffer
	ctx := layouts.SetRequestID(context.Background(), "req-1")
	if err := ErrorPage(502, "<script>x</script>").Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()
	if strings.Contains(html, "<script>x</script>") {
		t.Error("message was not escaped")
	}
	if !strings.Contains(html, "502") || !strings.Contains(html, "req-1") {
		t.Error("status code or request id missing")
	}
}
