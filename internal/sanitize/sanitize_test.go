package sanitize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t", ""},
		{"plain text", "Drama", "Drama"},
		{"trims", "  Comedia \n", "Comedia"},
		{"strips tags", "<b>Terror</b>", "Terror"},
		{"drops script", `Acción<script>alert(1)</script>`, "Acción"},
		{"keeps ampersand", "Tom & Jerry", "Tom & Jerry"},
		{"keeps quotes", `El "Padrino"`, `El "Padrino"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestURL(t *testing.T) {
	if got := URL("  https://example.com/p.jpg "); got != "https://example.com/p.jpg" {
		t.Errorf("URL() = %q", got)
	}
}
