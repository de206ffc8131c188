package latex

import "testing"

func TestEscape_ReservedCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "hello world", "hello world"},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"open brace", "a{b", `a\{b`},
		{"close brace", "a}b", `a\}b`},
		{"dollar", "cost: $5", `cost: \$5`},
		{"ampersand", "R&D", `R\&D`},
		{"hash", "#1", `\#1`},
		{"percent", "50%", `50\%`},
		{"underscore", "snake_case", `snake\_case`},
		{"tilde", "~user", `\textasciitilde{}user`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"several at once", "C&C {50%}", `C\&C \{50\%\}`},
		{"unicode passthrough", "résumé – naïve", "résumé – naïve"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscape_BackslashNotReprocessed(t *testing.T) {
	// The backslash of an inserted escape sequence must not itself be
	// escaped again. A literal "\&" in source text means a backslash
	// character followed by an ampersand character.
	got := Escape(`\&`)
	want := `\textbackslash{}\&`
	if got != want {
		t.Errorf("Escape(`\\&`) = %q, want %q", got, want)
	}
}
