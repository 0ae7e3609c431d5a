package tinyregex

import "testing"

func TestQuoteMeta(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a.b", `a\.b`},
		{`\`, `\\`},
		{"(x|y)*", `\(x\|y\)\*`},
		{"[a-z]{2}", `\[a-z\]\{2\}`},
		{"^$?+", `\^\$\?\+`},
		{"é.", `é\.`},
	}

	for _, tt := range tests {
		if got := QuoteMeta(tt.input); got != tt.want {
			t.Errorf("QuoteMeta(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
