package nfa

import (
	"errors"
	"regexp"
	"testing"

	"github.com/coregx/tinyregex/syntax"
)

func TestCompile_StateCount(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"a", 2},
		{"ab", 4},
		{"a|b", 6},
		{"a*", 4},
		{"a{0}", 2},
		{"^", 1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.pattern, err)
			}
			if n.States() != tt.want {
				t.Errorf("States() = %d, want %d\n%s", n.States(), tt.want, n)
			}
		})
	}
}

func TestCompile_SyntaxErrors(t *testing.T) {
	tests := []struct {
		pattern string
		code    syntax.ErrorCode
	}{
		{"*a", syntax.ErrMissingRepeatArgument},
		{"(*)", syntax.ErrMissingRepeatArgument},
		{"a|", syntax.ErrMissingOperand},
		{"|a", syntax.ErrMissingOperand},
		{"a^", syntax.ErrMissingOperator},
		{"$a", syntax.ErrMissingOperator},
		{"[ab", syntax.ErrMissingBracket},
		{"(ab", syntax.ErrMissingParen},
		{"a{2,1}", syntax.ErrInvalidRepeatSize},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			var se *syntax.Error
			if !errors.As(err, &se) {
				t.Fatalf("Compile(%q) error = %v, want *syntax.Error", tt.pattern, err)
			}
			if se.Code != tt.code {
				t.Errorf("code = %q, want %q", se.Code, tt.code)
			}
			if !errors.Is(err, syntax.ErrSyntax) {
				t.Error("errors.Is(err, syntax.ErrSyntax) = false")
			}
		})
	}
}

func TestCompile_EmptyGroup(t *testing.T) {
	_, err := Compile("()")
	if err == nil {
		t.Fatal("Compile(\"()\") succeeded, want error")
	}
	if !errors.Is(err, ErrInternal) {
		t.Errorf("errors.Is(err, ErrInternal) = false for %v", err)
	}
	if errors.Is(err, syntax.ErrSyntax) {
		t.Error("empty group reported as a syntax error")
	}
}

func TestCompile_Repeat(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a{3}", []string{"aaa"}, []string{"", "aa", "aaaa"}},
		{"a{2,4}", []string{"aa", "aaa", "aaaa"}, []string{"a", "aaaaa"}},
		{"a{2,}", []string{"aa", "aaaaaaa"}, []string{"", "a"}},
		{"a{,2}", []string{"", "a", "aa"}, []string{"aaa"}},
		{"a{0}", []string{""}, []string{"a"}},
		{"(ab){2}", []string{"abab"}, []string{"ab", "ababab", "aabb"}},
		{"(a|bc){1,2}", []string{"a", "bc", "abc", "bca", "aa"}, []string{"", "abca", "b"}},
		{"(a{2}){2}", []string{"aaaa"}, []string{"aa", "aaa", "aaaaa"}},
		{"a+", []string{"a", "aaa"}, []string{""}},
		{"a?", []string{"", "a"}, []string{"aa"}},
		{"(^a){2}", []string{}, []string{"aa"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.pattern, err)
			}
			for _, s := range tt.accept {
				if !n.Matches(s, 0, len(s)) {
					t.Errorf("%q rejects %q", tt.pattern, s)
				}
			}
			for _, s := range tt.reject {
				if n.Matches(s, 0, len(s)) {
					t.Errorf("%q accepts %q", tt.pattern, s)
				}
			}
		})
	}
}

// TestCompile_MatchesStdlib checks whole-input matching against regexp on
// patterns whose semantics coincide with RE2 syntax.
func TestCompile_MatchesStdlib(t *testing.T) {
	patterns := []string{
		"a",
		"ab",
		"a|b",
		"a*",
		"a+b",
		"(ab)+",
		"a{2,3}",
		"a{2,}",
		"(a|b)*c",
		"[a-c]+1?",
		`\d+`,
		`\w+\s\w+`,
		`\D\S`,
		"(a|ab)(c|bcd)",
		"[^a1]*",
		".a.",
		"^a",
		"a$",
		"(^a|b)c",
		"(a|b$)",
		"(a*)*",
		"(a?){2}b",
	}
	inputs := alphabetStrings("abc1 ", 4)

	for _, p := range patterns {
		n, err := Compile(p)
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", p, err)
		}
		oracle := regexp.MustCompile(`^(?:` + p + `)$`)
		for _, in := range inputs {
			want := oracle.MatchString(in)
			if got := n.Matches(in, 0, len(in)); got != want {
				t.Errorf("%q on %q: got %v, want %v", p, in, got, want)
			}
		}
	}
}

// alphabetStrings returns every string over alphabet of length <= maxLen.
func alphabetStrings(alphabet string, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for l := 0; l < maxLen; l++ {
		next := make([]string, 0, len(level)*len(alphabet))
		for _, prefix := range level {
			for _, r := range alphabet {
				next = append(next, prefix+string(r))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

func TestCompile_Deterministic(t *testing.T) {
	const pattern = "([A-Z][a-z]+|dog|cat)+[0-9]*"
	a, err := Compile(pattern)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile(pattern)
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Errorf("two compilations differ:\n%s\n%s", a, b)
	}
}
