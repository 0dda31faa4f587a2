package core

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"pgregory.net/rapid"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"trims before measuring", "  hello  ", 5, "hello"},
		{"cuts with ellipsis", "hello world", 8, "hello..."},
		{"right-trims the cut", "hello world", 9, "hello..."},
		{"empty", "", 5, ""},
		{"whitespace only", "   ", 5, ""},
		{"max three", "abcdef", 3, "..."},
		{"max below three", "abcdef", 1, "..."},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

// Property: output that fits is the trimmed input; longer input is cut to at
// most max runes ending in "...", exactly max when the cut point is not
// whitespace.
func TestTruncate_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		max := rapid.IntRange(3, 200).Draw(t, "max")

		got := Truncate(s, max)
		trimmed := strings.TrimSpace(s)
		runes := []rune(trimmed)

		if len(runes) <= max {
			if got != trimmed {
				t.Fatalf("Truncate(%q, %d) = %q, want trimmed input", s, max, got)
			}
			return
		}

		if !strings.HasSuffix(got, "...") {
			t.Fatalf("Truncate(%q, %d) = %q, want ellipsis suffix", s, max, got)
		}
		n := utf8.RuneCountInString(got)
		if n > max {
			t.Fatalf("Truncate(%q, %d) has %d runes, want <= %d", s, max, n, max)
		}
		if max > 3 && !unicode.IsSpace(runes[max-4]) && n != max {
			t.Fatalf("Truncate(%q, %d) has %d runes, want exactly %d", s, max, n, max)
		}
	})
}

// Property: over text with no whitespace the output length is exactly max.
func TestTruncate_PropertyExactLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-zA-Z0-9]{0,120}`).Draw(t, "s")
		max := rapid.IntRange(3, 100).Draw(t, "max")

		got := Truncate(s, max)
		if len(s) <= max {
			if got != s {
				t.Fatalf("Truncate(%q, %d) = %q", s, max, got)
			}
			return
		}
		if len(got) != max || !strings.HasSuffix(got, "...") {
			t.Fatalf("Truncate(%q, %d) = %q, want %d chars ending in ...", s, max, got, max)
		}
	})
}
