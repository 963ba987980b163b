package printful

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestResponseSnippetTruncates(t *testing.T) {
	body := []byte(strings.Repeat("a", 600))
	got := responseSnippet(body)
	if want := strings.Repeat("a", 512) + "..."; got != want {
		t.Fatalf("snippet length = %d, want %d", len(got), len(want))
	}
}

func TestResponseSnippetKeepsRuneBoundary(t *testing.T) {
	// A 3-byte rune straddles the truncation point.
	body := []byte(strings.Repeat("a", 511) + strings.Repeat("日", 40))
	got := responseSnippet(body)
	if !utf8.ValidString(got) {
		t.Fatalf("snippet is not valid UTF-8: %q", got[500:])
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("snippet not truncated: %q", got)
	}
	if want := strings.Repeat("a", 511) + "..."; got != want {
		t.Fatalf("snippet = %q, want rune-aligned cut", got[500:])
	}
}

func TestResponseSnippetEmptyBody(t *testing.T) {
	if got := responseSnippet(nil); got != "<empty>" {
		t.Fatalf("snippet = %q", got)
	}
}
