package events

import (
	"errors"
	"testing"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a < b & c > d", "a &lt; b &amp; c &gt; d"},
		{`quotes " and ' pass`, `quotes " and ' pass`},
		{"", ""},
	}
	for _, tt := range tests {
		if got := string(EscapeText(tt.in)); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestEscapeAttrValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`a "b" & 'c'`, "a &quot;b&quot; &amp; &apos;c&apos;"},
		{"<tag>", "&lt;tag&gt;"},
	}
	for _, tt := range tests {
		if got := string(EscapeAttrValue(tt.in)); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a &lt; b &amp; c &gt; d", "a < b & c > d"},
		{"&quot;&apos;", `"'`},
		{"&#65;&#x41;&#x2713;", "AA✓"},
	}
	for _, tt := range tests {
		got, err := Unescape([]byte(tt.in))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != tt.want {
			t.Errorf("expected %q, got %q", tt.want, string(got))
		}
	}
}

func TestUnescapeErrors(t *testing.T) {
	bad := []string{
		"&amp",
		"&bogus;",
		"&#;",
		"&#xzz;",
		"&#x110000;",
	}
	for _, in := range bad {
		_, err := Unescape([]byte(in))
		if err == nil {
			t.Errorf("expected error for %q", in)
			continue
		}
		if !errors.Is(err, ErrEscape) {
			t.Errorf("expected ErrEscape for %q, got %v", in, err)
		}
	}
}

func FuzzUnescape(f *testing.F) {
	seeds := []string{
		"",
		"plain text",
		"a < b & c > d",
		`"quoted" & 'single'`,
		"<deeply <nested>> &&&",
		"unicode ✓ \U0001F600",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got, err := Unescape(EscapeAttrValue(s))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != s {
			t.Errorf("round trip mismatch: %q -> %q", s, string(got))
		}
	})
}
