package decode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/xml-format/go-xml/events"
	"github.com/signadot/xml-format/go-xml/writer"
)

func kinds(t *testing.T, rd *Reader) []string {
	t.Helper()
	var out []string
	for {
		ev, err := rd.ReadEvent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, events.Kind(ev))
		if _, ok := ev.(events.EOF); ok {
			return out
		}
	}
}

func TestReadEventKinds(t *testing.T) {
	in := `<?xml version="1.0"?><root a="1"><!--c-->text<leaf/></root>`
	rd := NewReader(strings.NewReader(in), WithSelfClose())

	want := []string{"Decl", "Start", "Comment", "Text", "Empty", "End", "Eof"}
	if diff := cmp.Diff(want, kinds(t, rd)); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestReadEventEOFSticky(t *testing.T) {
	rd := NewReader(strings.NewReader("<a/>"))
	for {
		ev, err := rd.ReadEvent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := ev.(events.EOF); ok {
			break
		}
	}
	ev, err := rd.ReadEvent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ev.(events.EOF); !ok {
		t.Errorf("expected EOF again, got %s", events.Kind(ev))
	}
}

func roundTrip(t *testing.T, in string, opts ...ReadOption) string {
	t.Helper()
	var buf bytes.Buffer
	w := writer.New(&buf)
	rd := NewReader(strings.NewReader(in), opts...)
	for {
		ev, err := rd.ReadEvent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := ev.(events.EOF); ok {
			return buf.String()
		}
		if err := w.WriteEvent(ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestRoundTripCompact(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{
			"plain",
			`<root a="1">text</root>`,
			`<root a="1">text</root>`,
		},
		{
			"self close",
			`<root><a></a><b/></root>`,
			`<root><a/><b/></root>`,
		},
		{
			"decl",
			`<?xml version="1.0" encoding="UTF-8"?><r/>`,
			`<?xml version="1.0" encoding="UTF-8"?><r/>`,
		},
		{
			"doctype",
			`<!DOCTYPE html><html></html>`,
			`<!DOCTYPE html><html/>`,
		},
		{
			"pi",
			`<?target data?><r/>`,
			`<?target data?><r/>`,
		},
		{
			"escaped text",
			`<r>a &lt; b &amp; c</r>`,
			`<r>a &lt; b &amp; c</r>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTrip(t, tt.in, WithSelfClose())
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDropSpace(t *testing.T) {
	in := "<root>\n  <a>kept text</a>\n  <b/>\n</root>"
	rd := NewReader(strings.NewReader(in), WithDropSpace(), WithSelfClose())

	want := []string{"Start", "Start", "Text", "End", "Empty", "End", "Eof"}
	if diff := cmp.Diff(want, kinds(t, rd)); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestReformat(t *testing.T) {
	in := "<root><a>text</a><b/></root>"
	var buf bytes.Buffer
	w := writer.NewWithIndent(&buf, ' ', 2)
	rd := NewReader(strings.NewReader(in), WithDropSpace(), WithSelfClose())
	for {
		ev, err := rd.ReadEvent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := ev.(events.EOF); ok {
			break
		}
		if err := w.WriteEvent(ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := strings.Join([]string{
		`<root>`,
		`  <a>text</a>`,
		`  <b/>`,
		`</root>`,
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestNestedSelfCloseOrder(t *testing.T) {
	in := "<a><b><c/></b></a>"
	rd := NewReader(strings.NewReader(in), WithSelfClose())

	want := []string{"Start", "Start", "Empty", "End", "End", "Eof"}
	if diff := cmp.Diff(want, kinds(t, rd)); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}
