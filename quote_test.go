package smtpsyntax

import (
	"testing"
)

func TestEscapeQuoted(t *testing.T) {
	// Pairs of logical content and its wire form, exact inverses of each other.
	var l = []struct {
		text, wire string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`\`, `\\`},
		{`"`, `\"`},
		{`a"b`, `a\"b`},
		{`a\b`, `a\\b`},
		{`\"`, `\\\"`},
		{`\\`, `\\\\`},
		{`a\\"`, `a\\\\\"`},
		{`say "hi\bye"`, `say \"hi\\bye\"`},
	}

	for _, e := range l {
		if wire := EscapeQuoted(e.text); wire != e.wire {
			t.Fatalf("escape %q: got %q, expected %q", e.text, wire, e.wire)
		}
		if text := UnescapeQuoted(e.wire); text != e.text {
			t.Fatalf("unescape %q: got %q, expected %q", e.wire, text, e.text)
		}
	}
}

func TestUnescapeOrder(t *testing.T) {
	// Backslash pairs resolve before quote pairs: the wire bytes \\\" are one
	// escaped backslash and one escaped dquote, not a backslash around a
	// misgrouped pair.
	if got := UnescapeQuoted(`\\\"`); got != `\"` {
		t.Fatalf(`unescape \\\": got %q, expected %q`, got, `\"`)
	}
	// And the wire form of content that itself contains escape-like bytes
	// must survive a full round trip.
	for _, wire := range []string{`\\`, `\"`, `ab`, `a\\b\"c`, `\\\"`} {
		if got := EscapeQuoted(UnescapeQuoted(wire)); got != wire {
			t.Fatalf("escape(unescape(%q)): got %q, expected the original", wire, got)
		}
	}
}
