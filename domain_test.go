package smtpsyntax

import (
	"testing"
)

// Exported boundary around xsubdomain, for tests only.
func parseSubdomain(s string) (label, rest string, rerr error) {
	p := &parser{s: s}
	defer p.xrecover(&rerr)
	l := p.xsubdomain()
	return l, p.rest(), nil
}

func TestSubdomain(t *testing.T) {
	parsed := func(s, expLabel, expRest string) {
		t.Helper()
		label, rest, err := parseSubdomain(s)
		if err != nil {
			t.Fatalf("sub-domain %q: unexpected error %v", s, err)
		}
		if label != expLabel || rest != expRest {
			t.Fatalf("sub-domain %q: got %q + %q, expected %q + %q", s, label, rest, expLabel, expRest)
		}
	}

	parsed("example???", "example", "???")
	parsed("9to5 ", "9to5", " ")
	parsed("b-c.d", "b-c", ".d")
	parsed("a-?", "a", "-?") // Trailing hyphen is not part of the label.
	parsed("a--b?", "a", "--b?")

	var err error
	_, _, err = parseSubdomain("")
	tcheckIncomplete(t, "", err)
	_, _, err = parseSubdomain("a")
	tcheckIncomplete(t, "a", err)
	_, _, err = parseSubdomain("a-") // A letter or digit may still arrive.
	tcheckIncomplete(t, "a-", err)

	_, _, err = parseSubdomain("-a")
	tcheckInvalid(t, "-a", err, 0)
	_, _, err = parseSubdomain("?a")
	tcheckInvalid(t, "?a", err, 0)
}

func TestDomain(t *testing.T) {
	parsed := func(s, expDomain, expRest string) {
		t.Helper()
		domain, rest, err := Domain(s)
		if err != nil {
			t.Fatalf("domain %q: unexpected error %v", s, err)
		}
		if domain != expDomain || rest != expRest {
			t.Fatalf("domain %q: got %q + %q, expected %q + %q", s, domain, rest, expDomain, expRest)
		}
	}

	parsed("a.b-c.d9\n", "a.b-c.d9", "\n")
	parsed("example.com>", "example.com", ">")
	parsed("a-.b", "a", "-.b") // Label cannot end in hyphen, the rest needs a new match.
	parsed("a.?", "a", ".?")   // The dot is not consumed without a label after it.
	parsed("a.b.>", "a.b", ".>")

	var err error
	_, _, err = Domain("")
	tcheckIncomplete(t, "", err)
	_, _, err = Domain("a")
	tcheckIncomplete(t, "a", err)
	_, _, err = Domain("a.b") // More label bytes or another dot may arrive.
	tcheckIncomplete(t, "a.b", err)
	_, _, err = Domain("a.")
	tcheckIncomplete(t, "a.", err)
	_, _, err = Domain("a.b.") // The trailing dot may be followed by another label.
	tcheckIncomplete(t, "a.b.", err)

	_, _, err = Domain("-a.b")
	tcheckInvalid(t, "-a.b", err, 0)
	_, _, err = Domain(".a")
	tcheckInvalid(t, ".a", err, 0)
}
