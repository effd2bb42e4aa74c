package smtpsyntax

import (
	"errors"
	"testing"
)

func tcheckIncomplete(t *testing.T, s string, err error) {
	t.Helper()
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("parse %q: got %v, expected ErrIncomplete", s, err)
	}
}

func tcheckInvalid(t *testing.T, s string, err error, offset int) {
	t.Helper()
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("parse %q: got %v, expected a SyntaxError", s, err)
	}
	if serr.Offset != offset {
		t.Fatalf("parse %q: syntax error at offset %d, expected offset %d (%v)", s, serr.Offset, offset, serr)
	}
}
