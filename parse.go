// Package smtpsyntax implements the lexical grammar shared by SMTP commands,
// responses and mail addresses: atoms, quoted strings, domain names, base64
// tokens and decimal numbers, as defined in RFC 5321 section 4.1.2.
//
// The parse functions are pure and synchronous. Input may arrive
// incrementally, e.g. in chunks from a network connection, so each function
// distinguishes a buffer that cannot be decided yet (ErrIncomplete) from one
// that can never match (SyntaxError). On ErrIncomplete, the caller appends
// newly received bytes to its buffer and calls again from the same start
// position; reparsing the same prefix gives the same result. On success, the
// returned remainder is a suffix of the input string, and parsed tokens are
// substrings of it, so parsing does not copy. Quoted-string content is the
// exception: it is unescaped, allocating only when an escape sequence was
// actually present.
//
// The accepted alphabets are all subsets of ASCII, so any successfully parsed
// token is valid as a Go string.
package smtpsyntax

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned when the buffer is a valid prefix of a still
// possible match but does not yet contain enough bytes for a verdict, e.g. an
// unterminated quoted string, or an atom running into the end of the buffer
// where only a non-matching byte proves the token ended.
var ErrIncomplete = errors.New("incomplete input, need more bytes")

// SyntaxError is returned when the buffer can never match the grammar rule,
// regardless of what bytes may still arrive.
type SyntaxError struct {
	Offset int // Byte offset into the buffer of the offending position.
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at byte %d: %s", e.Offset, e.Msg)
}

// Parser is a cursor over an immutable input string. Methods prefixed with x
// panic on failure with a parseError, turned back into a plain error return
// by xrecover at each exported function.
type parser struct {
	s string
	o int // Offset into s.
}

type parseError struct{ err error }

func (p *parser) xrecover(rerr *error) {
	x := recover()
	if x == nil {
		return
	}
	e, ok := x.(parseError)
	if !ok {
		panic(x)
	}
	*rerr = e.err
}

func (p *parser) xerrorf(format string, args ...any) {
	panic(parseError{&SyntaxError{p.o, fmt.Sprintf(format, args...)}})
}

// xincomplete signals the buffer ended before the current rule could be
// decided.
func (p *parser) xincomplete() {
	panic(parseError{ErrIncomplete})
}

func (p *parser) empty() bool {
	return p.o == len(p.s)
}

func (p *parser) cur() byte {
	return p.s[p.o]
}

func (p *parser) rest() string {
	return p.s[p.o:]
}

// xtake1 consumes exactly one byte matching fn. An empty buffer is
// incomplete: the byte may still arrive.
func (p *parser) xtake1(what string, fn func(c byte) bool) byte {
	if p.empty() {
		p.xincomplete()
	}
	c := p.cur()
	if !fn(c) {
		p.xerrorf("expected %s, got %q", what, c)
	}
	p.o++
	return c
}

// xtakeWhile1 consumes the longest run of bytes matching fn, requiring at
// least one. A run that reaches the end of the buffer is incomplete, more
// matching bytes may still arrive.
func (p *parser) xtakeWhile1(what string, fn func(c byte) bool) string {
	o := p.o
	for !p.empty() && fn(p.cur()) {
		p.o++
	}
	if p.empty() {
		p.xincomplete()
	}
	if p.o == o {
		p.xerrorf("expected at least one %s byte, got %q", what, p.cur())
	}
	return p.s[o:p.o]
}

// takeWhile is like xtakeWhile1, but the run may be empty.
func (p *parser) takeWhile(fn func(c byte) bool) string {
	o := p.o
	for !p.empty() && fn(p.cur()) {
		p.o++
	}
	if p.empty() {
		p.xincomplete()
	}
	return p.s[o:p.o]
}

// Printable US-ASCII excluding specials, the alphabet for atoms.
//
//	atext = ALPHA / DIGIT / "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" /
//	        "-" / "/" / "=" / "?" / "^" / "_" / "`" / "{" / "|" / "}" / "~"
func isAtext(c byte) bool {
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return isalphadigit(c)
}

// Any printable ASCII or space except dquote and the backslash itself,
// allowed in a quoted string without escaping.
//
//	qtextSMTP = %d32-33 / %d35-91 / %d93-126
func isQtext(c byte) bool {
	return c >= 32 && c <= 126 && c != '"' && c != '\\'
}

func isalpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isdigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Let-dig from the domain grammar.
func isalphadigit(c byte) bool {
	return isalpha(c) || isdigit(c)
}

// Base64 alphabet, without the padding character.
func isBase64(c byte) bool {
	return isalphadigit(c) || c == '+' || c == '/'
}
