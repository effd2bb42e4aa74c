package smtpsyntax

import (
	"strconv"
)

// Base64 parses a run of base64 alphabet bytes with optional "=" or "=="
// padding, returning it as a substring of s. The run may be empty. Only the
// character set and the padding shape are checked here: length alignment and
// decodability are for the base64 decoder downstream.
func Base64(s string) (token, rest string, rerr error) {
	p := &parser{s: s}
	defer p.xrecover(&rerr)
	o := p.o
	p.takeWhile(isBase64)
	// Optional padding. "==" is preferred over "=" so both padding bytes end
	// up in this token, instead of one with a stray "=" left in the
	// remainder. A single "=" at the end of the buffer is incomplete: the
	// second "=" may still arrive.
	if p.cur() == '=' {
		if p.o+1 == len(p.s) {
			p.xincomplete()
		}
		if p.s[p.o+1] == '=' {
			p.o += 2
		} else {
			p.o++
		}
	}
	return p.s[o:p.o], p.rest(), nil
}

// Number parses one or more decimal digits at the start of s as a uint32.
// Leading zeros are accepted, the grammar does not forbid them. A value
// beyond uint32 is a syntax error, never wrapped or truncated.
func Number(s string) (v uint32, rest string, rerr error) {
	p := &parser{s: s}
	defer p.xrecover(&rerr)
	o := p.o
	digits := p.xtakeWhile1("digit", isdigit)
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		p.o = o
		p.xerrorf("number %q: %v", digits, err)
	}
	return uint32(n), p.rest(), nil
}
