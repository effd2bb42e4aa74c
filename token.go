package smtpsyntax

// AtomOrQuoted is a parsed String token: either a bare atom or the decoded
// content of a quoted-string. The distinction is kept so Pack can restore the
// wire form, re-quoting and re-escaping instead of degrading to an atom.
type AtomOrQuoted struct {
	Text   string
	Quoted bool // Whether Text came from a quoted-string.
}

// Pack returns the token in wire form: atoms as-is, quoted content escaped
// and surrounded by dquotes.
func (aq AtomOrQuoted) Pack() string {
	if aq.Quoted {
		return `"` + EscapeQuoted(aq.Text) + `"`
	}
	return aq.Text
}

// Atom parses the longest run of one or more atext bytes at the start of s.
//
//	Atom = 1*atext
func Atom(s string) (atom, rest string, rerr error) {
	p := &parser{s: s}
	defer p.xrecover(&rerr)
	a := p.xatom()
	return a, p.rest(), nil
}

func (p *parser) xatom() string {
	return p.xtakeWhile1("atext", isAtext)
}

// String parses an atom or a quoted-string. A quoted-string starts with a
// dquote, which is not an atext byte, so the two alternatives never overlap:
// the first byte of the buffer decides.
//
//	String = Atom / Quoted-string
func String(s string) (aq AtomOrQuoted, rest string, rerr error) {
	p := &parser{s: s}
	defer p.xrecover(&rerr)
	if p.empty() {
		p.xincomplete()
	}
	if p.cur() == '"' {
		content := p.xquotedString()
		return AtomOrQuoted{content, true}, p.rest(), nil
	}
	if !isAtext(p.cur()) {
		p.xerrorf("expected atom or quoted-string, got %q", p.cur())
	}
	atom := p.xatom()
	return AtomOrQuoted{atom, false}, p.rest(), nil
}

// QuotedString parses a dquote-delimited string and returns its content with
// quoted-pairs decoded. Only `\\` and `\"` are accepted as quoted-pairs, see
// UnescapeQuoted. The content may be empty. When no quoted-pair occurred, the
// returned content is a substring of s.
//
//	Quoted-string   = DQUOTE *QcontentSMTP DQUOTE
//	QcontentSMTP    = qtextSMTP / quoted-pairSMTP
//	quoted-pairSMTP = %d92 ("\" / DQUOTE)
func QuotedString(s string) (content, rest string, rerr error) {
	p := &parser{s: s}
	defer p.xrecover(&rerr)
	c := p.xquotedString()
	return c, p.rest(), nil
}

func (p *parser) xquotedString() string {
	p.xtake1("dquote", func(c byte) bool { return c == '"' })
	o := p.o
	for {
		if p.empty() {
			// More content, the rest of a quoted-pair, or the closing dquote
			// may still arrive.
			p.xincomplete()
		}
		c := p.cur()
		if isQtext(c) {
			p.o++
			continue
		}
		// The grammar comment in RFC 5321 allows %d32-126 after the backslash.
		// We accept only "\" and dquote: how e.g. `\a` should be interpreted
		// is unresolved. Anything else fails below, since the byte after the
		// content must then be the closing dquote.
		if c == '\\' {
			if p.o+1 == len(p.s) {
				p.xincomplete()
			}
			if c2 := p.s[p.o+1]; c2 == '\\' || c2 == '"' {
				p.o += 2
				continue
			}
		}
		break
	}
	raw := p.s[o:p.o]
	if p.cur() != '"' {
		p.xerrorf("expected quoted-string content or dquote, got %q", p.cur())
	}
	p.o++
	return UnescapeQuoted(raw)
}
