package smtpsyntax

// Domain parses a dot-separated sequence of one or more labels at the start
// of s, returning it as a substring of s.
//
//	Domain     = sub-domain *("." sub-domain)
//	sub-domain = Let-dig [Ldh-str]
func Domain(s string) (domain, rest string, rerr error) {
	p := &parser{s: s}
	defer p.xrecover(&rerr)
	d := p.xdomain()
	return d, p.rest(), nil
}

func (p *parser) xdomain() string {
	o := p.o
	p.xsubdomain()
	for !p.empty() && p.cur() == '.' {
		// A dot continues the domain only when a new label starts after it.
		// Otherwise it is left unconsumed for the caller.
		if p.o+1 == len(p.s) {
			p.xincomplete()
		}
		if !isalphadigit(p.s[p.o+1]) {
			break
		}
		p.o++
		p.xsubdomain()
	}
	return p.s[o:p.o]
}

// A label starts with a letter or digit. After that, letters and digits are
// consumed one at a time, and a hyphen only together with a following letter
// or digit. A hyphen not followed by one is left unconsumed, so a label can
// never end in a hyphen.
//
//	Ldh-str = *( ALPHA / DIGIT / ("-" Let-dig) )
func (p *parser) xsubdomain() string {
	o := p.o
	p.xtake1("label letter or digit", isalphadigit)
	for {
		if p.empty() {
			// More label bytes may still arrive.
			p.xincomplete()
		}
		c := p.cur()
		if isalphadigit(c) {
			p.o++
			continue
		}
		if c == '-' {
			if p.o+1 == len(p.s) {
				p.xincomplete()
			}
			if isalphadigit(p.s[p.o+1]) {
				p.o += 2
				continue
			}
		}
		break
	}
	return p.s[o:p.o]
}
