// Package dns canonicalizes domain names lexed from SMTP commands and mail
// addresses, for comparisons and for DNS lookups: internationalized (IDNA)
// names get both an ASCII and a unicode representation.
package dns

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"

	"github.com/mjl-/smtpsyntax"
)

var errTrailingDot = errors.New("dns name has trailing dot")

// Domain is a domain name with one or more labels, always with an ASCII
// representation, and for IDNA domains also a unicode representation. The
// ASCII form is the one to use for DNS lookups.
type Domain struct {
	// Name with A-labels (xn--...) or plain NR-LDH (non-reserved
	// letters/digits/hyphens) labels. Always lower case.
	ASCII string

	// Name with U-labels. Empty for ASCII-only domains.
	Unicode string
}

// Name returns the unicode name if set, otherwise the ASCII name.
func (d Domain) Name() string {
	if d.Unicode != "" {
		return d.Unicode
	}
	return d.ASCII
}

// XName is like Name, but only returns the unicode name when utf8 is true.
func (d Domain) XName(utf8 bool) string {
	if utf8 && d.Unicode != "" {
		return d.Unicode
	}
	return d.ASCII
}

// String returns a human-readable string.
// For IDNA names the string contains both the unicode and the ASCII name.
func (d Domain) String() string {
	return d.LogString()
}

// LogString returns a domain for logging.
// For IDNA names the string contains both the unicode and the ASCII name.
func (d Domain) LogString() string {
	if d.Unicode == "" {
		return d.ASCII
	}
	return d.Unicode + "/" + d.ASCII
}

// IsZero returns whether this is an empty Domain.
func (d Domain) IsZero() bool {
	return d == Domain{}
}

// ParseDomain parses a domain name consisting of ASCII-only labels or
// unicode (U-label) labels. Names are IDNA-canonicalized and lower-cased.
// Unicode characters can be mapped to equivalents, e.g. "ⓡ" to "r", so only
// compare parsed domains, never raw strings.
func ParseDomain(s string) (Domain, error) {
	if strings.HasSuffix(s, ".") {
		return Domain{}, errTrailingDot
	}
	ascii, err := idna.Lookup.ToASCII(s)
	if err != nil {
		return Domain{}, fmt.Errorf("to ascii: %w", err)
	}
	unicode, err := idna.Lookup.ToUnicode(s)
	if err != nil {
		return Domain{}, fmt.Errorf("to unicode: %w", err)
	}
	if ascii == unicode {
		return Domain{ascii, ""}, nil
	}
	return Domain{ascii, unicode}, nil
}

// ParseDomainToken lexes a domain token at the start of buf with
// smtpsyntax.Domain and canonicalizes it, returning the canonical domain and
// the unconsumed remainder of buf. Errors from the lexer pass through
// unchanged, so callers can distinguish a buffer that needs more bytes
// (smtpsyntax.ErrIncomplete) from a malformed one (smtpsyntax.SyntaxError).
func ParseDomainToken(buf string) (Domain, string, error) {
	token, rest, err := smtpsyntax.Domain(buf)
	if err != nil {
		return Domain{}, "", err
	}
	d, err := ParseDomain(token)
	if err != nil {
		return Domain{}, "", fmt.Errorf("canonicalizing %q: %w", token, err)
	}
	return d, rest, nil
}
