package smtpsyntax

import (
	"strings"
)

// EscapeQuoted returns the wire representation of quoted-string content:
// every backslash is doubled, then every dquote gets a leading backslash.
// Backslashes go first, the other order would also double the backslash just
// added for a dquote. The input is returned unchanged, without allocating,
// when it contains nothing to escape.
func EscapeQuoted(text string) string {
	if strings.Contains(text, `\`) {
		text = strings.ReplaceAll(text, `\`, `\\`)
	}
	if strings.Contains(text, `"`) {
		text = strings.ReplaceAll(text, `"`, `\"`)
	}
	return text
}

// UnescapeQuoted decodes quoted-pairs in raw quoted-string content, the
// inverse of EscapeQuoted: `\\` becomes `\` and `\"` becomes `"`. Backslash
// pairs are resolved before quote pairs, so `\\` followed by `\"` is an
// escaped backslash and a separate escaped dquote, not misgrouped around the
// middle backslash. The input is returned unchanged, without allocating, when
// it contains no escapes.
func UnescapeQuoted(raw string) string {
	if strings.Contains(raw, `\\`) {
		raw = strings.ReplaceAll(raw, `\\`, `\`)
	}
	if strings.Contains(raw, `\"`) {
		raw = strings.ReplaceAll(raw, `\"`, `"`)
	}
	return raw
}
