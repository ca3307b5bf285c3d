// Package compiler turns profile entries into dialect-correct script
// text. All functions are pure: they take immutable inputs and return
// fresh strings, so compilations for different (profile, dialect) pairs
// never interfere.
package compiler

import (
	"strings"

	"github.com/arthur-debert/portenv/pkg/dialect"
	"github.com/arthur-debert/portenv/pkg/errors"
)

// RewritePlaceholders translates %NAME% placeholders embedded in value
// into the native variable-reference syntax of the given dialect. Cmd
// already uses this syntax natively, so the value passes through
// untouched. A doubled %% denotes a single literal percent sign. A
// trailing unclosed % is accepted as a literal percent; any other
// unterminated placeholder fails with ErrMalformedPlaceholder.
func RewritePlaceholders(value string, d dialect.Dialect) (string, error) {
	if d == dialect.Cmd {
		return value, nil
	}

	var out strings.Builder
	inName := true
	for _, segment := range strings.Split(value, "%") {
		inName = !inName
		if !inName {
			out.WriteString(segment)
			continue
		}
		if segment == "" {
			out.WriteByte('%')
		} else {
			out.WriteString(d.Ref(segment))
		}
	}

	if inName && !strings.HasSuffix(value, "%") {
		return "", errors.Newf(errors.ErrMalformedPlaceholder, "unterminated %% placeholder in %q", value)
	}
	return out.String(), nil
}
