package compiler

import (
	"strings"

	"github.com/arthur-debert/portenv/pkg/dialect"
)

// AdaptPath converts a filesystem path literal into a form the target
// shell's runtime can consume. Cmd and PowerShell take the path as-is.
// The POSIX dialect wraps it in a cygpath command substitution so the
// translation happens when the script runs; literal $ characters are
// escaped first so the shell does not expand them before cygpath sees
// the path.
func AdaptPath(path string, d dialect.Dialect) string {
	if d != dialect.Posix {
		return path
	}
	escaped := strings.ReplaceAll(path, "$", `\$`)
	return "`cygpath -p  \"" + escaped + "\"`"
}
