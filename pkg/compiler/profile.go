package compiler

import (
	"strings"

	"github.com/arthur-debert/portenv/pkg/dialect"
	"github.com/arthur-debert/portenv/pkg/errors"
	"github.com/arthur-debert/portenv/pkg/types"
)

// CompileProfile compiles a profile's ordered entries into the full
// script body for one dialect. The first line is always the
// generated-file marker comment; entries follow in configuration order
// with no reordering or deduplication. Includes are emitted as a
// same-dialect source of the referenced profile's sibling script,
// by file name only, since generated scripts live alongside each other
// in the dialect's output directory.
func CompileProfile(profileName string, entries types.Profile, d dialect.Dialect) (string, error) {
	var out strings.Builder
	out.WriteString(d.MarkerComment())

	for _, entry := range entries {
		switch rec := entry.(type) {
		case types.MutationRecord:
			line, err := CompileMutationLine(rec.Name, rec.Value, rec.Kind, d)
			if err != nil {
				return "", errors.Wrapf(err, errors.GetErrorCode(err),
					"profile %s, variable %s, dialect %s", profileName, rec.Name, d)
			}
			out.WriteString(line)
		case types.IncludeRecord:
			out.WriteString(d.Source(d.ScriptFileName(rec.Profile)))
		default:
			return "", errors.Newf(errors.ErrInternal,
				"profile %s contains an entry of unexpected type %T", profileName, entry)
		}
	}

	return out.String(), nil
}
