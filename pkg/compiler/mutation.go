package compiler

import (
	"github.com/arthur-debert/portenv/pkg/dialect"
	"github.com/arthur-debert/portenv/pkg/errors"
	"github.com/arthur-debert/portenv/pkg/types"
)

// CompileMutationValue produces the right-hand side of the assignment
// implementing one mutation under the given dialect. Placeholders in the
// raw value are rewritten first; path-kind values are then adapted for
// the target shell.
func CompileMutationValue(name, rawValue string, kind types.MutationKind, d dialect.Dialect) (string, error) {
	value, err := RewritePlaceholders(rawValue, d)
	if err != nil {
		return "", err
	}

	switch kind {
	case types.PrependPath:
		return AdaptPath(value, d) + d.Separator() + d.Ref(name), nil
	case types.AppendPath:
		return d.Ref(name) + d.Separator() + AdaptPath(value, d), nil
	case types.Set:
		// single quotes keep the POSIX shell from word-splitting or
		// glob-expanding the value
		if d == dialect.Posix {
			return "'" + value + "'", nil
		}
		return value, nil
	case types.ResolvePath:
		return AdaptPath(value, d), nil
	default:
		return "", errors.Newf(errors.ErrUnknownMutationKind, "unknown mutation kind %q", kind)
	}
}

// CompileMutationLine wraps the compiled value in the dialect's full
// assignment statement, line terminator included
func CompileMutationLine(name, rawValue string, kind types.MutationKind, d dialect.Dialect) (string, error) {
	value, err := CompileMutationValue(name, rawValue, kind, d)
	if err != nil {
		return "", err
	}
	return d.Assign(name, value), nil
}
