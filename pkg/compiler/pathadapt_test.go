// pkg/compiler/pathadapt_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test per-dialect path adaptation

package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/portenv/pkg/compiler"
	"github.com/arthur-debert/portenv/pkg/dialect"
)

func TestAdaptPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		dialect dialect.Dialect
		want    string
	}{
		{
			name:    "cmd_identity",
			path:    `C:\foo`,
			dialect: dialect.Cmd,
			want:    `C:\foo`,
		},
		{
			name:    "powershell_identity",
			path:    `C:\foo`,
			dialect: dialect.PowerShell,
			want:    `C:\foo`,
		},
		{
			name:    "posix_wraps_in_cygpath",
			path:    `C:\foo`,
			dialect: dialect.Posix,
			want:    "`cygpath -p  \"C:\\foo\"`",
		},
		{
			name:    "posix_escapes_dollar",
			path:    `C:\foo$bar`,
			dialect: dialect.Posix,
			want:    "`cygpath -p  \"C:\\foo\\$bar\"`",
		},
		{
			name:    "empty_path",
			path:    "",
			dialect: dialect.Posix,
			want:    "`cygpath -p  \"\"`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compiler.AdaptPath(tt.path, tt.dialect))
		})
	}
}
