// Package dialect defines the target shell dialects portenv emits
// activation scripts for. Each dialect is described by a small table of
// syntactic parameters (comment prefix, line terminator, list separator,
// variable-reference and assignment formats, output naming); all
// per-dialect behavior elsewhere in the codebase is keyed off this table.
package dialect

import "fmt"

// Dialect identifies one target shell syntax
type Dialect string

const (
	// Cmd is the Windows batch dialect
	Cmd Dialect = "cmd"

	// Posix is the POSIX shell dialect (bash and compatibles)
	Posix Dialect = "bash"

	// PowerShell is the Windows PowerShell dialect
	PowerShell Dialect = "ps"
)

// GeneratedMarker tags generated scripts so the pre-generation cleanup
// pass can tell them apart from hand-authored files
const GeneratedMarker = "auto-generated by portenv"

// ScriptPrefix is the file-name prefix shared by all generated scripts
const ScriptPrefix = "env_"

type descriptor struct {
	commentPrefix string
	terminator    string
	separator     string
	subdir        string
	extension     string
	refFormat     string
	assignFormat  string
	sourceFormat  string
}

var descriptors = map[Dialect]descriptor{
	Cmd: {
		commentPrefix: "::",
		terminator:    "\r\n",
		separator:     ";",
		subdir:        "cmd",
		extension:     ".bat",
		refFormat:     "%%%s%%",
		assignFormat:  "set %s=%s",
		sourceFormat:  `call %%~dp0\%s`,
	},
	Posix: {
		commentPrefix: "#",
		terminator:    "\n",
		separator:     ":",
		subdir:        "bash",
		extension:     ".sh",
		refFormat:     "${%s}",
		assignFormat:  "export %s=%s",
		sourceFormat:  "source %s",
	},
	PowerShell: {
		commentPrefix: "#",
		terminator:    "\r\n",
		separator:     ";",
		subdir:        "ps",
		extension:     ".ps1",
		refFormat:     "${env:%s}",
		assignFormat:  `$env:%s="%s"`,
		sourceFormat:  ". %s",
	},
}

// All returns every supported dialect in emission order
func All() []Dialect {
	return []Dialect{Cmd, Posix, PowerShell}
}

func (d Dialect) desc() descriptor {
	return descriptors[d]
}

// String implements fmt.Stringer
func (d Dialect) String() string {
	return string(d)
}

// Separator returns the dialect's path-list separator
func (d Dialect) Separator() string {
	return d.desc().separator
}

// Terminator returns the dialect's line terminator
func (d Dialect) Terminator() string {
	return d.desc().terminator
}

// Subdir returns the output subdirectory name for the dialect
func (d Dialect) Subdir() string {
	return d.desc().subdir
}

// Extension returns the script file extension, dot included
func (d Dialect) Extension() string {
	return d.desc().extension
}

// Ref renders a native reference to the current value of a variable
func (d Dialect) Ref(name string) string {
	return fmt.Sprintf(d.desc().refFormat, name)
}

// Assign renders a full assignment statement, terminator included
func (d Dialect) Assign(name, value string) string {
	return fmt.Sprintf(d.desc().assignFormat, name, value) + d.desc().terminator
}

// Source renders an include of a sibling script, terminator included.
// The file name is used as given; generated includes are always relative
// to the output directory.
func (d Dialect) Source(fileName string) string {
	return fmt.Sprintf(d.desc().sourceFormat, fileName) + d.desc().terminator
}

// Comment renders a dialect-native comment line, terminator included
func (d Dialect) Comment(text string) string {
	return d.desc().commentPrefix + " " + text + d.desc().terminator
}

// MarkerComment renders the comment line every generated script starts with
func (d Dialect) MarkerComment() string {
	return d.Comment(GeneratedMarker + " - do not edit")
}

// ScriptFileName returns the output file name for a profile's script
func (d Dialect) ScriptFileName(profileName string) string {
	return ScriptPrefix + profileName + d.desc().extension
}
