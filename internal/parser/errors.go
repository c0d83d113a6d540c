package parser

import (
	"fmt"
	"strings"

	"github.com/kiidax/nablajs/internal/lexer"
)

// SyntaxError reports a parse failure with source context, in the
// teacher's caret-pointing CompilerError style (internal/errors in the
// teacher repo), repointed at spec §7's SyntaxError category.
type SyntaxError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source line and a caret under the
// offending column. When color is true, ANSI codes highlight the caret.
func (e *SyntaxError) Format(color bool) string {
	var sb strings.Builder
	if e.File != "" {
		fmt.Fprintf(&sb, "SyntaxError in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "SyntaxError at %d:%d\n", e.Pos.Line, e.Pos.Column)
	}
	lines := strings.Split(e.Source, "\n")
	if e.Pos.Line >= 1 && e.Pos.Line <= len(lines) {
		line := lines[e.Pos.Line-1]
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(e.Message)
	return sb.String()
}
