// Package redact implements the redaction engine: it rewrites a single
// source file so that every region marked private by compose directives is
// hidden or replaced with a placeholder.
package redact

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/skeletool/compose/internal/directive"
)

const (
	hintLine = "// TODO: your code here."
	trapLine = "unimplemented!()"
)

// located is a directive together with its 0-based line index.
type located struct {
	line int
	dir  *directive.Directive
}

// ProcessSource rewrites one source file, hiding or replacing every private
// region. A file with no directives passes through unchanged. Errors report
// 1-based line numbers.
func ProcessSource(src string) (string, error) {
	lines := splitLines(src)
	var dst strings.Builder

	cursor := 0
	for {
		loc, err := nextDirective(lines, cursor)
		if err != nil {
			return "", err
		}
		if loc == nil {
			break
		}
		begin := loc.line

		var end int
		switch loc.dir.Kind {
		case directive.EndPrivate:
			return "", fmt.Errorf("unpaired 'end_private' on line %d", begin+1)
		case directive.Private:
			end = begin + 1
		case directive.BeginPrivate:
			end, err = closeBlock(lines, begin)
			if err != nil {
				return "", err
			}
		}

		for _, l := range lines[cursor:begin] {
			dst.WriteString(l)
			dst.WriteByte('\n')
		}

		if loc.dir.Has(directive.NoHint) {
			// A hidden block framed by blank lines would leave a double
			// blank behind; absorb the trailing one.
			if begin > 0 && isBlank(lines[begin-1]) && end < len(lines) && isBlank(lines[end]) {
				cursor = end + 1
			} else {
				cursor = end
			}
		} else {
			indent := leadingWhitespace(lines[begin])
			dst.WriteString(indent)
			dst.WriteString(hintLine)
			dst.WriteByte('\n')
			if loc.dir.Has(directive.Unimplemented) {
				dst.WriteString(indent)
				dst.WriteString(trapLine)
				dst.WriteByte('\n')
			}
			cursor = end
		}
	}

	for _, l := range lines[cursor:] {
		dst.WriteString(l)
		dst.WriteByte('\n')
	}
	return dst.String(), nil
}

// nextDirective returns the first directive at or after start, or nil when
// no directive remains.
func nextDirective(lines []string, start int) (*located, error) {
	for i := start; i < len(lines); i++ {
		d, err := directive.Parse(lines[i])
		if err != nil {
			return nil, fmt.Errorf("failed to parse directive on line %d: %w", i+1, err)
		}
		if d != nil {
			return &located{line: i, dir: d}, nil
		}
	}
	return nil, nil
}

// closeBlock scans past an opening begin_private on line begin and returns
// the exclusive end of its region. Interior private directives are inert;
// another begin_private is a hard failure, nesting is not supported.
func closeBlock(lines []string, begin int) (int, error) {
	pos := begin + 1
	for {
		loc, err := nextDirective(lines, pos)
		if err != nil {
			return 0, err
		}
		if loc == nil {
			return 0, fmt.Errorf("unclosed 'begin_private' on line %d", begin+1)
		}
		switch loc.dir.Kind {
		case directive.BeginPrivate:
			return 0, fmt.Errorf("nested 'begin_private' on line %d", loc.line+1)
		case directive.Private:
			pos = loc.line + 1
		case directive.EndPrivate:
			return loc.line + 1, nil
		}
	}
}

// splitLines breaks src into lines without terminators. A trailing newline
// does not produce an empty final line; CR before LF is stripped.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	lines := strings.Split(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func leadingWhitespace(s string) string {
	for i, r := range s {
		if !unicode.IsSpace(r) {
			return s[:i]
		}
	}
	return s
}
