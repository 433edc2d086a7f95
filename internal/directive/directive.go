// Package directive recognizes and decodes compose directives embedded in
// source comments. A directive has the shape
//
//	// ... compose::<keyword>[(<prop>[,<prop>...])]
//
// with keywords private, begin_private and end_private and properties
// no_hint and unimplemented.
package directive

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Kind identifies the directive keyword.
type Kind int

const (
	// Private hides the directive's own line.
	Private Kind = iota
	// BeginPrivate opens a multi-line private block.
	BeginPrivate
	// EndPrivate closes a block opened by BeginPrivate.
	EndPrivate
)

// Property adjusts how a private region is rendered in the output.
type Property int

const (
	// NoHint suppresses the placeholder comment for the region.
	NoHint Property = iota
	// Unimplemented adds a runtime trap below the placeholder.
	Unimplemented
)

const (
	commentMarker = "//"
	controlPrefix = "compose::"
)

// Directive is one decoded compose instruction. It is produced by Parse and
// consumed immediately during region resolution, never stored.
type Directive struct {
	Kind       Kind
	Properties []Property
}

// Has reports whether p is among the directive's properties.
func (d *Directive) Has(p Property) bool {
	for _, q := range d.Properties {
		if q == p {
			return true
		}
	}
	return false
}

// Parse decodes the directive embedded in a single source line. Lines
// without a comment marker, or without the control prefix after it, carry
// no directive and yield (nil, nil). A control prefix followed by anything
// other than a recognized keyword, or a malformed property list, is an
// error.
func Parse(line string) (*Directive, error) {
	pos := strings.Index(line, commentMarker)
	if pos < 0 {
		return nil, nil
	}
	comment := line[pos:]

	pos = strings.Index(comment, controlPrefix)
	if pos < 0 {
		return nil, nil
	}
	cmd := comment[pos+len(controlPrefix):]

	// Keywords are prefix-matched: trailing text before the property list
	// is consumed silently. Existing trees rely on this.
	var kind Kind
	switch {
	case strings.HasPrefix(cmd, "private"):
		kind = Private
	case strings.HasPrefix(cmd, "begin_private"):
		kind = BeginPrivate
	case strings.HasPrefix(cmd, "end_private"):
		kind = EndPrivate
	default:
		return nil, fmt.Errorf("unknown compose command: %s", cmd)
	}

	props, err := parseProperties(cmd)
	if err != nil {
		return nil, err
	}
	return &Directive{Kind: kind, Properties: props}, nil
}

// parseProperties decodes the optional parenthesized property list after
// the keyword. Absence of parentheses means an empty set.
func parseProperties(cmd string) ([]Property, error) {
	open := strings.Index(cmd, "(")
	if open < 0 {
		return nil, nil
	}
	trimmed := strings.TrimRightFunc(cmd, unicode.IsSpace)
	if !strings.HasSuffix(trimmed, ")") {
		return nil, errors.New("unclosed '('")
	}
	inner := trimmed[open+1 : len(trimmed)-1]
	if inner == "" {
		return nil, nil
	}

	var props []Property
	for _, tok := range strings.Split(inner, ",") {
		switch tok {
		case "no_hint":
			props = append(props, NoHint)
		case "unimplemented":
			props = append(props, Unimplemented)
		default:
			return nil, fmt.Errorf("unknown property: %s", tok)
		}
	}
	return props, nil
}
