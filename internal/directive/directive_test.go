package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  *Directive
		isErr bool
	}{
		{
			name: "no comment marker",
			line: "let x = 1;",
			want: nil,
		},
		{
			name: "comment without control prefix",
			line: "// just a comment",
			want: nil,
		},
		{
			name: "control prefix before comment marker does not count",
			line: "compose::private no comment here",
			want: nil,
		},
		{
			name: "bare private",
			line: "// compose::private",
			want: &Directive{Kind: Private},
		},
		{
			name: "private after code",
			line: "    let secret = 42; // compose::private",
			want: &Directive{Kind: Private},
		},
		{
			name: "begin_private",
			line: "// compose::begin_private",
			want: &Directive{Kind: BeginPrivate},
		},
		{
			name: "end_private",
			line: "// compose::end_private",
			want: &Directive{Kind: EndPrivate},
		},
		{
			name: "single property",
			line: "// compose::private(no_hint)",
			want: &Directive{Kind: Private, Properties: []Property{NoHint}},
		},
		{
			name: "two properties",
			line: "// compose::begin_private(no_hint,unimplemented)",
			want: &Directive{Kind: BeginPrivate, Properties: []Property{NoHint, Unimplemented}},
		},
		{
			name: "empty property list",
			line: "// compose::private()",
			want: &Directive{Kind: Private},
		},
		{
			name: "trailing whitespace after list",
			line: "// compose::private(unimplemented)   ",
			want: &Directive{Kind: Private, Properties: []Property{Unimplemented}},
		},
		{
			name: "keyword is prefix matched, leftover text consumed",
			line: "// compose::private_impl",
			want: &Directive{Kind: Private},
		},
		{
			name:  "unknown command",
			line:  "// compose::frobnicate",
			isErr: true,
		},
		{
			name:  "unknown property",
			line:  "// compose::private(invisible)",
			isErr: true,
		},
		{
			name:  "space inside property list",
			line:  "// compose::private(no_hint, unimplemented)",
			isErr: true,
		},
		{
			name:  "unclosed parenthesis",
			line:  "// compose::private(no_hint",
			isErr: true,
		},
		{
			name:  "text after closing parenthesis",
			line:  "// compose::private(no_hint) trailing",
			isErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if tt.isErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectiveHas(t *testing.T) {
	d := &Directive{Kind: Private, Properties: []Property{NoHint}}
	assert.True(t, d.Has(NoHint))
	assert.False(t, d.Has(Unimplemented))
}
