package mutagens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/vifmap/internal/model"
)

func TestFindScopes_Nested(t *testing.T) {
	code := readFixture(t, "scopes")

	candidates := FindScopes(code)
	require.Len(t, candidates, 2)

	inner := spanText(code, candidates[0].Spans[0])
	outer := spanText(code, candidates[1].Spans[0])

	assert.Equal(t, `\scoped[red]{\fill (0,0) circle (1pt);}`, inner)
	assert.True(t, strings.HasPrefix(outer, `\begin{scope}[shift={(1,0)}]`))
	assert.True(t, strings.HasSuffix(outer, `\end{scope}`))
	assert.Contains(t, outer, inner)

	for _, c := range candidates {
		assert.Equal(t, m.StrategyScope, c.Strategy)
	}
}

func TestFindScopes_Malformed(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			name: "no scopes",
			code: `\draw (0,0) -- (1,1);`,
		},
		{
			name: "unclosed scope",
			code: `\scoped{\draw (0,0) -- (1,1);`,
		},
		{
			name: "stray close before scope",
			code: `\scoped{a}}\end{scope}\scoped{b}`,
			want: []string{`\scoped{a}`, `\scoped{b}`},
		},
		{
			name: "mismatched close stops the scan",
			code: `\scoped{x}\begin{scope}{\end{scope}\scoped{y}`,
			want: []string{`\scoped{x}`},
		},
		{
			name: "escaped braces and comments",
			code: "\\scoped{\\node {\\}};% }\n}",
			want: []string{"\\scoped{\\node {\\}};% }\n}"},
		},
		{
			name: "commented scope never pairs with a real brace",
			code: "\\tikz{\n% was: \\scoped{\n\\draw (0,0) -- (1,1);\n}\n",
		},
		{
			name: "commented scope before a real one",
			code: "% \\begin{scope}\n\\scoped{a}\n",
			want: []string{`\scoped{a}`},
		},
		{
			name: "scoped-like command",
			code: `\scopedx{a}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, c := range FindScopes(tt.code) {
				got = append(got, spanText(tt.code, c.Spans[0]))
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
