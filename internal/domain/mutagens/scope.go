package mutagens

import (
	"strings"

	m "github.com/mouse-blink/vifmap/internal/model"
)

const (
	beginScope = `\begin{scope}`
	endScope   = `\end{scope}`
	scopedCmd  = `\scoped`
)

type markerKind int

const (
	// markerBrace is a bare group. It only tracks nesting and is never deleted.
	markerBrace markerKind = iota
	markerScoped
	markerBeginScope
)

type marker struct {
	kind markerKind
	pos  int
}

// FindScopes proposes the deletion of every \begin{scope}…\end{scope} and
// \scoped{…} block, nested ones included. The scan keeps an explicit stack of
// open markers. A close with nothing open is ignored; a close that does not
// match the open marker ends the scan, keeping what was found before it.
func FindScopes(code string) []m.Candidate {
	first := firstScopeToken(code)
	if first < 0 {
		return nil
	}

	var (
		stack      []marker
		candidates []m.Candidate
	)

	emit := func(start, end int) {
		candidates = append(candidates, m.Candidate{
			Spans:    []m.Span{{Start: start, End: end}},
			Strategy: m.StrategyScope,
		})
	}

	i := first
	for i < len(code) {
		rest := code[i:]

		switch {
		case strings.HasPrefix(rest, `\{`), strings.HasPrefix(rest, `\}`), strings.HasPrefix(rest, `\%`):
			i += 2
		case rest[0] == '%':
			nl := strings.IndexByte(rest, '\n')
			if nl < 0 {
				return candidates
			}

			i += nl
		case strings.HasPrefix(rest, beginScope):
			stack = append(stack, marker{kind: markerBeginScope, pos: i})
			i += len(beginScope)
		case strings.HasPrefix(rest, endScope):
			if len(stack) == 0 {
				i += len(endScope)
				continue
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.kind != markerBeginScope {
				return candidates
			}

			i += len(endScope)
			emit(top.pos, i)
		case strings.HasPrefix(rest, scopedCmd):
			n := scopedOpenLen(rest)
			if n == 0 {
				i += len(scopedCmd)
				continue
			}

			stack = append(stack, marker{kind: markerScoped, pos: i})
			i += n
		case rest[0] == '{':
			stack = append(stack, marker{kind: markerBrace, pos: i})
			i++
		case rest[0] == '}':
			i++

			if len(stack) == 0 {
				continue
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			switch top.kind {
			case markerBeginScope:
				return candidates
			case markerScoped:
				emit(top.pos, i)
			case markerBrace:
			}
		default:
			i++
		}
	}

	return candidates
}

// firstScopeToken returns the offset of the first scope opening outside a
// comment, or -1.
func firstScopeToken(code string) int {
	first := -1

	for _, token := range []string{beginScope, scopedCmd} {
		for from := 0; ; {
			idx := strings.Index(code[from:], token)
			if idx < 0 {
				break
			}

			idx += from
			if !inComment(code, idx) {
				if first < 0 || idx < first {
					first = idx
				}

				break
			}

			from = idx + len(token)
		}
	}

	return first
}

// scopedOpenLen returns the length of "\scoped[options]{" at the start of s, or 0
// when s is not a \scoped group opening.
func scopedOpenLen(s string) int {
	i := len(scopedCmd)
	if i < len(s) && isLetter(s[i]) {
		return 0
	}

	i = skipSpaces(s, i)

	if i < len(s) && s[i] == '[' {
		closing := strings.IndexByte(s[i:], ']')
		if closing < 0 {
			return 0
		}

		i = skipSpaces(s, i+closing+1)
	}

	if i < len(s) && s[i] == '{' {
		return i + 1
	}

	return 0
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}

	return i
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
