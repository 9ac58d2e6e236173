// Package mutagens scans TikZ/LaTeX code for regions that can be deleted as a unit.
package mutagens

import (
	"fmt"
	"sort"
	"strings"

	m "github.com/mouse-blink/vifmap/internal/model"
)

// Normalize trims every line and joins them with "\n". All span offsets refer to this form.
func Normalize(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}

// RemoveSpans deletes spans from code in descending start order so that earlier
// offsets stay valid.
func RemoveSpans(code string, spans []m.Span) (string, error) {
	sorted := make([]m.Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	for i, s := range sorted {
		if !s.Valid(len(code)) {
			return "", fmt.Errorf("%w: %s outside code of length %d", m.ErrInvalidSpan, s, len(code))
		}

		if i > 0 && s.Overlaps(sorted[i-1]) {
			return "", fmt.Errorf("%w: %s overlaps %s", m.ErrInvalidSpan, s, sorted[i-1])
		}
	}

	mutated := code
	for _, s := range sorted {
		mutated = replaceRange(mutated, s.Start, s.End, "")
	}

	return mutated, nil
}

func replaceRange(content string, start, end int, replacement string) string {
	if start < 0 || end < start || end > len(content) {
		return content
	}

	var b strings.Builder

	b.Grow(len(content) - (end - start) + len(replacement))
	b.WriteString(content[:start])
	b.WriteString(replacement)
	b.WriteString(content[end:])

	return b.String()
}

// mergeSpans sorts spans by start and merges the ones that overlap, so a candidate
// never deletes the same character twice.
func mergeSpans(spans []m.Span) []m.Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]m.Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End < sorted[j].End
		}

		return sorted[i].Start < sorted[j].Start
	})

	merged := []m.Span{sorted[0]}
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if s.Start < last.End {
			if s.End > last.End {
				last.End = s.End
			}

			continue
		}

		merged = append(merged, s)
	}

	return merged
}

// inComment reports whether pos sits after an unescaped % on its line.
func inComment(code string, pos int) bool {
	lineStart := strings.LastIndexByte(code[:pos], '\n') + 1
	for i := lineStart; i < pos; i++ {
		if code[i] == '%' && (i == 0 || code[i-1] != '\\') {
			return true
		}
	}

	return false
}

// statementEnd returns the offset just past the first terminator at or after start
// that is not inside a comment, or -1.
func statementEnd(code string, start int) int {
	for i := start; i < len(code); i++ {
		if code[i] == ';' && !inComment(code, i) {
			return i + 1
		}
	}

	return -1
}

// Scan returns every structural candidate of code: definition chains, standalone
// statements and scopes, minus the ones on lines marked with an ignore directive.
func Scan(code string) []m.Candidate {
	var candidates []m.Candidate

	candidates = append(candidates, FindDefinitionChains(code)...)
	candidates = append(candidates, FindStatements(code)...)
	candidates = append(candidates, FindScopes(code)...)

	return FilterIgnored(code, candidates)
}
