package mutagens

import (
	"strings"

	m "github.com/mouse-blink/vifmap/internal/model"
)

const ignoreDirective = "vifmap:ignore"

// ignoredLines returns the start offsets of lines carrying a "% vifmap:ignore" comment.
func ignoredLines(code string) map[int]struct{} {
	ignored := make(map[int]struct{})
	offset := 0

	for _, line := range strings.Split(code, "\n") {
		if isIgnoreLine(line) {
			ignored[offset] = struct{}{}
		}

		offset += len(line) + 1
	}

	return ignored
}

func isIgnoreLine(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != '%' || (i > 0 && line[i-1] == '\\') {
			continue
		}

		comment := strings.TrimSpace(line[i+1:])

		return strings.HasPrefix(comment, ignoreDirective)
	}

	return false
}

// FilterIgnored drops candidates with a span starting on an ignored line.
func FilterIgnored(code string, candidates []m.Candidate) []m.Candidate {
	ignored := ignoredLines(code)
	if len(ignored) == 0 {
		return candidates
	}

	kept := candidates[:0:0]

	for _, c := range candidates {
		if !startsOnIgnoredLine(code, c, ignored) {
			kept = append(kept, c)
		}
	}

	return kept
}

func startsOnIgnoredLine(code string, c m.Candidate, ignored map[int]struct{}) bool {
	for _, s := range c.Spans {
		lineStart := strings.LastIndexByte(code[:s.Start], '\n') + 1
		if _, ok := ignored[lineStart]; ok {
			return true
		}
	}

	return false
}
