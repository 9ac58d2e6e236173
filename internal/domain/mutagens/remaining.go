package mutagens

import (
	"strings"

	m "github.com/mouse-blink/vifmap/internal/model"
)

// FindRemaining proposes a deletion for every terminator in code, reaching back to
// the closest line that starts with a command. The terminator itself is kept. It is
// a coarse line-level pass that covers statements the structural scan has no rule
// for. Clip statements and terminators with no command line before them are skipped.
func FindRemaining(code string) []m.Candidate {
	var candidates []m.Candidate

	for p := 0; p < len(code); p++ {
		if code[p] != ';' || inComment(code, p) {
			continue
		}

		start := strings.LastIndex(code[:p], "\n\\")
		switch {
		case start >= 0:
			start++
		case strings.HasPrefix(code, `\`):
			start = 0
		default:
			continue
		}

		if strings.HasPrefix(code[start:], `\clip`) {
			continue
		}

		candidates = append(candidates, m.Candidate{
			Spans:    []m.Span{{Start: start, End: p}},
			Strategy: m.StrategyRemaining,
		})
	}

	return FilterIgnored(code, candidates)
}
