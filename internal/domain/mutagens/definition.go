package mutagens

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/vifmap/internal/model"
)

// definitionPatterns introduce a named coordinate; group 1 is the name.
var definitionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\\coordinate(?:\[[^\]]*\])?\s*\(([A-Za-z0-9_\-]+)\)`),
	regexp.MustCompile(`\\node(?:\[[^\]]*\])?\s*\(([A-Za-z0-9_\-]+)\)`),
}

var coordinateArgument = regexp.MustCompile(`\(([^()]*)\)`)

// FindDefinitionChains proposes, for every named coordinate or node, the deletion of
// the defining statement together with every drawing statement that references the
// name. Removing the definition alone would leave dangling references.
func FindDefinitionChains(code string) []m.Candidate {
	statements := findDrawingStatements(code)

	var candidates []m.Candidate

	for _, pattern := range definitionPatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(code, -1) {
			start := loc[0]
			if inComment(code, start) {
				continue
			}

			name := code[loc[2]:loc[3]]

			end := statementEnd(code, start)
			if end < 0 {
				end = loc[1]
			}

			spans := []m.Span{{Start: start, End: end}}

			for _, stmt := range statements {
				if referencesName(stmt.text, name) {
					spans = append(spans, stmt.span)
				}
			}

			candidates = append(candidates, m.Candidate{
				Spans:    mergeSpans(spans),
				Strategy: m.StrategyDefinition,
			})
		}
	}

	return candidates
}

// referencesName reports whether one of the parenthesised coordinates of a statement
// is name, ignoring anchor suffixes such as ".north".
func referencesName(text, name string) bool {
	for _, match := range coordinateArgument.FindAllStringSubmatch(text, -1) {
		arg := strings.TrimSpace(match[1])
		if i := strings.IndexByte(arg, '.'); i >= 0 {
			arg = arg[:i]
		}

		if arg == name {
			return true
		}
	}

	return false
}
