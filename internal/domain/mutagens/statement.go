package mutagens

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/vifmap/internal/model"
)

// drawingCommand matches the keywords that start a visible TikZ path. Longer
// keywords come first so \filldraw is not also reported as \fill.
var drawingCommand = regexp.MustCompile(`\\(?:filldraw|fill|shadedraw|shade|draw)\b`)

var clipOption = regexp.MustCompile(`\[[^\]]*\bclip\b`)

// statement is a drawing command located in normalized code.
type statement struct {
	span m.Span
	text string
}

// findDrawingStatements locates every terminated drawing statement outside comments.
func findDrawingStatements(code string) []statement {
	var statements []statement

	for _, loc := range drawingCommand.FindAllStringIndex(code, -1) {
		start := loc[0]
		if inComment(code, start) {
			continue
		}

		end := statementEnd(code, start)
		if end < 0 {
			continue
		}

		statements = append(statements, statement{
			span: m.Span{Start: start, End: end},
			text: code[start:end],
		})
	}

	return statements
}

// isClip reports whether a statement changes the clipping region instead of drawing.
func isClip(text string) bool {
	return strings.Contains(text, `\clip`) || clipOption.MatchString(text)
}

// FindStatements proposes the deletion of every drawing statement on its own,
// from the command keyword through its terminator. Clip statements are skipped.
func FindStatements(code string) []m.Candidate {
	var candidates []m.Candidate

	for _, stmt := range findDrawingStatements(code) {
		if isClip(stmt.text) {
			continue
		}

		candidates = append(candidates, m.Candidate{
			Spans:    []m.Span{stmt.span},
			Strategy: m.StrategyStatement,
		})
	}

	return candidates
}
