// Package model defines the data structures shared by the localization engine.
package model

import "image"

// Strategy names the scanner rule that proposed a candidate.
type Strategy string

const (
	// StrategyDefinition removes a named coordinate/node together with every statement using it.
	StrategyDefinition Strategy = "definition"
	// StrategyStatement removes a single drawing statement.
	StrategyStatement Strategy = "statement"
	// StrategyScope removes a scope block including its delimiters.
	StrategyScope Strategy = "scope"
	// StrategyRemaining removes a line-level statement missed by the structural scan.
	StrategyRemaining Strategy = "remaining"
)

// Candidate is a set of spans the scanner proposes to delete together.
type Candidate struct {
	Spans    []Span
	Strategy Strategy
}

// Anchor returns the smallest start offset among the spans, or -1 when empty.
func (c Candidate) Anchor() int {
	if len(c.Spans) == 0 {
		return -1
	}

	anchor := c.Spans[0].Start
	for _, s := range c.Spans[1:] {
		if s.Start < anchor {
			anchor = s.Start
		}
	}

	return anchor
}

// Mutant is a candidate that rendered to an image with the original dimensions.
type Mutant struct {
	Spans    []Span
	Strategy Strategy
	Code     string
	Image    image.Image
	Original string
	Anchor   int
}

// RemovedChars returns the number of characters deleted from the original code.
func (mt Mutant) RemovedChars() int {
	total := 0
	for _, s := range mt.Spans {
		total += s.Len()
	}

	return total
}

// Estimation counts the candidates the scanner proposes for one source before rendering.
type Estimation struct {
	Source     Source
	Structural int
	Remaining  int
}

// Total returns the number of renders a full mapping of the source would need at most.
func (e Estimation) Total() int {
	return e.Structural + e.Remaining
}
