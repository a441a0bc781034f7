package foxcount

import (
	"errors"
	"slices"

	"github.com/domino14/foxgrid/internal/common"
)

var ErrBadWord = errors.New("target word must be non-empty and fit on the board")

// PatternSet is the fixed set of spellings that count as a hit. It is
// built once and never changes.
type PatternSet struct {
	patterns map[string]struct{}
	span     int
}

// NewPatternSet holds the word and its reversal.
func NewPatternSet(word common.Word) (PatternSet, error) {
	if word.Len() == 0 {
		return PatternSet{}, ErrBadWord
	}
	return PatternSet{
		patterns: map[string]struct{}{
			word.Word():     {},
			word.Reversed(): {},
		},
		span: word.Len(),
	}, nil
}

func (ps PatternSet) Contains(s string) bool {
	_, ok := ps.patterns[s]
	return ok
}

// Span is how many cells a line must cover to spell a pattern.
func (ps PatternSet) Span() int {
	return ps.span
}

// Patterns lists the spellings in sorted order.
func (ps PatternSet) Patterns() []string {
	out := make([]string, 0, len(ps.patterns))
	for p := range ps.patterns {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
