// Package foxcount walks every distinct arrangement of a tile composition
// on a square board and tallies how often a word shows up along its lines.
package foxcount

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/foxgrid/internal/common"
	"github.com/domino14/foxgrid/internal/grid"
	"github.com/domino14/foxgrid/internal/permute"
)

const (
	// DefaultComposition is five f tiles, six o tiles and five x tiles.
	DefaultComposition = "f5o6x5"
	DefaultWord        = "fox"

	// DefaultProgressEvery is how many arrangements go by between calls
	// to the progress hook.
	DefaultProgressEvery = 50000
)

var (
	ErrBadComposition = errors.New("composition must fill a non-empty square board")
	// ErrTooManyArrangements means the arrangement count does not fit in
	// a uint64, far past anything that could be enumerated.
	ErrTooManyArrangements = errors.New("too many arrangements to enumerate")
)

// ProgressFunc is told how many arrangements have been scored so far.
type ProgressFunc func(done, total uint64)

// Counter owns everything that stays fixed across one enumeration: the
// tiles, the board lines and the patterns.
type Counter struct {
	comp     common.Composition
	side     int
	lines    []grid.Line
	patterns PatternSet
	total    uint64

	ProgressEvery uint64
	OnProgress    ProgressFunc
}

func NewCounter(comp common.Composition, word common.Word) (*Counter, error) {
	if comp.Len() == 0 {
		return nil, ErrBadComposition
	}
	side, err := grid.SideFor(comp.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadComposition, err)
	}
	count := permute.Multinomial(comp.Counts()...)
	if !count.IsUint64() {
		return nil, fmt.Errorf("%w: %s has %s", ErrTooManyArrangements, comp, count)
	}
	patterns, err := NewPatternSet(word)
	if err != nil {
		return nil, err
	}
	lines, err := grid.Lines(side, patterns.Span())
	if err != nil {
		return nil, fmt.Errorf("%w: %q on a %dx%d board", ErrBadWord, word.Word(), side, side)
	}
	return &Counter{
		comp:          comp,
		side:          side,
		lines:         lines,
		patterns:      patterns,
		total:         count.Uint64(),
		ProgressEvery: DefaultProgressEvery,
	}, nil
}

func (c *Counter) Side() int          { return c.side }
func (c *Counter) Lines() []grid.Line { return c.lines }

// Total is the number of distinct arrangements Run will score.
func (c *Counter) Total() uint64 {
	return c.total
}

// Score counts the lines on g whose tiles spell one of the patterns.
func Score(g grid.Grid, lines []grid.Line, patterns PatternSet) int {
	score := 0
	for _, l := range lines {
		if patterns.Contains(g.Word(l)) {
			score++
		}
	}
	return score
}

// Run scores every distinct arrangement once and returns the histogram of
// scores.
func (c *Counter) Run() (*Histogram, error) {
	defer timeTrack(time.Now(), "count "+c.comp.String())

	p, err := permute.NewFunc([]rune(c.comp.Tiles()), cmp.Compare[rune])
	if err != nil {
		return nil, err
	}
	total := c.Total()
	log.Debug().Str("composition", c.comp.String()).Str("first", c.comp.Alphagram()).
		Strs("patterns", c.patterns.Patterns()).
		Int("side", c.side).Int("lines", len(c.lines)).Uint64("total", total).
		Msg("starting enumeration")

	h := NewHistogram(len(c.lines))
	var done uint64
	for perm := range p.All() {
		g := grid.FromTiles(perm, c.side)
		h.Add(Score(g, c.lines, c.patterns))
		done++
		if c.OnProgress != nil && c.ProgressEvery > 0 && done%c.ProgressEvery == 0 {
			c.OnProgress(done, total)
		}
	}
	if c.OnProgress != nil {
		c.OnProgress(done, total)
	}
	log.Debug().Uint64("arrangements", done).Msg("enumeration done")
	return h, nil
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Info().Msgf("%s took %s", name, elapsed)
}
