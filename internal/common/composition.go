// Package common holds the small letter and tile types shared by the
// counting code and the command line.
package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrMalformedComposition = errors.New("badly formed composition")

// Composition is a multiset of tiles: each distinct letter with the number
// of copies of it, in the order the letters were first seen.
type Composition struct {
	letters []rune
	counts  []int
}

// ParseComposition reads either a run-length form such as "f5o6x5" or the
// raw tiles such as "ffoox". A letter with no count after it counts once,
// and a letter that shows up again adds to its earlier count.
func ParseComposition(s string) (Composition, error) {
	c := Composition{}
	rs := []rune(strings.ToLower(strings.TrimSpace(s)))
	for i := 0; i < len(rs); {
		letter := rs[i]
		if !unicode.IsLetter(letter) {
			return Composition{}, fmt.Errorf("%w: unexpected %q in %q", ErrMalformedComposition, letter, s)
		}
		i++
		start := i
		for i < len(rs) && unicode.IsDigit(rs[i]) {
			i++
		}
		n := 1
		if i > start {
			var err error
			n, err = strconv.Atoi(string(rs[start:i]))
			if err != nil || n < 1 {
				return Composition{}, fmt.Errorf("%w: bad count for %q in %q", ErrMalformedComposition, letter, s)
			}
		}
		c.add(letter, n)
	}
	return c, nil
}

func (c *Composition) add(letter rune, n int) {
	for i, l := range c.letters {
		if l == letter {
			c.counts[i] += n
			return
		}
	}
	c.letters = append(c.letters, letter)
	c.counts = append(c.counts, n)
}

// Tiles spells out every tile, grouped by letter.
func (c Composition) Tiles() string {
	var sb strings.Builder
	for i, l := range c.letters {
		sb.WriteString(strings.Repeat(string(l), c.counts[i]))
	}
	return sb.String()
}

// Counts returns the multiplicity of each distinct letter.
func (c Composition) Counts() []int {
	out := make([]int, len(c.counts))
	copy(out, c.counts)
	return out
}

func (c Composition) countOf(letter rune) int {
	for i, l := range c.letters {
		if l == letter {
			return c.counts[i]
		}
	}
	return 0
}

// Len is the total number of tiles.
func (c Composition) Len() int {
	n := 0
	for _, ct := range c.counts {
		n += ct
	}
	return n
}

// String is the run-length form with letters in alphagram order, e.g.
// "f5o6x5", so the same tiles always print the same way.
func (c Composition) String() string {
	var sb strings.Builder
	for _, l := range MakeAlphagram(string(c.letters)) {
		sb.WriteRune(l)
		sb.WriteString(strconv.Itoa(c.countOf(l)))
	}
	return sb.String()
}

// Alphagram is every tile in sorted order, which is also the first
// arrangement the permutation generator produces.
func (c Composition) Alphagram() string {
	return MakeAlphagram(c.Tiles())
}
