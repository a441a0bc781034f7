// Package permute generates the distinct permutations of a multiset.
// Permutations come out in ascending lexicographic order and duplicates are
// never produced, so there is no need to generate everything and then
// dedupe it with a set.
package permute

import (
	"cmp"
	"errors"
	"iter"
	"math/big"
	"slices"
)

// ErrUnordered is returned when there is no ordering to sort the items with.
var ErrUnordered = errors.New("permute: items have no total order")

// Permuter holds the working state for one walk over the distinct
// permutations of a multiset. The state is advanced in place on every call
// to Next; to start over, make a new Permuter from the same items.
type Permuter[T any] struct {
	state   []T
	cmp     func(a, b T) int
	started bool
	done    bool
}

// New returns a Permuter over items, ordered with cmp.Compare. NaNs sort
// before every other float and compare equal to each other.
func New[T cmp.Ordered](items []T) *Permuter[T] {
	p, _ := NewFunc(items, cmp.Compare[T])
	return p
}

// NewFunc returns a Permuter over items using the given comparison, which
// must be a total order. Items that compare equal are interchangeable: only
// one ordering of them is produced, even if they are distinguishable.
// The items slice is copied and never modified.
func NewFunc[T any](items []T, cmp func(a, b T) int) (*Permuter[T], error) {
	if cmp == nil {
		return nil, ErrUnordered
	}
	state := slices.Clone(items)
	// Stable, so the representative yielded for equal items is deterministic.
	slices.SortStableFunc(state, cmp)
	return &Permuter[T]{state: state, cmp: cmp}, nil
}

// Runes is a convenience for permuting the letters of a string.
func Runes(s string) *Permuter[rune] {
	return New([]rune(s))
}

// Next returns the next distinct permutation, or false once the sequence is
// exhausted. The returned slice belongs to the caller.
func (p *Permuter[T]) Next() ([]T, bool) {
	if p.done {
		return nil, false
	}
	if p.started && !p.advance() {
		p.done = true
		return nil, false
	}
	p.started = true
	out := make([]T, len(p.state))
	copy(out, p.state)
	return out, true
}

// All returns the rest of the sequence as an iterator. Breaking out of the
// range loop just leaves the Permuter where it was.
func (p *Permuter[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			perm, ok := p.Next()
			if !ok || !yield(perm) {
				return
			}
		}
	}
}

// advance moves state to the lexicographically next permutation. It
// returns false if state is already the last (fully descending) one.
func (p *Permuter[T]) advance() bool {
	s := p.state
	n := len(s)

	// Rightmost i with s[i] < s[i+1].
	i := n - 2
	for i >= 0 && p.cmp(s[i], s[i+1]) >= 0 {
		i--
	}
	if i < 0 {
		return false
	}
	// Rightmost j > i with s[j] > s[i]. It exists since s[i+1] > s[i].
	j := n - 1
	for p.cmp(s[j], s[i]) <= 0 {
		j--
	}
	s[i], s[j] = s[j], s[i]
	// s[i+1:] is descending; reverse it to get the smallest tail.
	slices.Reverse(s[i+1:])
	return true
}

// Count returns the length of the full sequence, n! / (x1! * x2! * ... * xk!)
// where the xs are the multiplicities of each distinct value.
func (p *Permuter[T]) Count() *big.Int {
	sorted := slices.Clone(p.state)
	slices.SortFunc(sorted, p.cmp)
	return Multinomial(runLengths(sorted, p.cmp)...)
}

func runLengths[T any](sorted []T, cmp func(a, b T) int) []int {
	runs := []int{}
	for i := range sorted {
		if i > 0 && cmp(sorted[i-1], sorted[i]) == 0 {
			runs[len(runs)-1]++
			continue
		}
		runs = append(runs, 1)
	}
	return runs
}

// Multinomial returns (k1 + k2 + ... + kn)! / (k1! * k2! * ... * kn!).
func Multinomial(counts ...int) *big.Int {
	total := 0
	for _, c := range counts {
		total += c
	}
	result := new(big.Int).MulRange(1, int64(total))
	for _, c := range counts {
		result.Quo(result, new(big.Int).MulRange(1, int64(c)))
	}
	return result
}
