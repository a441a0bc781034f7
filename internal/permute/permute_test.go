package permute

import (
	"math/big"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func collect(p *Permuter[rune]) []string {
	out := []string{}
	for perm := range p.All() {
		out = append(out, string(perm))
	}
	return out
}

// bruteForce permutes every position and dedupes with a map.
func bruteForce(s string) []string {
	seen := map[string]struct{}{}
	var rec func(prefix []rune, rest []rune)
	rec = func(prefix []rune, rest []rune) {
		if len(rest) == 0 {
			seen[string(prefix)] = struct{}{}
			return
		}
		for i := range rest {
			next := append(slices.Clone(rest[:i]), rest[i+1:]...)
			rec(append(slices.Clone(prefix), rest[i]), next)
		}
	}
	rec(nil, []rune(s))
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type testpair struct {
	input string
	want  []string
}

var orderTests = []testpair{
	{"aab", []string{"aab", "aba", "baa"}},
	{"abc", []string{"abc", "acb", "bac", "bca", "cab", "cba"}},
	{"bab", []string{"abb", "bab", "bba"}},
	{"a", []string{"a"}},
	{"", []string{""}},
	{"zzzz", []string{"zzzz"}},
}

func TestKnownSequences(t *testing.T) {
	is := is.New(t)
	for _, tc := range orderTests {
		is.Equal(collect(Runes(tc.input)), tc.want) // sequence for input
	}
}

func TestMatchesBruteForce(t *testing.T) {
	is := is.New(t)
	for _, input := range []string{"fox", "foxx", "ffooxx", "mississ", "abcdef", "aaabbb"} {
		p := Runes(input)
		want := bruteForce(input)
		got := collect(p)
		// bruteForce is sorted, and so is our output, so they must line up.
		is.Equal(got, want)
		is.Equal(p.Count().Int64(), int64(len(want)))
	}
}

func TestStrictlyAscending(t *testing.T) {
	is := is.New(t)
	perms := collect(Runes("ffoooxx"))
	for i := 1; i < len(perms); i++ {
		is.True(strings.Compare(perms[i-1], perms[i]) < 0)
	}
}

func TestReinvocationIsIdentical(t *testing.T) {
	is := is.New(t)
	first := collect(Runes("fooxx"))
	second := collect(Runes("fooxx"))
	is.Equal(first, second)
}

func TestExhaustedStaysExhausted(t *testing.T) {
	is := is.New(t)
	p := Runes("ab")
	_, ok := p.Next()
	is.True(ok)
	_, ok = p.Next()
	is.True(ok)
	_, ok = p.Next()
	is.True(!ok)
	_, ok = p.Next()
	is.True(!ok)
}

func TestEmptyYieldsOneEmpty(t *testing.T) {
	is := is.New(t)
	p := New([]int{})
	perm, ok := p.Next()
	is.True(ok)
	is.Equal(len(perm), 0)
	_, ok = p.Next()
	is.True(!ok)
	is.Equal(p.Count().Int64(), int64(1))
}

func TestInputNotModified(t *testing.T) {
	is := is.New(t)
	items := []int{3, 1, 2}
	p := New(items)
	for range p.All() {
	}
	is.Equal(items, []int{3, 1, 2})
}

func TestCallerOwnsResult(t *testing.T) {
	is := is.New(t)
	p := New([]int{1, 2, 3})
	first, _ := p.Next()
	p.Next()
	is.Equal(first, []int{1, 2, 3})
}

func TestBreakEarly(t *testing.T) {
	is := is.New(t)
	p := Runes("abcd")
	n := 0
	for range p.All() {
		n++
		if n == 5 {
			break
		}
	}
	// Resumes right after the fifth permutation.
	next, ok := p.Next()
	is.True(ok)
	is.Equal(string(next), "adcb")
}

func TestNilComparator(t *testing.T) {
	is := is.New(t)
	p, err := NewFunc([]string{"a", "b"}, nil)
	is.Equal(err, ErrUnordered)
	is.True(p == nil)
}

func TestEqualValuesAreInterchangeable(t *testing.T) {
	is := is.New(t)
	// "F" and "f" compare equal, so they are one symbol as far as
	// permuting goes.
	p, err := NewFunc([]string{"f", "o", "F"}, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	is.NoErr(err)
	n := 0
	for range p.All() {
		n++
	}
	is.Equal(n, 3)
	is.Equal(p.Count().Int64(), int64(3))
}

func TestCountFoxBoard(t *testing.T) {
	is := is.New(t)
	p := Runes(strings.Repeat("f", 5) + strings.Repeat("o", 6) + strings.Repeat("x", 5))
	is.Equal(p.Count().String(), big.NewInt(2018016).String())
}

func TestMultinomial(t *testing.T) {
	is := is.New(t)
	is.Equal(Multinomial().String(), big.NewInt(1).String())
	is.Equal(Multinomial(2, 1).String(), big.NewInt(3).String())
	is.Equal(Multinomial(1, 1, 1).String(), big.NewInt(6).String())
	is.Equal(Multinomial(5, 6, 5).String(), big.NewInt(2018016).String())
}
