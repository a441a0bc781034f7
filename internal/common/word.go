package common

import (
	"slices"
	"strings"
)

// Word is a target word to look for on the board.
type Word struct {
	word string
}

func InitializeWord(word string) Word {
	return Word{strings.ToLower(word)}
}

// MakeAlphagram returns the letters of the word in sorted order.
func (w Word) MakeAlphagram() string {
	return MakeAlphagram(w.word)
}

// Reversed spells the word backwards.
func (w Word) Reversed() string {
	rs := []rune(w.word)
	slices.Reverse(rs)
	return string(rs)
}

// Len is the length of the word in letters, not bytes.
func (w Word) Len() int {
	return len([]rune(w.word))
}

func (w Word) Word() string {
	return w.word // stop saying word so much
}

func MakeAlphagram(word string) string {
	letters := []rune(word)
	slices.Sort(letters)
	return string(letters)
}
