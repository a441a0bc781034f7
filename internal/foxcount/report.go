package foxcount

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Report writes one line per non-empty bucket, lowest count first.
func Report(w io.Writer, word string, h *Histogram) error {
	for _, b := range h.Buckets() {
		_, err := fmt.Fprintf(w, "probability of seeing %s %d times: %s\n",
			word, b, FormatProbability(h.Probability(b)))
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatProbability prints the shortest representation that round-trips,
// always with a decimal point or exponent so 1 reads as "1.0".
func FormatProbability(p float64) string {
	s := strconv.FormatFloat(p, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}
