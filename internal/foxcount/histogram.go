package foxcount

import (
	"errors"
	"fmt"
)

var ErrNegativeCount = errors.New("occurrence count cannot be negative")

// Histogram maps an occurrence count to how many arrangements had it.
// Every bucket from zero to the number of lines exists up front.
type Histogram struct {
	buckets []uint64
}

func NewHistogram(maxCount int) *Histogram {
	return &Histogram{buckets: make([]uint64, maxCount+1)}
}

// Add records one arrangement with the given count, which comes from
// Score and so is never negative.
func (h *Histogram) Add(count int) {
	h.grow(count)
	h.buckets[count]++
}

// AddN records n arrangements with the given count.
func (h *Histogram) AddN(count int, n uint64) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	h.grow(count)
	h.buckets[count] += n
	return nil
}

func (h *Histogram) grow(count int) {
	for count >= len(h.buckets) {
		h.buckets = append(h.buckets, 0)
	}
}

// Count is the number of arrangements in bucket.
func (h *Histogram) Count(bucket int) uint64 {
	if bucket < 0 || bucket >= len(h.buckets) {
		return 0
	}
	return h.buckets[bucket]
}

func (h *Histogram) Total() uint64 {
	var total uint64
	for _, n := range h.buckets {
		total += n
	}
	return total
}

// Buckets returns the non-empty buckets in ascending order.
func (h *Histogram) Buckets() []int {
	out := []int{}
	for b, n := range h.buckets {
		if n > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Probability is the share of all arrangements that landed in bucket.
func (h *Histogram) Probability(bucket int) float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	return float64(h.Count(bucket)) / float64(total)
}
