package service

import (
	"strconv"
)

// sequence hands out increasing identifiers starting at a fixed offset.
type sequence struct {
	next int
}

func newSequence(start int) *sequence {
	return &sequence{next: start}
}

func (s *sequence) Next() string {
	id := strconv.Itoa(s.next)
	s.next++
	return id
}

// mark returns the position of the next identifier for a later rewind.
func (s *sequence) mark() int { return s.next }

// rewind gives back the identifiers handed out since mark.
func (s *sequence) rewind(mark int) { s.next = mark }

// statsLedger counts non-cancelled orders per product.
type statsLedger struct {
	counts map[string]int
}

func newStatsLedger() *statsLedger {
	return &statsLedger{counts: make(map[string]int)}
}

func (l *statsLedger) increment(productID string) {
	l.counts[productID]++
}

func (l *statsLedger) decrement(productID string) {
	if l.counts[productID] > 0 {
		l.counts[productID]--
	}
}

// ratingsLedger maps a star value to the product IDs that received it, one entry per rating.
type ratingsLedger struct {
	byStars map[int][]string
}

const (
	minRating = 1
	maxRating = 5
)

func newRatingsLedger() *ratingsLedger {
	return &ratingsLedger{byStars: make(map[int][]string)}
}

func (l *ratingsLedger) add(productID string, stars int) {
	l.byStars[stars] = append(l.byStars[stars], productID)
}

// histogram counts the ratings of one product per star value; index 0 holds one star.
func (l *ratingsLedger) histogram(productID string) [maxRating]int {
	var counts [maxRating]int
	for stars := minRating; stars <= maxRating; stars++ {
		for _, id := range l.byStars[stars] {
			if id == productID {
				counts[stars-1]++
			}
		}
	}
	return counts
}
