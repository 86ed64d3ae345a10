package rng

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyPick is returned when a pick is requested from an empty slice.
// It signals a bug in collection construction, not bad user input.
var ErrEmptyPick = errors.New("rng: pick from empty slice")

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	stateMask     = 0x7fffffff
)

// Source is a deterministic pseudo-random source. Every random decision in a
// generation run must come from one Source so that identical (seed, options)
// pairs reproduce identical output. Not safe for concurrent use.
type Source struct {
	state   int64
	counter int
	now     time.Time
}

// New returns a Source seeded with seed. The now instant anchors Date and
// Timestamp output; pass a fixed value for reproducible date fields.
func New(seed int64, now time.Time) *Source {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return &Source{state: seed & stateMask, now: now.UTC()}
}

// Next advances the internal linear congruential state and returns a value in
// [0, 1). This is the single entropy source everything else composes from.
func (s *Source) Next() float64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) & stateMask
	return float64(s.state) / float64(stateMask+1)
}

// Range returns an integer in [min, max], inclusive on both ends.
// Callers must ensure min <= max.
func (s *Source) Range(min, max int) int {
	return min + int(s.Next()*float64(max-min+1))
}

// RangeFloat returns a value in [min, max).
func (s *Source) RangeFloat(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// Bool returns true with the given probability.
func (s *Source) Bool(probability float64) bool {
	return s.Next() < probability
}

// UUID returns a 36-character identifier in the canonical 8-4-4-4-12
// grouping. The first group is a strictly incrementing counter so identifiers
// stay unique within a run even if the seeded stream collides; the remaining
// hex digits come from Next, with the usual version-4 and variant markers.
// The digits are not cryptographically random.
func (s *Source) UUID() string {
	s.counter++

	var b strings.Builder
	b.Grow(36)
	fmt.Fprintf(&b, "%08x-", s.counter)
	for _, c := range "xxxx-4xxx-yxxx-xxxxxxxxxxxx" {
		switch c {
		case 'x':
			b.WriteByte(hexDigit(s.Range(0, 15)))
		case 'y':
			b.WriteByte(hexDigit(s.Range(0, 15)&0x3 | 0x8))
		default:
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}

func hexDigit(n int) byte {
	const digits = "0123456789abcdef"
	return digits[n]
}

// Date returns a YYYY-MM-DD date between the source's now instant and daysAgo
// days in the past.
func (s *Source) Date(daysAgo int) string {
	return s.now.AddDate(0, 0, -s.Range(0, daysAgo)).Format("2006-01-02")
}

// Timestamp returns the source's now instant in RFC 3339 form.
func (s *Source) Timestamp() string {
	return s.now.Format(time.RFC3339)
}

// Barcode returns a 12-digit numeric string in the shape of a UPC-A barcode.
// No check digit is computed.
func (s *Source) Barcode() string {
	var b strings.Builder
	b.Grow(12)
	for i := 0; i < 12; i++ {
		b.WriteByte(byte('0' + s.Range(0, 9)))
	}
	return b.String()
}

// Pick returns one element of items chosen uniformly. The slice is not
// mutated. Picking from an empty slice returns ErrEmptyPick.
func Pick[T any](s *Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyPick
	}
	return items[int(s.Next()*float64(len(items)))], nil
}

// PickN returns min(n, len(items)) distinct elements in randomized order by
// shuffling a copy and truncating. An empty source slice returns ErrEmptyPick.
func PickN[T any](s *Source, items []T, n int) ([]T, error) {
	if len(items) == 0 {
		return nil, ErrEmptyPick
	}
	shuffled := Shuffle(s, items)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n], nil
}

// Shuffle returns a new slice holding items in uniformly random order.
// The input slice is left untouched.
func Shuffle[T any](s *Source, items []T) []T {
	result := make([]T, len(items))
	copy(result, items)
	for i := len(result) - 1; i > 0; i-- {
		j := int(s.Next() * float64(i+1))
		result[i], result[j] = result[j], result[i]
	}
	return result
}
