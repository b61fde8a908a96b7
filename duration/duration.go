// Package duration implements a whole-second duration value with a compact
// textual form such as "1w6d23h49m59s".
//
// The text grammar is a fixed sequence of optional groups, each a run of
// decimal digits followed by a unit letter:
//
//	[<n>w][<n>d][<n>h][<n>m][<n>s]
//
// Units must appear in that order and at most once. The empty string is a
// valid, zero duration. Formatting always yields the canonical form: units in
// descending order, no zero components, and every component below the span of
// the next larger unit.
package duration

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit spans in seconds
const (
	SecondsPerMinute int64 = 60
	SecondsPerHour         = 60 * SecondsPerMinute
	SecondsPerDay          = 24 * SecondsPerHour
	SecondsPerWeek         = 7 * SecondsPerDay
)

type unit struct {
	letter string
	span   int64
}

// units lists the grammar groups in their mandatory order
var units = []unit{
	{"w", SecondsPerWeek},
	{"d", SecondsPerDay},
	{"h", SecondsPerHour},
	{"m", SecondsPerMinute},
	{"s", 1},
}

// pattern is compiled once and only read afterwards. Go's \d is ASCII only.
var pattern = regexp.MustCompile(`^(?:(\d+)w)?(?:(\d+)d)?(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)

// Duration is a signed count of whole seconds plus a nanosecond remainder.
//
// Values produced by Parse are never negative and never carry nanoseconds.
// The zero value is the empty duration. Duration is comparable with ==.
type Duration struct {
	seconds int64
	nanos   int32
}

// Parse parses s according to the unit grammar.
//
// It returns a *ParseError wrapping ErrInvalidFormat when s does not match the
// grammar, or ErrOutOfRange when the total does not fit into 64-bit seconds.
func Parse(s string) (Duration, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Duration{}, &ParseError{Input: s, Err: ErrInvalidFormat}
	}

	var total int64
	for i, u := range units {
		digits := m[i+1]
		if digits == "" {
			continue
		}

		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			// The pattern guarantees digits, so only range errors remain
			return Duration{}, &ParseError{Input: s, Err: ErrOutOfRange}
		}
		if n > math.MaxInt64/u.span {
			return Duration{}, &ParseError{Input: s, Err: ErrOutOfRange}
		}
		secs := n * u.span
		if total > math.MaxInt64-secs {
			return Duration{}, &ParseError{Input: s, Err: ErrOutOfRange}
		}
		total += secs
	}

	return Duration{seconds: total}, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromSeconds returns a duration of s whole seconds.
func FromSeconds(s int64) Duration {
	return Duration{seconds: s}
}

// Seconds returns the whole seconds.
func (d Duration) Seconds() int64 {
	return d.seconds
}

// Nanos returns the sub-second remainder in nanoseconds.
func (d Duration) Nanos() int32 {
	return d.nanos
}

// IsZero reports whether d is the empty duration.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nanos == 0
}

// String returns the canonical text form of d. A zero duration yields the
// empty string and the nanosecond remainder is not rendered.
//
// Negative durations, which can only come from conversions, are rendered as
// "-" followed by the form of their absolute value. Parse does not accept them.
func (d Duration) String() string {
	if d.seconds < 0 {
		// Negating through uint64 keeps math.MinInt64 intact
		return "-" + format(uint64(-(d.seconds+1))+1)
	}
	return format(uint64(d.seconds))
}

// format decomposes secs greedily from the largest unit down and emits only
// the non-zero components.
func format(secs uint64) string {
	var sb strings.Builder
	remaining := secs
	for _, u := range units {
		span := uint64(u.span)
		magnitude := remaining / span
		remaining -= magnitude * span
		if magnitude != 0 {
			sb.WriteString(strconv.FormatUint(magnitude, 10))
			sb.WriteString(u.letter)
		}
	}
	return sb.String()
}

// IsParseError reports whether err originates from Parse.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
