package duration

import (
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/types/known/durationpb"
)

const nanosPerSecond = int64(time.Second)

// Range of time.Duration in whole seconds
const (
	maxStdSeconds = math.MaxInt64 / nanosPerSecond
	minStdSeconds = math.MinInt64 / nanosPerSecond
)

// FromDuration converts a time.Duration into a Duration. The conversion is
// lossy: the value is truncated toward zero to whole seconds and the
// sub-second remainder is dropped.
func FromDuration(d time.Duration) Duration {
	return Duration{seconds: int64(d / time.Second)}
}

// ToDuration converts d into a time.Duration. It fails with ErrOutOfRange
// when d exceeds the roughly 292 years a time.Duration can hold.
func (d Duration) ToDuration() (time.Duration, error) {
	if d.seconds > maxStdSeconds || d.seconds < minStdSeconds {
		return 0, fmt.Errorf("%w: %ds exceeds time.Duration", ErrOutOfRange, d.seconds)
	}

	std := time.Duration(d.seconds) * time.Second
	sum := std + time.Duration(d.nanos)
	if (d.nanos > 0 && sum < std) || (d.nanos < 0 && sum > std) {
		return 0, fmt.Errorf("%w: %ds exceeds time.Duration", ErrOutOfRange, d.seconds)
	}
	return sum, nil
}

// Plus returns d converted to a time.Duration plus other.
func (d Duration) Plus(other time.Duration) (time.Duration, error) {
	std, err := d.ToDuration()
	if err != nil {
		return 0, err
	}
	sum := std + other
	if (other > 0 && sum < std) || (other < 0 && sum > std) {
		return 0, fmt.Errorf("%w: %v + %v overflows", ErrOutOfRange, std, other)
	}
	return sum, nil
}

// Minus returns d converted to a time.Duration minus other.
func (d Duration) Minus(other time.Duration) (time.Duration, error) {
	std, err := d.ToDuration()
	if err != nil {
		return 0, err
	}
	diff := std - other
	if (other > 0 && diff > std) || (other < 0 && diff < std) {
		return 0, fmt.Errorf("%w: %v - %v overflows", ErrOutOfRange, std, other)
	}
	return diff, nil
}

// FromProto converts a protobuf duration, keeping its nanoseconds. Only
// valid, non-negative values are accepted.
func FromProto(p *durationpb.Duration) (Duration, error) {
	if p == nil {
		return Duration{}, fmt.Errorf("%w: nil protobuf duration", ErrInvalidFormat)
	}
	if err := p.CheckValid(); err != nil {
		return Duration{}, fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}
	if p.GetSeconds() < 0 || p.GetNanos() < 0 {
		return Duration{}, ErrNegative
	}
	return Duration{seconds: p.GetSeconds(), nanos: p.GetNanos()}, nil
}

// Proto converts d into a protobuf duration. Negative durations are rejected
// with ErrNegative.
func (d Duration) Proto() (*durationpb.Duration, error) {
	if d.seconds < 0 || d.nanos < 0 {
		return nil, ErrNegative
	}
	return &durationpb.Duration{Seconds: d.seconds, Nanos: d.nanos}, nil
}

// AddTo returns t shifted forward by d. The location of t is kept. Results
// that time.Time cannot hold fail with ErrOutOfRange.
func (d Duration) AddTo(t time.Time) (time.Time, error) {
	if std, err := d.ToDuration(); err == nil && t.Unix() >= minStdUnix && t.Unix() <= maxStdUnix {
		return t.Add(std), nil
	}

	sec, ok := addSeconds(t.Unix(), d.seconds)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s after %s", ErrOutOfRange, d, t)
	}
	return fromUnix(sec, int64(t.Nanosecond())+int64(d.nanos), t.Location())
}

// SubFrom returns t shifted back by d. The location of t is kept. Results
// that time.Time cannot hold fail with ErrOutOfRange.
func (d Duration) SubFrom(t time.Time) (time.Time, error) {
	if std, err := d.ToDuration(); err == nil && t.Unix() >= minStdUnix && t.Unix() <= maxStdUnix {
		return t.Add(-std), nil
	}

	sec, ok := subSeconds(t.Unix(), d.seconds)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s before %s", ErrOutOfRange, d, t)
	}
	return fromUnix(sec, int64(t.Nanosecond())-int64(d.nanos), t.Location())
}

// Unix seconds time.Time can hold without wrapping its internal clock, which
// counts from January 1 of year 1.
const (
	unixToInternal int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * SecondsPerDay
	maxUnixSeconds       = math.MaxInt64 - unixToInternal
	minUnixSeconds       = -maxUnixSeconds

	// Timestamps for which adding any time.Duration stays within range
	maxStdUnix = maxUnixSeconds - maxStdSeconds - 1
	minStdUnix = minUnixSeconds - minStdSeconds + 1
)

func fromUnix(sec, nsec int64, loc *time.Location) (time.Time, error) {
	ok := true
	switch {
	case nsec >= nanosPerSecond:
		nsec -= nanosPerSecond
		sec, ok = addSeconds(sec, 1)
	case nsec < 0:
		nsec += nanosPerSecond
		sec, ok = subSeconds(sec, 1)
	}
	if !ok || sec > maxUnixSeconds || sec < minUnixSeconds {
		return time.Time{}, fmt.Errorf("%w: unix time %d exceeds time.Time", ErrOutOfRange, sec)
	}
	return time.Unix(sec, nsec).In(loc), nil
}

func addSeconds(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func subSeconds(a, b int64) (int64, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}
