package duration_test

import (
	"math"
	"testing"
	"time"

	"github.com/nmeilick/durflex/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/durationpb"
)

func TestFromDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want int64
	}{
		{"one week", 7 * 24 * time.Hour, duration.SecondsPerWeek},
		{"truncates sub-second", 90*time.Second + 999*time.Millisecond, 90},
		{"negative truncates toward zero", -1500 * time.Millisecond, -1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := duration.FromDuration(tt.in)
			assert.Equal(t, tt.want, d.Seconds())
			assert.Equal(t, int32(0), d.Nanos())
		})
	}
}

func TestToDuration(t *testing.T) {
	d := duration.MustParse("1w2d3h4m5s")
	std, err := d.ToDuration()
	require.NoError(t, err)
	assert.Equal(t, 9*24*time.Hour+3*time.Hour+4*time.Minute+5*time.Second, std)

	p, err := duration.FromProto(&durationpb.Duration{Seconds: 2, Nanos: 500})
	require.NoError(t, err)
	std, err = p.ToDuration()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second+500*time.Nanosecond, std)

	_, err = duration.FromSeconds(math.MaxInt64).ToDuration()
	assert.ErrorIs(t, err, duration.ErrOutOfRange)

	_, err = duration.FromSeconds(math.MinInt64).ToDuration()
	assert.ErrorIs(t, err, duration.ErrOutOfRange)

	edge, err := duration.FromProto(&durationpb.Duration{Seconds: math.MaxInt64 / int64(time.Second), Nanos: 999999999})
	require.NoError(t, err)
	_, err = edge.ToDuration()
	assert.ErrorIs(t, err, duration.ErrOutOfRange)
}

func TestPlusMinus(t *testing.T) {
	d := duration.MustParse("1h")

	sum, err := d.Plus(30 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, sum)

	diff, err := d.Minus(2 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, -time.Hour, diff)

	_, err = d.Plus(time.Duration(math.MaxInt64))
	assert.ErrorIs(t, err, duration.ErrOutOfRange)

	_, err = d.Minus(time.Duration(math.MinInt64))
	assert.ErrorIs(t, err, duration.ErrOutOfRange)
}

func TestProto(t *testing.T) {
	d, err := duration.FromProto(&durationpb.Duration{Seconds: 90, Nanos: 250})
	require.NoError(t, err)
	assert.Equal(t, int64(90), d.Seconds())
	assert.Equal(t, int32(250), d.Nanos())
	assert.Equal(t, "1m30s", d.String())

	p, err := d.Proto()
	require.NoError(t, err)
	assert.Equal(t, int64(90), p.GetSeconds())
	assert.Equal(t, int32(250), p.GetNanos())

	_, err = duration.FromProto(&durationpb.Duration{Seconds: -1})
	assert.ErrorIs(t, err, duration.ErrNegative)

	_, err = duration.FromProto(&durationpb.Duration{Seconds: 1, Nanos: 2e9})
	assert.ErrorIs(t, err, duration.ErrOutOfRange)

	_, err = duration.FromProto(nil)
	assert.Error(t, err)

	_, err = duration.FromDuration(-time.Minute).Proto()
	assert.ErrorIs(t, err, duration.ErrNegative)
}

func TestTimestampArithmetic(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	base := time.Date(2024, time.February, 27, 22, 15, 0, 0, loc)
	d := duration.MustParse("1w2d3h")

	later, err := d.AddTo(base)
	require.NoError(t, err)
	assert.True(t, later.Equal(time.Date(2024, time.March, 8, 1, 15, 0, 0, loc)), "got %v", later)
	assert.Equal(t, loc, later.Location())

	earlier, err := d.SubFrom(base)
	require.NoError(t, err)
	assert.True(t, earlier.Equal(time.Date(2024, time.February, 18, 19, 15, 0, 0, loc)), "got %v", earlier)

	back, err := d.SubFrom(later)
	require.NoError(t, err)
	assert.True(t, back.Equal(base))
}

func TestTimestampArithmeticBeyondStdRange(t *testing.T) {
	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	d := duration.MustParse("20000w")

	later, err := d.AddTo(base)
	require.NoError(t, err)
	assert.Equal(t, base.Unix()+d.Seconds(), later.Unix())
	assert.Equal(t, time.UTC, later.Location())

	earlier, err := d.SubFrom(base)
	require.NoError(t, err)
	assert.Equal(t, base.Unix()-d.Seconds(), earlier.Unix())

	half := duration.FromSeconds(math.MaxInt64 / 2)
	later, err = half.AddTo(base)
	require.NoError(t, err)
	assert.True(t, later.After(base))
	assert.Equal(t, base.Unix()+half.Seconds(), later.Unix())

	earlier, err = half.SubFrom(base)
	require.NoError(t, err)
	assert.True(t, earlier.Before(base))
	assert.Equal(t, base.Unix()-half.Seconds(), earlier.Unix())
}

func TestTimestampArithmeticOverflow(t *testing.T) {
	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		fn   func() (time.Time, error)
	}{
		{"add max seconds", func() (time.Time, error) { return duration.MustParse("9223372036854775807s").AddTo(base) }},
		{"subtract max seconds", func() (time.Time, error) { return duration.FromSeconds(math.MaxInt64).SubFrom(base) }},
		{"add min seconds", func() (time.Time, error) { return duration.FromSeconds(math.MinInt64).AddTo(base) }},
		{"subtract min seconds", func() (time.Time, error) { return duration.FromSeconds(math.MinInt64).SubFrom(base) }},
		{"past time.Time range", func() (time.Time, error) { return duration.FromSeconds(math.MaxInt64 - base.Unix()).AddTo(base) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			assert.ErrorIs(t, err, duration.ErrOutOfRange)
			assert.True(t, got.IsZero())
		})
	}
}
