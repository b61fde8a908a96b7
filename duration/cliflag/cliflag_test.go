package cliflag_test

import (
	"errors"
	"io"
	"testing"

	"github.com/nmeilick/durflex/duration"
	"github.com/nmeilick/durflex/duration/cliflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (duration.Duration, error) {
	t.Helper()

	var got duration.Duration
	app := &cli.App{
		Name:      "test",
		Writer:    io.Discard,
		ErrWriter: io.Discard,
		Flags: []cli.Flag{
			cliflag.Flag("offset", "Offset to apply", duration.MustParse("1d"), "o"),
		},
		Action: func(c *cli.Context) error {
			got = cliflag.Get(c, "offset")
			return nil
		},
	}

	err := app.Run(append([]string{"test"}, args...))
	return got, err
}

func TestFlagDefault(t *testing.T) {
	got, err := runApp(t)
	require.NoError(t, err)
	assert.Equal(t, "1d", got.String())
}

func TestFlagSet(t *testing.T) {
	got, err := runApp(t, "--offset", "1w8d3h4m3605s")
	require.NoError(t, err)
	assert.Equal(t, "2w1d4h4m5s", got.String())

	got, err = runApp(t, "-o", "5s")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Seconds())
}

func TestFlagInvalid(t *testing.T) {
	_, err := runApp(t, "--offset", "5s5d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5s5d")
}

func TestGetUnknownFlag(t *testing.T) {
	app := &cli.App{
		Name:      "test",
		Writer:    io.Discard,
		ErrWriter: io.Discard,
		Action: func(c *cli.Context) error {
			assert.True(t, cliflag.Get(c, "missing").IsZero())
			return nil
		},
	}
	require.NoError(t, app.Run([]string{"test"}))
}

func TestArgConversions(t *testing.T) {
	d, err := cliflag.FromArg("1w2d")
	require.NoError(t, err)
	assert.Equal(t, "1w2d", cliflag.ToArg(d))

	_, err = cliflag.FromArg("1y")
	assert.True(t, errors.Is(err, duration.ErrInvalidFormat))
	assert.Contains(t, err.Error(), duration.Expectation)
}

func TestValue(t *testing.T) {
	v := cliflag.New(duration.Duration{})
	assert.Equal(t, "", v.String())
	assert.Equal(t, "duration", v.Type())

	require.NoError(t, v.Set("90m"))
	assert.Equal(t, "1h30m", v.String())

	assert.Error(t, v.Set("1h30"))
	assert.Equal(t, "1h30m", v.String())
}
