// Package cliflag adapts duration.Duration to urfave/cli flags.
package cliflag

import (
	"fmt"

	"github.com/nmeilick/durflex/duration"
	"github.com/urfave/cli/v2"
)

// FromArg converts a command-line argument into a duration
func FromArg(arg string) (duration.Duration, error) {
	d, err := duration.Parse(arg)
	if err != nil {
		return duration.Duration{}, fmt.Errorf("%w, expected %s", err, duration.Expectation)
	}
	return d, nil
}

// ToArg converts a duration into its command-line form
func ToArg(d duration.Duration) string {
	return d.String()
}

// Value holds a duration flag value. It implements cli.Generic and flag.Value.
type Value struct {
	d duration.Duration
}

// New returns a flag value preset to def
func New(def duration.Duration) *Value {
	return &Value{d: def}
}

// Set parses arg and stores the result
func (v *Value) Set(arg string) error {
	d, err := FromArg(arg)
	if err != nil {
		return err
	}
	v.d = d
	return nil
}

func (v *Value) String() string {
	if v == nil {
		return ""
	}
	return ToArg(v.d)
}

// Type names the value for flag help output
func (v *Value) Type() string {
	return "duration"
}

// Get returns the current duration
func (v *Value) Get() duration.Duration {
	return v.d
}

// Flag creates a generic cli flag holding a duration
func Flag(name, usage string, def duration.Duration, aliases ...string) *cli.GenericFlag {
	return &cli.GenericFlag{
		Name:    name,
		Aliases: aliases,
		Usage:   usage,
		Value:   New(def),
	}
}

// Get returns the duration stored in the named flag, or the zero duration
// when the flag does not exist or has a different type
func Get(c *cli.Context, name string) duration.Duration {
	if v, ok := c.Generic(name).(*Value); ok && v != nil {
		return v.Get()
	}
	return duration.Duration{}
}
