// Package lenient accepts durations written in looser notations than the
// canonical grammar and renders durations for humans.
package lenient

import (
	"fmt"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/nmeilick/durflex/duration"
	"github.com/xhit/go-str2duration/v2"
)

// Parse parses a duration string with fallbacks to multiple formats.
// Canonical text is tried first, then str2duration notation such as "1.5h"
// or "1w36h", then plain Go durations through durafmt. Anything below a
// second is truncated. Negative values are rejected with
// duration.ErrNegative since the canonical grammar cannot express them.
func Parse(s string) (duration.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return duration.Duration{}, nil
	}

	if d, err := duration.Parse(s); err == nil {
		return d, nil
	}

	d, err := parseStd(s)
	if err != nil {
		return duration.Duration{}, err
	}
	if d < 0 {
		return duration.Duration{}, fmt.Errorf("%q: %w", s, duration.ErrNegative)
	}
	return duration.FromDuration(d), nil
}

func parseStd(s string) (time.Duration, error) {
	// Try str2duration parsing first (handles more formats)
	if d, err := str2duration.ParseDuration(s); err == nil {
		return d, nil
	}

	// Try durafmt as fallback for more human-readable formats
	d, err := durafmt.ParseString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %q: %w", s, err)
	}
	return d.Duration(), nil
}

// Human returns a human-readable representation like "1 week 2 days".
// Values beyond the range of time.Duration fall back to the canonical form.
func Human(d duration.Duration) string {
	std, err := d.ToDuration()
	if err != nil {
		return d.String()
	}
	return durafmt.Parse(std).String()
}
