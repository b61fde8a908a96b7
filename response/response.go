// Package response defines the documents printed by the commands.
package response

import (
	"time"

	"github.com/nmeilick/durflex/duration"
)

// ParseResult describes one parsed or converted duration
type ParseResult struct {
	Input     string            `json:"input" yaml:"input"`
	Canonical duration.Duration `json:"canonical" yaml:"canonical"`
	Seconds   int64             `json:"seconds" yaml:"seconds"`
	Human     string            `json:"human,omitempty" yaml:"human,omitempty"`
}

// ShiftResult describes a timestamp moved by a duration
type ShiftResult struct {
	From      time.Time         `json:"from" yaml:"from"`
	Offset    duration.Duration `json:"offset" yaml:"offset"`
	Direction string            `json:"direction" yaml:"direction"`
	To        time.Time         `json:"to" yaml:"to"`
	Relative  string            `json:"relative,omitempty" yaml:"relative,omitempty"`
}

// Alias describes a stored, named duration
type Alias struct {
	Name     string            `json:"name" yaml:"name"`
	Duration duration.Duration `json:"duration" yaml:"duration"`
	Seconds  int64             `json:"seconds" yaml:"seconds"`
	Updated  time.Time         `json:"updated" yaml:"updated"`
}

// NewParseResult builds a ParseResult for d
func NewParseResult(input string, d duration.Duration, human string) ParseResult {
	return ParseResult{
		Input:     input,
		Canonical: d,
		Seconds:   d.Seconds(),
		Human:     human,
	}
}
