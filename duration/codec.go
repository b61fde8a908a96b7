package duration

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Expectation describes the accepted text form in decode errors.
const Expectation = "a String with the format weeks (w), days (d), hours (h), minutes (m) and/or seconds (s), in order"

// DecodeError is returned by the serialization adapters for values that are
// not valid duration text.
type DecodeError struct {
	// Value describes the offending input together with its kind, such as
	// `string "1y"` or `node at line 3`.
	Value string
	// Expected describes what would have been accepted.
	Expected string
	// Err is the underlying cause, if any.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid value: %s, expected %s", e.Value, e.Expected)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeError(value string, err error) *DecodeError {
	return &DecodeError{Value: value, Expected: Expectation, Err: err}
}

// Encode renders d for serialization. Negative durations have no
// representation in the grammar and are rejected.
func Encode(d Duration) (string, error) {
	if d.seconds < 0 {
		return "", fmt.Errorf("encode %s: %w", d, ErrNegative)
	}
	return d.String(), nil
}

// Decode parses s for deserialization. Both parse failures are reported as a
// *DecodeError carrying s and the expected format.
func Decode(s string) (Duration, error) {
	d, err := Parse(s)
	if err != nil {
		return Duration{}, decodeError(fmt.Sprintf("string %q", s), err)
	}
	return d, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	s, err := Encode(d)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Decode(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	s, err := Encode(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler. Only JSON strings are accepted.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return decodeError(string(data), err)
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return Encode(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return decodeError(fmt.Sprintf("node at line %d", value.Line), nil)
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return decodeError(value.Value, err)
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalCBOR implements cbor.Marshaler as a CBOR text string.
func (d Duration) MarshalCBOR() ([]byte, error) {
	s, err := Encode(d)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(s)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (d *Duration) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return decodeError(fmt.Sprintf("cbor item %x", data), err)
	}
	return d.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer, storing d as text.
func (d Duration) Value() (driver.Value, error) {
	return Encode(d)
}

// Scan implements sql.Scanner for text columns.
func (d *Duration) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case nil:
		*d = Duration{}
		return nil
	default:
		return decodeError(fmt.Sprintf("%T %v", src, src), nil)
	}
}
