package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the on-disk format for createdAt/updatedAt.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Layouts accepted when reading, most specific first.
var parseLayouts = []string{
	TimestampLayout,
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339Nano,
}

// Timestamp is a wall-clock time stored with microsecond precision.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to the precision the file format can hold.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Microsecond)}
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			// Zoned inputs are moved to local time; the wire format has no offset.
			return NewTimestamp(t.In(time.Local)), nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q: want %s", s, TimestampLayout)
}

func (ts Timestamp) String() string {
	return ts.Format(TimestampLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// MarshalYAML and UnmarshalYAML keep checkout files in the same format as the store.
func (ts Timestamp) MarshalYAML() (any, error) {
	return ts.String(), nil
}

func (ts *Timestamp) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
