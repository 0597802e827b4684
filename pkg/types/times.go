package types

import (
	"fmt"
	"strconv"
	"time"
)

// SidecarTimeFormat is the fixed timestamp layout used in sidecar files:
// ISO-8601 with seven decimal digits of sub-second precision. Values written
// with this layout parse back to the same instant.
const SidecarTimeFormat = "2006-01-02T15:04:05.0000000Z07:00"

// Timestamp wraps time.Time with the sidecar JSON encoding.
type Timestamp struct {
	time.Time
}

// MarshalJSON encodes the timestamp as a quoted SidecarTimeFormat string
// in UTC.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(ts.UTC().Format(SidecarTimeFormat))), nil
}

// UnmarshalJSON decodes a quoted SidecarTimeFormat string.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp is not a string: %s", data)
	}
	parsed, err := time.Parse(SidecarTimeFormat, raw)
	if err != nil {
		return err
	}
	ts.Time = parsed
	return nil
}
