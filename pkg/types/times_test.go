package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampRoundTrip(t *testing.T) {
	orig := Timestamp{time.Date(2024, 6, 15, 9, 30, 12, 345678900, time.UTC)}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Timestamp
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !decoded.Equal(orig.Time) {
		t.Fatalf("round-trip changed the instant: %v != %v", decoded, orig)
	}
}

func TestTimestampUnmarshalErrors(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`42`), &ts); err == nil {
		t.Fatal("expected error for non-string timestamp")
	}
	if err := json.Unmarshal([]byte(`"June 15th"`), &ts); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
}
