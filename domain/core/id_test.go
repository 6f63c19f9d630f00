package core

import (
	"testing"
	"time"
)

func TestEntryID_TimeRoundTrip(t *testing.T) {
	now := time.Now()
	id := NewEntryID()
	// Same-millisecond bursts advance the process-wide floor ahead of the
	// clock, so an id's time may run a little past now but never behind it.
	if got := id.Time(); got.Sub(now) > 5*time.Second || now.Sub(got) > time.Second {
		t.Fatalf("id time %v too far from now %v", got, now)
	}
}

func TestNewEntryID_MonotonicWithinProcess(t *testing.T) {
	prev := NewEntryID()
	for i := 0; i < 100; i++ {
		id := NewEntryID()
		if id <= prev {
			t.Fatalf("entry id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestParseEntryID(t *testing.T) {
	tests := []struct {
		in      string
		want    EntryID
		wantErr bool
	}{
		{"1700000000000", 1700000000000, false},
		{"1", 1, false},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseEntryID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseEntryID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseEntryID(%q) = %d, want %d", tt.in, got, tt.want)
		}
		if err != nil && !IsValidationError(err) {
			t.Fatalf("ParseEntryID(%q) error %v is not a validation error", tt.in, err)
		}
	}
}

func TestNewDraftID_Unique(t *testing.T) {
	a := NewDraftID()
	b := NewDraftID()
	if a == b {
		t.Fatal("draft ids should be unique")
	}
	if a.IsEmpty() {
		t.Fatal("draft id should not be empty")
	}
}
