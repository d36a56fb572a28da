package time

import (
	"testing"
	"time"
)

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatal("zero time should be nil")
	}
	now := time.Now()
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatalf("Ptr(now) = %v", p)
	}
}

func TestDaysBeforeAndStamp(t *testing.T) {
	loc := time.FixedZone("x", 2*3600)
	now := time.Date(2025, 9, 10, 12, 30, 15, 999, loc)
	got := DaysBefore(now, 7)
	if s := Stamp(got); s != "2025-09-03T10:30:15Z" {
		t.Fatalf("Stamp = %s", s)
	}
	if got.Location() != time.UTC {
		t.Fatalf("not UTC")
	}
}
