package clock

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 23:30 UTC on the 16th is already the 17th in Madrid.
	instant := time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)
	if got := DayKey(instant); got != "2026-10-16" {
		t.Errorf("DayKey(utc) = %q, want 2026-10-16", got)
	}
	if got := DayKey(instant.In(madrid)); got != "2026-10-17" {
		t.Errorf("DayKey(madrid) = %q, want 2026-10-17", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"saturday", time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC), time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)},
		{"sunday itself", time.Date(2026, 10, 11, 8, 0, 0, 0, time.UTC), time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)},
		{"across month", time.Date(2026, 11, 2, 1, 0, 0, 0, time.UTC), time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)},
		{"across year", time.Date(2027, 1, 2, 12, 0, 0, 0, time.UTC), time.Date(2026, 12, 27, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMonthAfter(t *testing.T) {
	base := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"same month", time.Date(2026, 10, 31, 23, 59, 0, 0, time.UTC), false},
		{"next month", time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), true},
		{"next year earlier month", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"earlier month", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthAfter(tt.now, base); got != tt.want {
				t.Errorf("MonthAfter(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestFixedAdvance(t *testing.T) {
	c := &Fixed{T: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)}
	c.Advance(36 * time.Hour)
	if got := DayKey(c.Now()); got != "2026-10-18" {
		t.Errorf("after advance DayKey = %q, want 2026-10-18", got)
	}
}
