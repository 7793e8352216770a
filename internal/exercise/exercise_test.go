package exercise

import (
	"errors"
	"testing"

	"github.com/agusx1211/warrior/internal/snapshot"
)

func TestSeriesCloseTheDay(t *testing.T) {
	var e snapshot.Exercise
	for i := 0; i < MaxSeries; i++ {
		e = AddSeries(e)
	}
	if e.SeriesCurrent != MaxSeries || e.DaysTrained != 0 {
		t.Fatalf("after %d series: %+v", MaxSeries, e)
	}
	e = AddSeries(e)
	if e.SeriesCurrent != 0 || e.DaysTrained != 1 {
		t.Errorf("ninth series: %+v", e)
	}
	if got := TotalSeries(e); got != SeriesPerDay {
		t.Errorf("total series = %d, want %d", got, SeriesPerDay)
	}
}

func TestRemoveSeriesFloors(t *testing.T) {
	e := RemoveSeries(snapshot.Exercise{})
	if e.SeriesCurrent != 0 {
		t.Errorf("series = %d, want 0", e.SeriesCurrent)
	}
}

func TestAddMinutesIgnoresNonPositive(t *testing.T) {
	e := AddMinutes(snapshot.Exercise{TotalMinutes: 30}, 0)
	e = AddMinutes(e, -10)
	e = AddMinutes(e, 45)
	if e.TotalMinutes != 75 {
		t.Errorf("minutes = %d, want 75", e.TotalMinutes)
	}
}

func TestBump(t *testing.T) {
	e, err := Bump(snapshot.Exercise{}, "sprint")
	if err != nil {
		t.Fatal(err)
	}
	e, _ = Bump(e, "stretch")
	if e.SprintCount != 1 || e.StretchCount != 1 {
		t.Errorf("tallies = %+v", e)
	}
	if _, err := Bump(e, "yoga"); !errors.Is(err, ErrUnknownTally) {
		t.Errorf("err = %v, want ErrUnknownTally", err)
	}
}

func TestFormatMinutes(t *testing.T) {
	for in, want := range map[int]string{0: "0m", 45: "45m", 60: "1h 00m", 125: "2h 05m"} {
		if got := FormatMinutes(in); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", in, got, want)
		}
	}
}
