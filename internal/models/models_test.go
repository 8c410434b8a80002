package models

import (
	"testing"
	"time"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !IsValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	for _, c := range []string{"", "food", "Yachts"} {
		if IsValidCategory(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestMonths(t *testing.T) {
	months := Months()
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
	if months[0] != "January" || months[11] != "December" {
		t.Errorf("expected calendar order, got %v", months)
	}
	for _, m := range months {
		if !IsValidMonth(m) {
			t.Errorf("expected %q to be valid", m)
		}
	}
	if IsValidMonth("Smarch") {
		t.Error("expected Smarch to be invalid")
	}
}

func TestMonthOf(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := MonthOf(d); got != "March" {
		t.Errorf("expected March, got %s", got)
	}
}

func TestDay(t *testing.T) {
	d := Day(time.Date(2024, time.March, 5, 23, 59, 59, 0, time.UTC))
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("expected %v, got %v", want, d)
	}
}
