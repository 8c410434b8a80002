package models

import "time"

// monthNames holds the twelve canonical English month labels in calendar
// order. Budget periods store these labels, not month numbers.
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthSet = func() map[string]bool {
	set := make(map[string]bool, len(monthNames))
	for _, m := range monthNames {
		set[m] = true
	}
	return set
}()

// Months returns the twelve month labels in calendar order.
func Months() []string {
	return monthNames[:]
}

// MonthOf returns the canonical label for t's month.
func MonthOf(t time.Time) string {
	return t.Month().String()
}

// IsValidMonth reports whether label is one of the twelve month labels.
func IsValidMonth(label string) bool {
	return monthSet[label]
}
