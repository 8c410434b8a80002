package models

// Categories is the fixed set of expense category labels. "Other" is the
// catch-all for anything that doesn't fit the named labels.
var Categories = []string{
	"Food",
	"Bills",
	"Construction Materials",
	"Apartment Maintenance",
	"Travel",
	"Entertainment",
	"Transportation",
	"Health & Fitness",
	"Personal Care",
	"Education",
	"Gifts & Donations",
	"Household Supplies",
	"Other",
}

var categorySet = func() map[string]bool {
	set := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		set[c] = true
	}
	return set
}()

// IsValidCategory reports whether label is one of the fixed category labels.
func IsValidCategory(label string) bool {
	return categorySet[label]
}
