package models

import "time"

// ExpenseFilters narrows an owner-scoped aggregation query.
// From and To are inclusive calendar dates; Columns limits the selected fields.
type ExpenseFilters struct {
	From         time.Time
	To           time.Time
	MinRiskScore *int
	Columns      []string
}

// YearRange returns Jan 1 and Dec 31 of the given year in UTC
func YearRange(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return from, to
}
