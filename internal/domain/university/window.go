package university

import "time"

// YearWindow returns the half-open interval [Jan 1 year, Jan 1 year+1) in
// local time. No timezone normalization is applied; lecture date-times are
// compared as stored.
func YearWindow(year int) (from, to time.Time) {
	from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	return from, from.AddDate(1, 0, 0)
}

// MonthWindow returns the half-open interval covering the given calendar
// month. Month values are 1–12; the caller validates the range.
func MonthWindow(month, year int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return from, from.AddDate(0, 1, 0)
}
