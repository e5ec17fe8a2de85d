// Package dateutil holds the calendar helpers used to label projection years.
package dateutil

import "time"

// Age returns completed years between birthDate and atDate. A Feb 29 birthday
// counts from Mar 1 in non-leap years.
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	birthday := time.Date(atDate.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if time.Date(atDate.Year(), atDate.Month(), atDate.Day(), 0, 0, 0, 0, time.UTC).Before(birthday) {
		age--
	}
	return age
}

// ProjectionDate is January 1st of the calendar year yearIndex years after asOf
func ProjectionDate(asOf time.Time, yearIndex int) time.Time {
	return time.Date(asOf.Year()+yearIndex, time.January, 1, 0, 0, 0, 0, asOf.Location())
}

// ProjectionYear is the calendar year labelling yearIndex
func ProjectionYear(asOf time.Time, yearIndex int) int {
	return ProjectionDate(asOf, yearIndex).Year()
}
