package policy

import (
	"strconv"
	"strings"
	"time"
)

var weekdayOffsets = map[string]int{
	"Mon": 0, "Tue": 1, "Wed": 2, "Thu": 3, "Fri": 4, "Sat": 5, "Sun": 6,
}

// ReportIsLate decides whether a report for ISO week weekNum (YYYYWW) missed
// the submission deadline. The deadline is the raw "report.deadline" setting
// value in the form "Fri 17:00"; when it is empty or unparseable no deadline
// applies and nothing is late, which is the shipped default.
func ReportIsLate(submitted time.Time, weekNum int, deadline string) bool {
	cutoff, ok := weekDeadline(weekNum, deadline, submitted.Location())
	if !ok {
		return false
	}
	return submitted.After(cutoff)
}

// weekDeadline resolves a "Fri 17:00" style rule to a concrete instant within
// the given ISO week.
func weekDeadline(weekNum int, deadline string, loc *time.Location) (time.Time, bool) {
	fields := strings.Fields(deadline)
	if len(fields) != 2 {
		return time.Time{}, false
	}
	dayOffset, ok := weekdayOffsets[fields[0]]
	if !ok {
		return time.Time{}, false
	}
	hhmm := strings.SplitN(fields[1], ":", 2)
	if len(hhmm) != 2 {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(hhmm[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(hhmm[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, false
	}

	year, week := weekNum/100, weekNum%100
	if week < 1 || week > 53 {
		return time.Time{}, false
	}
	day := firstDayOfISOWeek(year, week, loc).AddDate(0, 0, dayOffset)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), true
}

// firstDayOfISOWeek returns the Monday of the given ISO week. January 4th is
// always inside week 1.
func firstDayOfISOWeek(year, week int, loc *time.Location) time.Time {
	t := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, -1)
	}
	return t.AddDate(0, 0, (week-1)*7)
}
