package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// KST is the fixed timezone every extracted timestamp carries.
var KST = loadKST()

func loadKST() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// relativeDays maps relative-day tokens to their offset from "now".
var relativeDays = map[string]int{
	"오늘": 0,
	"내일": 1,
	"모레": 2,
	"글피": 3,
}

const (
	datePart = `(?:(\d{4})\s*[년.\-/]\s*)?(\d{1,2})\s*[월.\-/]\s*(\d{1,2})\s*일?`
	relPart  = `(오늘|내일|모레|글피)`
	timePart = `(\d{1,2})\s*:\s*(\d{2})(?:\s*(AM|PM))?`
)

// searchPattern finds date-and-time, date-only, relative-day and time-only
// spans over normalized text. Group layout:
//
//	1-3  year/month/day    7     relative-day token
//	4-6  hour/minute/mer   8-10  hour/minute/mer after relative day
//	                       11-13 bare hour/minute/mer
var searchPattern = regexp.MustCompile(
	datePart + `(?:\s*` + timePart + `)?` +
		`|` + relPart + `(?:\s*` + timePart + `)?` +
		`|` + timePart,
)

// DateMatch is one temporal span found by SearchDates.
type DateMatch struct {
	Raw     string
	Time    time.Time
	HasDate bool // explicit date or relative-day token present
}

// SearchDates scans normalized text for temporal expressions and resolves
// each to a timezone-aware timestamp in KST. Ambiguous dates (no year) prefer
// the future. Time-only spans default to the calendar date of now. Spans that
// do not resolve to a valid timestamp are skipped, not reported as errors.
func SearchDates(text string, now time.Time) []DateMatch {
	now = now.In(KST)

	var matches []DateMatch
	for _, groups := range searchPattern.FindAllStringSubmatch(text, -1) {
		if m, ok := resolveMatch(groups, now); ok {
			matches = append(matches, m)
		}
	}
	return matches
}

func resolveMatch(groups []string, now time.Time) (DateMatch, bool) {
	raw := strings.TrimSpace(groups[0])

	switch {
	case groups[2] != "": // explicit date
		year, hasYear := 0, groups[1] != ""
		if hasYear {
			year, _ = strconv.Atoi(groups[1])
		} else {
			year = now.Year()
		}
		month, _ := strconv.Atoi(groups[2])
		day, _ := strconv.Atoi(groups[3])

		hour, minute, ok := resolveClock(groups[4], groups[5], groups[6])
		if !ok {
			return DateMatch{}, false
		}

		ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, KST)
		if ts.Month() != time.Month(month) || ts.Day() != day {
			return DateMatch{}, false
		}
		if !hasYear && ts.Before(now) {
			ts = ts.AddDate(1, 0, 0)
		}
		return DateMatch{Raw: raw, Time: ts, HasDate: true}, true

	case groups[7] != "": // relative day
		hour, minute, ok := resolveClock(groups[8], groups[9], groups[10])
		if !ok {
			return DateMatch{}, false
		}
		base := now.AddDate(0, 0, relativeDays[groups[7]])
		ts := time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, KST)
		return DateMatch{Raw: raw, Time: ts, HasDate: true}, true

	default: // time only, today in KST
		hour, minute, ok := resolveClock(groups[11], groups[12], groups[13])
		if !ok || groups[11] == "" {
			return DateMatch{}, false
		}
		ts := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, KST)
		return DateMatch{Raw: raw, Time: ts, HasDate: false}, true
	}
}

// resolveClock turns captured hour/minute/meridiem strings into 24-hour
// values. An absent clock yields midnight.
func resolveClock(hourStr, minuteStr, meridiem string) (hour, minute int, ok bool) {
	if hourStr == "" {
		return 0, 0, true
	}
	hour, _ = strconv.Atoi(hourStr)
	minute, _ = strconv.Atoi(minuteStr)
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	switch meridiem {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, true
}
