// Package timeparse resolves natural-language scheduling text ("next monday
// at 6pm") into an absolute date and a canonical time-of-day string. Date
// and time are resolved independently and simply paired; the resolver never
// infers one from the other.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeOfDay is the caller default when no time pattern matches.
const DefaultTimeOfDay = "9:00 AM"

// Resolution holds the outcome of one Resolve call. Date falls back to the
// reference time when DateFound is false; TimeOfDay is empty when
// TimeFound is false.
type Resolution struct {
	Date      time.Time
	DateFound bool
	TimeOfDay string
	TimeFound bool
}

// TimeOrDefault returns the resolved time-of-day or the caller default.
func (r Resolution) TimeOrDefault() string {
	if r.TimeFound {
		return r.TimeOfDay
	}
	return DefaultTimeOfDay
}

// Resolve parses text against the fixed date and time rules. Both rule
// chains are first-match-wins.
func Resolve(text string, now time.Time) Resolution {
	msg := strings.ToLower(strings.TrimSpace(text))
	date, dateFound := resolveDate(msg, now)
	tod, timeFound := resolveTime(msg)
	return Resolution{
		Date:      date,
		DateFound: dateFound,
		TimeOfDay: tod,
		TimeFound: timeFound,
	}
}

var inDaysPattern = regexp.MustCompile(`in (\d+) days?`)

var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"sunday", time.Sunday},
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
}

var months = []struct {
	name    string
	month   time.Month
	pattern *regexp.Regexp
}{
	{name: "january", month: time.January},
	{name: "february", month: time.February},
	{name: "march", month: time.March},
	{name: "april", month: time.April},
	{name: "may", month: time.May},
	{name: "june", month: time.June},
	{name: "july", month: time.July},
	{name: "august", month: time.August},
	{name: "september", month: time.September},
	{name: "october", month: time.October},
	{name: "november", month: time.November},
	{name: "december", month: time.December},
}

func init() {
	for i := range months {
		months[i].pattern = regexp.MustCompile(months[i].name + ` (\d{1,2})`)
	}
}

func resolveDate(msg string, now time.Time) (time.Time, bool) {
	today := truncateToDay(now)

	// (a) "in N days"
	if m := inDaysPattern.FindStringSubmatch(msg); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return today.AddDate(0, 0, n), true
		}
	}

	// (b) "next <weekday>": always strictly future, never today.
	for _, wd := range weekdays {
		if strings.Contains(msg, "next "+wd.name) {
			return today.AddDate(0, 0, daysUntil(now.Weekday(), wd.day)), true
		}
	}

	// (c) "<month> <day>": this year, rolled to next year if already past.
	for _, mo := range months {
		if m := mo.pattern.FindStringSubmatch(msg); m != nil {
			day, err := strconv.Atoi(m[1])
			if err == nil && day >= 1 && day <= 31 {
				candidate := time.Date(now.Year(), mo.month, day, 0, 0, 0, 0, now.Location())
				if candidate.Before(today) {
					candidate = candidate.AddDate(1, 0, 0)
				}
				return candidate, true
			}
		}
	}

	// (d) bare weekday name, same strictly-future rule.
	for _, wd := range weekdays {
		if strings.Contains(msg, wd.name) {
			return today.AddDate(0, 0, daysUntil(now.Weekday(), wd.day)), true
		}
	}

	// (e)-(g) relative words.
	if strings.Contains(msg, "tomorrow") {
		return today.AddDate(0, 0, 1), true
	}
	if strings.Contains(msg, "today") {
		return today, true
	}
	if strings.Contains(msg, "next week") {
		return today.AddDate(0, 0, 7), true
	}

	// (h) no explicit date given.
	return today, false
}

// daysUntil computes the strictly-future distance to the target weekday:
// (target - current + 7) mod 7, with 0 meaning a full week ahead.
func daysUntil(current, target time.Weekday) int {
	diff := (int(target) - int(current) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return diff
}

// hourPattern maps the spoken and compact spellings of one clock hour to
// its canonical "H:MM AM/PM" form.
type hourPattern struct {
	variants  []string
	canonical string
}

// hourPatterns covers every hour from 6 AM to 10 PM. Double-digit hours
// come first so "11 am" is not swallowed by the "1 am" spelling.
var hourPatterns = buildHourPatterns()

func buildHourPatterns() []hourPattern {
	entry := func(h int, suffix string) hourPattern {
		return hourPattern{
			variants: []string{
				fmt.Sprintf("%d:00 %s", h, suffix),
				fmt.Sprintf("%d:00%s", h, suffix),
				fmt.Sprintf("%d %s", h, suffix),
				fmt.Sprintf("%d%s", h, suffix),
			},
			canonical: fmt.Sprintf("%d:00 %s", h, strings.ToUpper(suffix)),
		}
	}

	var out []hourPattern
	out = append(out, entry(10, "am"), entry(11, "am"), entry(12, "pm"), entry(10, "pm"))
	for h := 6; h <= 9; h++ {
		out = append(out, entry(h, "am"))
	}
	for h := 1; h <= 9; h++ {
		out = append(out, entry(h, "pm"))
	}
	return out
}

// offGridHours are double-digit hours outside the 6 AM to 10 PM grid.
// They must not be swallowed by a single-digit spelling ("11pm" contains
// "1pm") and their am/pm suffix must not trigger the period words.
var offGridHours = []string{
	"11:00 pm", "11:00pm", "11 pm", "11pm",
	"12:00 am", "12:00am", "12 am", "12am",
}

func resolveTime(msg string) (string, bool) {
	for _, v := range offGridHours {
		if strings.Contains(msg, v) {
			return "", false
		}
	}

	// (a) exact hour patterns.
	for _, hp := range hourPatterns {
		for _, v := range hp.variants {
			if strings.Contains(msg, v) {
				return hp.canonical, true
			}
		}
	}

	// (b) noon. "afternoon" contains "noon" and must not match here.
	if strings.Contains(msg, "noon") && !strings.Contains(msg, "afternoon") {
		return "12:00 PM", true
	}

	// (c) generic period words.
	if strings.Contains(msg, "morning") || strings.Contains(msg, "am") {
		return "9:00 AM", true
	}
	if strings.Contains(msg, "afternoon") || strings.Contains(msg, "pm") {
		return "2:00 PM", true
	}
	if strings.Contains(msg, "evening") || strings.Contains(msg, "night") {
		return "6:00 PM", true
	}

	// (d) nothing matched; the caller supplies the default.
	return "", false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseTimeLabel converts a canonical "H:MM AM/PM" label into hour and
// minute, falling back to 9:00 on malformed input. Used when combining a
// resolved date and time into a concrete event start.
func ParseTimeLabel(label string) (hour, minute int) {
	t, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(label)))
	if err != nil {
		return 9, 0
	}
	return t.Hour(), t.Minute()
}

// Combine applies a time-of-day label onto a date.
func Combine(date time.Time, label string) time.Time {
	h, m := ParseTimeLabel(label)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}
