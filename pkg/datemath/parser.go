package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves free-text date phrases to concrete calendar dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	reDayMonthYear = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{4})\b`)
	reMonthDayYear = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
	reNumericDate  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}))?\b`)
	reISODate      = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	reWeekday      = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	reNextWeekday  = regexp.MustCompile(`\b(?:next|coming)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	reInDays       = regexp.MustCompile(`\bin\s+(\d+)\s+days?\b`)
	reInWeeks      = regexp.MustCompile(`\bin\s+(\d+)\s+weeks?\b`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

var weekdaysByName = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
}

// Resolve maps a free-text utterance to a calendar date anchored at base.
// Cues are tried in priority order: explicit dates, weekday phrases, relative
// day words, relative spans. It never fails — unrecognizable input resolves
// to base's own date.
func (p *Parser) Resolve(utterance string, base time.Time) time.Time {
	text := strings.ToLower(utterance)
	today := p.startOfDay(base)

	if d, ok := p.resolveExplicit(text, today); ok {
		return d
	}
	if d, ok := p.resolveWeekday(text, today); ok {
		return d
	}
	if d, ok := p.resolveRelativeDay(text, today); ok {
		return d
	}
	if d, ok := p.resolveSpan(text, today); ok {
		return d
	}
	return today
}

// resolveExplicit handles absolute date patterns: "15th june 2025",
// "june 15, 2025", "6/15" or "6/15/2025", and "2025-06-15".
// Numeric dates read the first number as the month unless it exceeds 12.
func (p *Parser) resolveExplicit(text string, today time.Time) (time.Time, bool) {
	if m := reDayMonthYear.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		if d, ok := p.makeDate(year, monthsByName[m[2]], day); ok {
			return d, true
		}
	}

	if m := reMonthDayYear.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if d, ok := p.makeDate(year, monthsByName[m[1]], day); ok {
			return d, true
		}
	}

	if m := reNumericDate.FindStringSubmatch(text); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		month, day := first, second
		if first > 12 {
			month, day = second, first
		}

		if m[3] != "" {
			year, _ := strconv.Atoi(m[3])
			if d, ok := p.makeDate(year, time.Month(month), day); ok {
				return d, true
			}
		} else if d, ok := p.makeDate(today.Year(), time.Month(month), day); ok {
			// No year given: a date already behind us means next year.
			if d.Before(today) {
				d = d.AddDate(1, 0, 0)
			}
			return d, true
		}
	}

	if m := reISODate.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if d, ok := p.makeDate(year, time.Month(month), day); ok {
			return d, true
		}
	}

	return time.Time{}, false
}

// resolveWeekday handles the two weekday tiers.
// "next friday" / "coming friday" anchors at today+7 and resolves the weekday
// from there, so it always lands in the following week — even when the named
// weekday is still ahead in the current one.
// A bare weekday mention resolves to the next equal-or-future occurrence, so
// naming today's weekday means today.
func (p *Parser) resolveWeekday(text string, today time.Time) (time.Time, bool) {
	if m := reNextWeekday.FindStringSubmatch(text); m != nil {
		return today.AddDate(0, 0, daysIntoNextWeek(today.Weekday(), weekdaysByName[m[1]])), true
	}

	// "next week friday" carries the next-week anchor too.
	if strings.Contains(text, "next week") {
		if m := reWeekday.FindStringSubmatch(text); m != nil {
			return today.AddDate(0, 0, daysIntoNextWeek(today.Weekday(), weekdaysByName[m[1]])), true
		}
	}

	if m := reWeekday.FindStringSubmatch(text); m != nil {
		target := weekdaysByName[m[1]]
		days := (int(target) - int(today.Weekday()) + 7) % 7
		return today.AddDate(0, 0, days), true
	}

	return time.Time{}, false
}

// daysIntoNextWeek is the offset to target's occurrence in the week after the
// current one: at least 7, at most 13.
func daysIntoNextWeek(current, target time.Weekday) int {
	return 7 + (int(target)-int(current)+7)%7
}

func (p *Parser) resolveRelativeDay(text string, today time.Time) (time.Time, bool) {
	switch {
	case strings.Contains(text, "day after tomorrow"):
		return today.AddDate(0, 0, 2), true
	case strings.Contains(text, "tomorrow"):
		return today.AddDate(0, 0, 1), true
	case strings.Contains(text, "today"):
		return today, true
	}
	return time.Time{}, false
}

func (p *Parser) resolveSpan(text string, today time.Time) (time.Time, bool) {
	if strings.Contains(text, "next week") {
		return today.AddDate(0, 0, 7), true
	}
	if m := reInDays.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return today.AddDate(0, 0, n), true
	}
	if m := reInWeeks.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return today.AddDate(0, 0, n*7), true
	}
	return time.Time{}, false
}

// makeDate builds a date and rejects values that time.Date would normalize
// away (e.g. February 30th).
func (p *Parser) makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
