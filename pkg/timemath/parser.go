package timemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Range is a start/end pair of 24-hour clock times, "HH:MM" zero-padded so
// lexicographic comparison matches chronological order.
type Range struct {
	Start string
	End   string
}

// DefaultStart is used when an utterance carries no recognizable time cue.
const DefaultStart = "09:00"

var (
	// Date-shaped substrings are removed before time matching so "6/15/2025"
	// or "2025-06-15" never reads as a clock time or a range.
	reDateLike = regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b|\b\d{1,2}/\d{1,2}(?:/\d{4})?\b`)

	reTimeRange  = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*(?:-|–|to)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
	reSingleTime = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	re24Hour     = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
)

// Resolve maps a free-text utterance to a start/end clock pair.
// Recognition order: explicit range, single time with meridiem, bare 24-hour
// HH:MM, then the 09:00 default. Unless the utterance spells out an end, the
// end is exactly one hour after the start. Never fails, and End is always
// after Start (ranges that would cross midnight clamp at 23:59).
func Resolve(utterance string) Range {
	text := reDateLike.ReplaceAllString(strings.ToLower(utterance), " ")

	if r, ok := resolveRange(text); ok {
		return r
	}
	if r, ok := resolveSingle(text); ok {
		return r
	}
	if r, ok := resolve24Hour(text); ok {
		return r
	}
	return Range{Start: DefaultStart, End: addHour(9, 0)}
}

// resolveRange handles "2 - 3 pm", "10am to 11am", "14:00 - 15:30".
// When only one end carries a meridiem, both ends share it.
func resolveRange(text string) (Range, bool) {
	m := reTimeRange.FindStringSubmatch(text)
	if m == nil {
		return Range{}, false
	}

	startHour, _ := strconv.Atoi(m[1])
	endHour, _ := strconv.Atoi(m[4])
	startMin := minutesOf(m[2])
	endMin := minutesOf(m[5])
	startMeridiem, endMeridiem := m[3], m[6]

	if startMeridiem == "" {
		startMeridiem = endMeridiem
	}
	if endMeridiem == "" {
		endMeridiem = startMeridiem
	}

	startHour, okStart := toClockHour(startHour, startMeridiem)
	endHour, okEnd := toClockHour(endHour, endMeridiem)
	if !okStart || !okEnd {
		return Range{}, false
	}

	// "9 to 1 pm" reads as 09:00-13:00, not a backwards pm-pm range. Only a
	// start that inherited its meridiem moves; an explicit "11 pm - 1 am"
	// keeps its 23:00 start and clamps below.
	if m[3] == "" && lessOrEqual(endHour, endMin, startHour, startMin) && startHour >= 12 {
		startHour -= 12
	}

	start := clock(startHour, startMin)
	end := clock(endHour, endMin)
	if end <= start {
		end = addHour(startHour, startMin)
	}
	return Range{Start: start, End: end}, true
}

// resolveSingle handles one time with a meridiem: "2pm", "7:30 am".
func resolveSingle(text string) (Range, bool) {
	m := reSingleTime.FindStringSubmatch(text)
	if m == nil {
		return Range{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	min := minutesOf(m[2])
	hour, ok := toClockHour(hour, m[3])
	if !ok {
		return Range{}, false
	}

	return Range{Start: clock(hour, min), End: addHour(hour, min)}, true
}

// resolve24Hour handles a bare "HH:MM" with no meridiem.
func resolve24Hour(text string) (Range, bool) {
	m := re24Hour.FindStringSubmatch(text)
	if m == nil {
		return Range{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return Range{Start: clock(hour, min), End: addHour(hour, min)}, true
}

// toClockHour converts an hour plus optional meridiem to 24-hour form.
// "pm" adds 12 except for 12pm; "12am" is midnight.
func toClockHour(hour int, meridiem string) (int, bool) {
	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return 0, false
		}
		return hour, true
	case "am":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
		return hour, true
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
		return hour, true
	}
	return 0, false
}

func minutesOf(s string) int {
	if s == "" {
		return 0
	}
	m, _ := strconv.Atoi(s)
	return m
}

func clock(hour, min int) string {
	return fmt.Sprintf("%02d:%02d", hour, min)
}

// addHour returns the time one hour later, clamped to 23:59 so a late start
// never produces a wrapped end before its own start.
func addHour(hour, min int) string {
	if hour >= 23 {
		return "23:59"
	}
	return clock(hour+1, min)
}

func lessOrEqual(h1, m1, h2, m2 int) bool {
	return h1 < h2 || (h1 == h2 && m1 <= m2)
}
