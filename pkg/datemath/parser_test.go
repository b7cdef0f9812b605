package datemath_test

import (
	"testing"
	"time"

	"popsicles-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		utterance string
		want      time.Time
	}{
		{
			name:      "Empty input defaults to today",
			utterance: "",
			want:      today,
		},
		{
			name:      "Gibberish defaults to today",
			utterance: "qwerty asdf zxcv",
			want:      today,
		},
		{
			name:      "Today",
			utterance: "finish the report today",
			want:      today,
		},
		{
			name:      "Tomorrow",
			utterance: "create a meeting tomorrow at 2pm",
			want:      today.AddDate(0, 0, 1),
		},
		{
			name:      "Day after tomorrow",
			utterance: "plan lunch day after tomorrow",
			want:      today.AddDate(0, 0, 2),
		},
		{
			name:      "Next week",
			utterance: "schedule review next week",
			want:      today.AddDate(0, 0, 7),
		},
		{
			name:      "In 3 days",
			utterance: "remind me in 3 days",
			want:      today.AddDate(0, 0, 3),
		},
		{
			name:      "In 2 weeks",
			utterance: "book dentist in 2 weeks",
			want:      today.AddDate(0, 0, 14),
		},
		{
			name:      "Bare weekday resolves within the week",
			utterance: "schedule workout on friday",
			want:      today.AddDate(0, 0, 2), // Wed -> Fri
		},
		{
			name:      "Bare weekday equal to today stays today",
			utterance: "meeting on wednesday",
			want:      today,
		},
		{
			name:      "Bare weekday wraps past the weekend",
			utterance: "call mom on monday",
			want:      today.AddDate(0, 0, 5), // Wed -> next Mon
		},
		{
			name:      "Next weekday lands in the following week",
			utterance: "plan trip next monday",
			want:      today.AddDate(0, 0, 12), // Wed -> Mon after next
		},
		{
			name:      "Next weekday equal to today skips a week",
			utterance: "sync next wednesday",
			want:      today.AddDate(0, 0, 7),
		},
		{
			name:      "Coming weekday skips past this week's occurrence",
			utterance: "gym coming saturday",
			want:      today.AddDate(0, 0, 10), // Wed -> Sat next week
		},
		{
			name:      "Next week plus weekday",
			utterance: "review next week friday",
			want:      today.AddDate(0, 0, 9), // Wed -> Fri next week
		},
		{
			name:      "Day month year",
			utterance: "schedule meeting on 15th june 2025",
			want:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Month day year",
			utterance: "schedule meeting on june 15, 2025",
			want:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Numeric date with year",
			utterance: "deadline 6/15/2025",
			want:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Numeric date day-first when first number exceeds 12",
			utterance: "deadline 15/6/2025",
			want:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Numeric date without year in the future",
			utterance: "party on 6/15",
			want:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Numeric date without year already past rolls forward",
			utterance: "anniversary on 2/14",
			want:      time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "ISO date",
			utterance: "release on 2025-06-15",
			want:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Invalid calendar date falls through to default",
			utterance: "meet on 2/30/2025",
			want:      today,
		},
		{
			name:      "Explicit date wins over weekday mention",
			utterance: "meeting on monday 15th june 2025",
			want:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Resolve(tt.utterance, base)
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) got = %v, want %v", tt.utterance, got, tt.want)
			}
		})
	}
}

// Every weekday name must land on that weekday at most 7 days from the anchor.
func TestResolveWeekdayRoundTrip(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	weekdays := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	names := map[string]time.Weekday{
		"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
		"wednesday": time.Wednesday, "thursday": time.Thursday,
		"friday": time.Friday, "saturday": time.Saturday,
	}

	for _, name := range weekdays {
		got := parser.Resolve("on "+name, base)
		if got.Weekday() != names[name] {
			t.Errorf("Resolve(on %s) landed on %v", name, got.Weekday())
		}
		diff := got.Sub(base.Truncate(24 * time.Hour))
		if diff < 0 || diff > 7*24*time.Hour {
			t.Errorf("Resolve(on %s) is %v from anchor, want within 7 days", name, diff)
		}
	}
}

func TestResolveISO(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	got := parser.ResolveISO("tomorrow", base)
	if got != "2024-05-02" {
		t.Errorf("ResolveISO(tomorrow) = %q, want 2024-05-02", got)
	}

	if parser.ResolveISO("", base) != parser.ResolveISO("gibberish text", base) {
		t.Errorf("defaulting should be identical for empty and unrecognized input")
	}
}
