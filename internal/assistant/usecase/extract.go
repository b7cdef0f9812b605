package usecase

import (
	"math/rand"
	"regexp"
	"strings"
	"time"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/pkg/timemath"
)

// titleRule maps an utterance keyword to a canonical task title. Rules
// are ordered so the more specific keyword wins ("doctor" before
// "appointment").
type titleRule struct {
	keyword string
	title   string
}

var titleRules = []titleRule{
	{"doctor", "Doctor Appointment"},
	{"dentist", "Dentist Appointment"},
	{"gym", "Gym Session"},
	{"workout", "Workout"},
	{"exercise", "Workout"},
	{"interview", "Interview"},
	{"meeting", "Meeting"},
	{"call", "Phone Call"},
	{"lunch", "Lunch"},
	{"dinner", "Dinner"},
	{"breakfast", "Breakfast"},
	{"coffee", "Coffee"},
	{"study", "Study Session"},
	{"class", "Class"},
	{"appointment", "Appointment"},
}

// colorRules group keywords into color families; unmatched utterances
// get a random palette entry.
var colorRules = []struct {
	keywords []string
	color    string
}{
	{[]string{"meeting", "call", "interview", "presentation"}, "task-pastel-blue"},
	{[]string{"workout", "gym", "exercise", "run", "yoga"}, "task-pastel-green"},
	{[]string{"lunch", "dinner", "breakfast", "coffee", "meal"}, "task-pastel-orange"},
	{[]string{"doctor", "dentist", "medical", "checkup"}, "task-pastel-pink"},
	{[]string{"study", "class", "exam", "homework", "read"}, "task-pastel-purple"},
}

var colorPalette = []string{
	"task-pastel-pink",
	"task-pastel-blue",
	"task-pastel-green",
	"task-pastel-yellow",
	"task-pastel-purple",
	"task-pastel-orange",
	"task-pastel-indigo",
	"task-pastel-teal",
}

var (
	reQuotedTitle = regexp.MustCompile(`"([^"]+)"`)
	reVerbPhrase  = regexp.MustCompile(`(?i)\b(?:create|add|schedule|book|plan|set\s*up|make)\b\s+(.+)`)
	reTitleStop   = regexp.MustCompile(`(?i)\b(?:at|on|for|from|by|in|tomorrow|today|tonight|next|coming|this|every|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	reHighPriority = regexp.MustCompile(`(?i)\b(?:urgent|important|asap)\b`)
	reLowPriority  = regexp.MustCompile(`(?i)\b(?:low\s+priority|when\s+possible|whenever)\b`)
)

// buildDraft turns one task-creation utterance into a complete draft.
// The caller has already gated the intent; buildDraft never fails.
func (uc *implUseCase) buildDraft(utterance string, today time.Time) model.TaskDraft {
	times := timemath.Resolve(utterance)

	return model.TaskDraft{
		Title:       extractTitle(utterance),
		Description: draftDescription,
		Date:        uc.dates.ResolveISO(utterance, today),
		StartTime:   times.Start,
		EndTime:     times.End,
		Priority:    inferPriority(utterance),
		Color:       pickColor(utterance),
	}
}

func extractTitle(utterance string) string {
	if m := reQuotedTitle.FindStringSubmatch(utterance); m != nil {
		if t := normalizeTitle(m[1]); t != "" {
			return t
		}
	}

	lower := strings.ToLower(utterance)
	for _, rule := range titleRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.title
		}
	}

	if m := reVerbPhrase.FindStringSubmatch(utterance); m != nil {
		phrase := m[1]
		if loc := reTitleStop.FindStringIndex(phrase); loc != nil {
			phrase = phrase[:loc[0]]
		}
		if t := normalizeTitle(phrase); t != "" {
			return t
		}
	}

	return "New Task"
}

// normalizeTitle trims, drops a leading article and capitalizes each word.
func normalizeTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ".,!?")

	words := strings.Fields(s)
	if len(words) > 0 {
		switch strings.ToLower(words[0]) {
		case "a", "an", "the":
			words = words[1:]
		}
	}
	if len(words) == 0 {
		return ""
	}

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func inferPriority(utterance string) model.Priority {
	switch {
	case reHighPriority.MatchString(utterance):
		return model.PriorityHigh
	case reLowPriority.MatchString(utterance):
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

func pickColor(utterance string) string {
	lower := strings.ToLower(utterance)
	for _, rule := range colorRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.color
			}
		}
	}
	return colorPalette[rand.Intn(len(colorPalette))]
}
