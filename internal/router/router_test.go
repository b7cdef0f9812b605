package router_test

import (
	"testing"

	"popsicles-assistant/internal/router"
)

func TestClassify(t *testing.T) {
	r := router.New()

	tests := []struct {
		name    string
		message string
		want    router.Intent
	}{
		{"Create verb", "Create a meeting tomorrow at 2pm", router.IntentCreateTask},
		{"Schedule verb", "Schedule workout on Friday at 6am", router.IntentCreateTask},
		{"Noun keyword", "dentist appointment next monday", router.IntentCreateTask},
		{"Set up phrase", "set up a call with marketing", router.IntentCreateTask},
		{"Choice one", "1", router.IntentChoiceReply},
		{"Choice with period", " 3. ", router.IntentChoiceReply},
		{"Choice with paren", "2)", router.IntentChoiceReply},
		{"Out of range number", "4", router.IntentConversation},
		{"Small talk", "What's the weather?", router.IntentConversation},
		{"Keyword inside word does not fire", "send me your address", router.IntentConversation},
		{"Empty", "", router.IntentConversation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(tt.message)
			if got.Intent != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.message, got.Intent, tt.want)
			}
		})
	}
}

func TestParseChoice(t *testing.T) {
	if n, ok := router.ParseChoice("2"); !ok || n != 2 {
		t.Errorf("ParseChoice(2) = %d, %v", n, ok)
	}
	if _, ok := router.ParseChoice("22"); ok {
		t.Errorf("ParseChoice(22) should not parse")
	}
	if _, ok := router.ParseChoice("the second one"); ok {
		t.Errorf("ParseChoice(prose) should not parse")
	}
}
