package router

import (
	"regexp"
	"strconv"
	"strings"
)

var reChoiceReply = regexp.MustCompile(`^\s*([123])\s*[.)]?\s*$`)

// Classify determines the intent of one utterance.
// A bare "1", "2" or "3" is a choice reply; anything containing a task
// keyword is a creation request; everything else is conversation.
func (r *KeywordRouter) Classify(message string) RouterOutput {
	if m := reChoiceReply.FindStringSubmatch(message); m != nil {
		return RouterOutput{Intent: IntentChoiceReply, Matched: m[1]}
	}

	lower := strings.ToLower(message)
	for _, kw := range taskKeywords {
		if containsWord(lower, kw) {
			return RouterOutput{Intent: IntentCreateTask, Matched: kw}
		}
	}

	return RouterOutput{Intent: IntentConversation}
}

// ParseChoice extracts the numeric option from a choice reply.
func ParseChoice(message string) (int, bool) {
	m := reChoiceReply.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	return n, true
}

// containsWord reports whether text contains kw bounded by non-letters,
// so "add" does not fire on "address".
func containsWord(text, kw string) bool {
	for idx := strings.Index(text, kw); idx >= 0; {
		before := idx == 0 || !isLetter(text[idx-1])
		afterIdx := idx + len(kw)
		after := afterIdx >= len(text) || !isLetter(text[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], kw)
		if next < 0 {
			return false
		}
		idx = idx + 1 + next
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
