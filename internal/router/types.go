package router

// Intent represents the user's intention for one utterance.
type Intent string

const (
	IntentCreateTask   Intent = "CREATE_TASK"
	IntentChoiceReply  Intent = "CHOICE_REPLY"
	IntentConversation Intent = "CONVERSATION"
)

// RouterOutput is the classification result.
type RouterOutput struct {
	Intent  Intent
	Matched string // the keyword or token that decided the intent, if any
}
