package router

// taskKeywords gate whether an utterance is treated as a task-creation
// request at all. An utterance containing none of these falls through to
// plain conversation.
var taskKeywords = []string{
	"create",
	"add",
	"schedule",
	"book",
	"plan",
	"set up",
	"setup",
	"make",
	"meeting",
	"appointment",
	"task",
	"reminder",
	"remind",
	"event",
}
