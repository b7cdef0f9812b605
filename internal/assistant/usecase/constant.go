package usecase

// Provenance note attached to tasks committed by the assistant.
const draftDescription = "Created via assistant"

// User-facing messages.
const (
	msgGenericReply = "I can help you schedule tasks! Try something like " +
		`"Create a meeting tomorrow at 2pm" or "Schedule workout on Friday at 6am".`

	// args: title, date, start, end
	msgTaskCreated = `Done! I've scheduled "%s" on %s from %s to %s.`

	// args: conflicting title, start, end
	msgConflictPrompt = `That time conflicts with "%s" (%s - %s). What would you like to do?
1. Schedule the new task at a different time
2. Move the existing task
3. Create it anyway (overlap accepted)`

	msgInvalidChoice = "Please reply with 1, 2 or 3 so I know how to resolve the conflict."

	msgMoveUnsupported = "Moving the existing task isn't supported yet, so I found a free slot for the new one instead. "

	msgGenerateFailed = "Sorry, I couldn't process that right now. Please try again in a moment."
)

// Log prefixes.
const (
	logPrefixHandleMessage   = "internal.assistant.usecase.HandleMessage"
	logPrefixCleanupSessions = "internal.assistant.usecase.cleanupExpiredSessions"
)
