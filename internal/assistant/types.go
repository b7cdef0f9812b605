package assistant

import "popsicles-assistant/internal/model"

// ChatInput is one user utterance.
type ChatInput struct {
	Message string
}

// ChatOutput is the assistant's reply to one utterance.
// Task is non-nil when the exchange committed a task as a side effect.
// AwaitingChoice reports that the assistant is holding a pending draft
// and expects a numbered reply (1, 2 or 3) next.
type ChatOutput struct {
	Reply          string
	Task           *model.Task
	AwaitingChoice bool
}
