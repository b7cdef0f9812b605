package usecase

import (
	"context"
	"fmt"
	"strings"

	"popsicles-assistant/internal/assistant"
	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/router"
	"popsicles-assistant/internal/task"
)

// HandleMessage processes one user utterance and produces a reply,
// possibly committing a task as a side effect.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	key := sc.SessionID
	if key == "" {
		key = sc.UserID
	}

	// A pending conflict takes over the turn. A numbered reply resolves
	// it; a fresh creation request overrides it; anything else re-prompts.
	if s := uc.getSession(key); s.awaitingChoice() {
		if choice, ok := router.ParseChoice(msg); ok {
			return uc.resolveChoice(ctx, sc, key, *s.Pending, s.Conflict, choice)
		}
		if out := uc.router.Classify(msg); out.Intent == router.IntentCreateTask {
			uc.l.Debugf(ctx, "%s: new request overrides pending conflict for session %s", logPrefixHandleMessage, key)
			uc.clearSession(key)
		} else {
			uc.touchSession(key)
			return assistant.ChatOutput{Reply: msgInvalidChoice, AwaitingChoice: true}, nil
		}
	}

	if uc.mode == ModeLLM {
		return uc.handleGenerated(ctx, sc, key, msg)
	}

	if out := uc.router.Classify(msg); out.Intent == router.IntentCreateTask {
		return uc.handleCreate(ctx, sc, key, msg)
	}

	return assistant.ChatOutput{Reply: msgGenericReply}, nil
}

func (uc *implUseCase) handleCreate(ctx context.Context, sc model.Scope, key, msg string) (assistant.ChatOutput, error) {
	draft := uc.buildDraft(msg, uc.now())
	return uc.checkAndCommit(ctx, sc, key, draft)
}

// checkAndCommit runs the draft through conflict detection and either
// commits it or parks it in the session awaiting a choice.
func (uc *implUseCase) checkAndCommit(ctx context.Context, sc model.Scope, key string, draft model.TaskDraft) (assistant.ChatOutput, error) {
	existing, err := uc.taskUC.List(ctx, sc, task.ListInput{Date: draft.Date})
	if err != nil {
		uc.l.Errorf(ctx, "%s: taskUC.List: %v", logPrefixHandleMessage, err)
		return assistant.ChatOutput{}, err
	}

	if conflicts := findConflicts(draft, existing); len(conflicts) > 0 {
		first := conflicts[0]
		uc.setPending(key, draft, first)
		reply := fmt.Sprintf(msgConflictPrompt, first.Title, first.StartTime, first.EndTime)
		return assistant.ChatOutput{Reply: reply, AwaitingChoice: true}, nil
	}

	return uc.commitDraft(ctx, sc, draft, "")
}

// resolveChoice applies a 1/2/3 reply to the pending draft. The session
// is cleared only after a successful commit so a store failure leaves
// the dialogue resumable.
func (uc *implUseCase) resolveChoice(ctx context.Context, sc model.Scope, key string, draft model.TaskDraft, conflict model.Task, choice int) (assistant.ChatOutput, error) {
	var prefix string
	switch choice {
	case 1:
		draft = alternativeSlot(draft, conflict)
	case 2:
		draft = alternativeSlot(draft, conflict)
		prefix = msgMoveUnsupported
	case 3:
		// committed as-is, overlap accepted
	}

	out, err := uc.commitDraft(ctx, sc, draft, prefix)
	if err != nil {
		return out, err
	}

	uc.clearSession(key)
	return out, nil
}

func (uc *implUseCase) commitDraft(ctx context.Context, sc model.Scope, draft model.TaskDraft, prefix string) (assistant.ChatOutput, error) {
	created, err := uc.taskUC.Create(ctx, sc, task.CreateInput{
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Priority:    draft.Priority,
		Color:       draft.Color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: taskUC.Create: %v", logPrefixHandleMessage, err)
		return assistant.ChatOutput{}, err
	}

	reply := prefix + fmt.Sprintf(msgTaskCreated, created.Title, created.Date, created.StartTime, created.EndTime)
	return assistant.ChatOutput{Reply: reply, Task: &created}, nil
}
