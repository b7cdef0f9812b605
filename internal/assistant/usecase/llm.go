package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"popsicles-assistant/internal/assistant"
	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/task"
	"popsicles-assistant/pkg/datemath"
)

// reActionMarker matches the structured-action marker the generator may
// embed in its reply, e.g. "ACTION:CREATE".
var reActionMarker = regexp.MustCompile(`(?m)^\s*ACTION:(CREATE|EDIT|DELETE)\b`)

// actionPayload is the JSON block following an ACTION marker. All
// fields are optional; missing ones fall back to parsed defaults.
// EDIT/DELETE payloads identify the target via taskId and may nest
// their field updates under "changes".
type actionPayload struct {
	ID          string         `json:"id"`
	TaskID      string         `json:"taskId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        string         `json:"date"`
	StartTime   string         `json:"startTime"`
	EndTime     string         `json:"endTime"`
	Priority    string         `json:"priority"`
	Color       string         `json:"color"`
	Completed   *bool          `json:"completed"`
	Changes     *actionPayload `json:"changes"`
}

func (p actionPayload) targetID() string {
	if p.ID != "" {
		return p.ID
	}
	return p.TaskID
}

// flatten folds a nested "changes" object into the top-level fields.
func (p actionPayload) flatten() actionPayload {
	if p.Changes == nil {
		return p
	}
	c := *p.Changes
	if c.Title != "" {
		p.Title = c.Title
	}
	if c.Description != "" {
		p.Description = c.Description
	}
	if c.Date != "" {
		p.Date = c.Date
	}
	if c.StartTime != "" {
		p.StartTime = c.StartTime
	}
	if c.EndTime != "" {
		p.EndTime = c.EndTime
	}
	if c.Priority != "" {
		p.Priority = c.Priority
	}
	if c.Color != "" {
		p.Color = c.Color
	}
	if c.Completed != nil {
		p.Completed = c.Completed
	}
	return p
}

// handleGenerated delegates the utterance to the text-generation
// collaborator and applies any structured action embedded in its reply.
// Generator failures degrade to a fixed apology; malformed payloads
// degrade to showing the reply text with marker lines stripped.
func (uc *implUseCase) handleGenerated(ctx context.Context, sc model.Scope, key, msg string) (assistant.ChatOutput, error) {
	tasks, err := uc.taskUC.List(ctx, sc, task.ListInput{})
	if err != nil {
		uc.l.Warnf(ctx, "%s: taskUC.List for generator context: %v", logPrefixHandleMessage, err)
		tasks = nil
	}

	reply, err := uc.gen.Generate(ctx, msg, tasks, uc.now().Format(datemath.ISOFormat))
	if err != nil {
		uc.l.Warnf(ctx, "%s: generator: %v", logPrefixHandleMessage, err)
		return assistant.ChatOutput{Reply: msgGenerateFailed}, nil
	}

	marker := reActionMarker.FindStringSubmatchIndex(reply)
	if marker == nil {
		return assistant.ChatOutput{Reply: strings.TrimSpace(reply)}, nil
	}

	verb := reply[marker[2]:marker[3]]
	text := stripAction(reply)

	payloadText := extractJSONBlock(reply[marker[1]:])
	if payloadText == "" {
		return assistant.ChatOutput{Reply: text}, nil
	}
	var p actionPayload
	if err := json.Unmarshal([]byte(payloadText), &p); err != nil {
		uc.l.Debugf(ctx, "%s: malformed action payload: %v", logPrefixHandleMessage, err)
		return assistant.ChatOutput{Reply: text}, nil
	}

	switch verb {
	case "CREATE":
		out, err := uc.checkAndCommit(ctx, sc, key, uc.draftFromPayload(msg, p))
		if err != nil {
			return out, err
		}
		if text != "" && !out.AwaitingChoice {
			out.Reply = text
		}
		return out, nil
	case "EDIT":
		return uc.applyEdit(ctx, sc, text, p)
	case "DELETE":
		return uc.applyDelete(ctx, sc, text, p)
	}

	return assistant.ChatOutput{Reply: text}, nil
}

// draftFromPayload overlays the payload onto the rule-parsed draft so
// missing fields keep the documented defaults.
func (uc *implUseCase) draftFromPayload(msg string, p actionPayload) model.TaskDraft {
	draft := uc.buildDraft(msg, uc.now())

	if p.Title != "" {
		draft.Title = p.Title
	}
	if p.Description != "" {
		draft.Description = p.Description
	}
	if p.Date != "" {
		draft.Date = p.Date
	}
	if p.StartTime != "" {
		draft.StartTime = p.StartTime
	}
	if p.EndTime != "" {
		draft.EndTime = p.EndTime
	}
	if pr := model.Priority(p.Priority); pr.Valid() {
		draft.Priority = pr
	}
	if p.Color != "" {
		draft.Color = p.Color
	}
	return draft
}

func (uc *implUseCase) applyEdit(ctx context.Context, sc model.Scope, text string, p actionPayload) (assistant.ChatOutput, error) {
	id := p.targetID()
	if id == "" {
		return assistant.ChatOutput{Reply: text}, nil
	}
	p = p.flatten()

	input := task.UpdateInput{ID: id, Completed: p.Completed}
	if p.Title != "" {
		input.Title = &p.Title
	}
	if p.Description != "" {
		input.Description = &p.Description
	}
	if p.Date != "" {
		input.Date = &p.Date
	}
	if p.StartTime != "" {
		input.StartTime = &p.StartTime
	}
	if p.EndTime != "" {
		input.EndTime = &p.EndTime
	}
	if pr := model.Priority(p.Priority); pr.Valid() {
		input.Priority = &pr
	}
	if p.Color != "" {
		input.Color = &p.Color
	}

	updated, err := uc.taskUC.Update(ctx, sc, input)
	if err != nil {
		uc.l.Warnf(ctx, "%s: taskUC.Update: %v", logPrefixHandleMessage, err)
		return assistant.ChatOutput{Reply: text}, nil
	}
	return assistant.ChatOutput{Reply: text, Task: &updated}, nil
}

func (uc *implUseCase) applyDelete(ctx context.Context, sc model.Scope, text string, p actionPayload) (assistant.ChatOutput, error) {
	id := p.targetID()
	if id == "" {
		return assistant.ChatOutput{Reply: text}, nil
	}
	if err := uc.taskUC.Delete(ctx, sc, id); err != nil {
		uc.l.Warnf(ctx, "%s: taskUC.Delete: %v", logPrefixHandleMessage, err)
	}
	return assistant.ChatOutput{Reply: text}, nil
}

// stripAction removes every ACTION marker line and its JSON block from the
// generated reply, leaving only the conversational text.
func stripAction(reply string) string {
	for {
		m := reActionMarker.FindStringIndex(reply)
		if m == nil {
			return strings.TrimSpace(reply)
		}

		before := reply[:m[0]]
		rest := reply[m[1]:]
		if block := extractJSONBlock(rest); block != "" {
			idx := strings.Index(rest, block)
			rest = rest[idx+len(block):]
		} else if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		} else {
			rest = ""
		}

		reply = before + rest
	}
}
