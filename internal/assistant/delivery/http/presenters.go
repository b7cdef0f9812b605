package http

import (
	"popsicles-assistant/internal/assistant"
)

type chatReq struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{Message: r.Message}
}

type chatTaskResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Priority    string `json:"priority"`
	Color       string `json:"color"`
	Completed   bool   `json:"completed"`
}

type chatResp struct {
	Reply          string        `json:"reply"`
	Task           *chatTaskResp `json:"task,omitempty"`
	AwaitingChoice bool          `json:"awaitingChoice"`
}

func newChatResp(out assistant.ChatOutput) chatResp {
	resp := chatResp{
		Reply:          out.Reply,
		AwaitingChoice: out.AwaitingChoice,
	}
	if out.Task != nil {
		resp.Task = &chatTaskResp{
			ID:          out.Task.ID,
			Title:       out.Task.Title,
			Description: out.Task.Description,
			Date:        out.Task.Date,
			StartTime:   out.Task.StartTime,
			EndTime:     out.Task.EndTime,
			Priority:    string(out.Task.Priority),
			Color:       out.Task.Color,
			Completed:   out.Task.Completed,
		}
	}
	return resp
}
