package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/pkg/gemini"
)

// GeminiGenerator implements Generator on top of the Gemini client.
type GeminiGenerator struct {
	client *gemini.Client
}

var _ Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a Gemini-backed text generator.
func NewGeminiGenerator(client *gemini.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

// Generate sends the user message with current task context to Gemini
// and returns the raw generated text.
func (g *GeminiGenerator) Generate(ctx context.Context, message string, tasks []model.Task, currentDate string) (string, error) {
	prompt := gemini.BuildAssistantPrompt(message, taskContext(tasks), currentDate)

	resp, err := g.client.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{{Parts: []gemini.Part{{Text: prompt}}}},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 1024,
		},
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty generation response")
	}
	return text, nil
}

func taskContext(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "No current tasks."
	}

	var b strings.Builder
	b.WriteString("Current tasks:\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s [%s] (%s %s-%s, Priority: %s)\n",
			t.Title, t.ID, t.Date, t.StartTime, t.EndTime, t.Priority)
	}
	return strings.TrimRight(b.String(), "\n")
}
