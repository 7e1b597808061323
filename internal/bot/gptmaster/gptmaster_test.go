package gptmaster_test

import (
	"context"
	"testing"

	"integrated-bots/internal/bot/gptmaster"
)

type countingCompleter struct {
	text  string
	calls int
}

func (c *countingCompleter) Text(ctx context.Context, prompt string) string {
	c.calls++
	return c.text
}

func (c *countingCompleter) JSON(ctx context.Context, prompt string) map[string]any {
	c.calls++
	return nil
}

func TestAnswer(t *testing.T) {
	t.Run("Completion Passthrough", func(t *testing.T) {
		llm := &countingCompleter{text: "Step 1: define the problem."}
		bot := gptmaster.New(llm)

		got := bot.Answer(context.Background(), "how do I learn distributed systems?")
		if got != llm.text {
			t.Errorf("unexpected reply: %q", got)
		}
		if llm.calls != 1 {
			t.Errorf("expected one backend call, got %d", llm.calls)
		}
	})

	t.Run("Empty Completion", func(t *testing.T) {
		bot := gptmaster.New(&countingCompleter{text: ""})

		got := bot.Answer(context.Background(), "help me plan")
		if got != gptmaster.FallbackMsg {
			t.Errorf("expected fallback, got %q", got)
		}
	})
}
