package cooking_test

import (
	"context"
	"testing"

	"integrated-bots/internal/bot/cooking"
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

func TestAnswer_TooShort(t *testing.T) {
	for _, q := range []string{"eggs", "", "  pasta  "} {
		llm := &countingCompleter{text: "unused"}
		bot := cooking.New(llm)

		got := bot.Answer(context.Background(), q)
		if got != cooking.FallbackMsg {
			t.Errorf("query %q: expected clarification fallback, got %q", q, got)
		}
		if llm.calls != 0 {
			t.Errorf("query %q: expected no backend call, got %d", q, llm.calls)
		}
	}
}

func TestAnswer_FullQuery(t *testing.T) {
	llm := &countingCompleter{text: "1) Ingredients...\n2) Steps...\n3) 20 minutes"}
	bot := cooking.New(llm)

	got := bot.Answer(context.Background(), "easy chicken curry")
	if got != llm.text {
		t.Errorf("unexpected reply: %q", got)
	}
	if llm.calls != 1 {
		t.Errorf("expected one backend call, got %d", llm.calls)
	}
}

func TestAnswer_EmptyCompletion(t *testing.T) {
	bot := cooking.New(&countingCompleter{text: ""})

	got := bot.Answer(context.Background(), "quick rice dish")
	if got != cooking.FallbackMsg {
		t.Errorf("expected fallback, got %q", got)
	}
}
