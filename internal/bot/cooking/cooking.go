package cooking

import (
	"context"
	"strings"

	"integrated-bots/pkg/completion"
)

// Bot produces structured recipes.
type Bot struct {
	llm completion.Completer
}

// New creates the cooking bot.
func New(llm completion.Completer) *Bot {
	return &Bot{llm: llm}
}

// Answer asks for clarification on too-sparse input, otherwise runs the
// prompted completion. It always returns a non-empty reply.
func (b *Bot) Answer(ctx context.Context, query string) string {
	if len(strings.Fields(query)) < minQueryWords {
		return FallbackMsg
	}

	out := b.llm.Text(ctx, buildPrompt(query))
	if out == "" {
		return FallbackMsg
	}
	return out
}

func buildPrompt(query string) string {
	return Rules +
		"\n\nUser request: " + strings.TrimSpace(query) +
		"\n\nRespond ONLY with the required structure."
}
