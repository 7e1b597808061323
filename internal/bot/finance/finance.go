package finance

import (
	"context"
	"strings"

	"integrated-bots/pkg/completion"
)

// Bot explains finance concepts, never advice.
type Bot struct {
	llm completion.Completer
}

// New creates the finance bot.
func New(llm completion.Completer) *Bot {
	return &Bot{llm: llm}
}

// Answer runs the prompted completion and enforces the disclaimer suffix.
// It always returns a non-empty reply.
func (b *Bot) Answer(ctx context.Context, query string) string {
	out := b.llm.Text(ctx, buildPrompt(query))
	if out == "" {
		return FallbackMsg
	}
	if !strings.Contains(strings.ToLower(out), disclaimerMarker) {
		out += Disclaimer
	}
	return out
}

func buildPrompt(query string) string {
	return Rules +
		"\n\nUser question: " + strings.TrimSpace(query) +
		"\n\nGive a concise conceptual explanation and then the disclaimer."
}
