package gptmaster

import (
	"context"
	"strings"

	"integrated-bots/pkg/completion"
)

// Bot is the general mentoring persona.
type Bot struct {
	llm completion.Completer
}

// New creates the mentor bot.
func New(llm completion.Completer) *Bot {
	return &Bot{llm: llm}
}

// Answer runs the prompted completion. It always returns a non-empty reply.
func (b *Bot) Answer(ctx context.Context, query string) string {
	out := b.llm.Text(ctx, buildPrompt(query))
	if out == "" {
		return FallbackMsg
	}
	return out
}

func buildPrompt(query string) string {
	return Rules +
		"\n\nUser request: " + strings.TrimSpace(query) +
		"\n\nProvide a step-by-step, concise answer. If unsure, say so."
}
