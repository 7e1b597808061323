package banking

import (
	"context"
	"strings"

	"integrated-bots/pkg/completion"
)

// Bot answers banking FAQs.
type Bot struct {
	llm completion.Completer
}

// New creates the banking bot.
func New(llm completion.Completer) *Bot {
	return &Bot{llm: llm}
}

// Answer runs the auth pre-check, then the prompted completion.
// It always returns a non-empty reply.
func (b *Bot) Answer(ctx context.Context, query string) string {
	lower := strings.ToLower(query)
	for _, k := range authKeywords {
		if strings.Contains(lower, k) {
			return AuthRequiredMsg
		}
	}

	out := b.llm.Text(ctx, buildPrompt(query))
	if out == "" {
		return FallbackMsg
	}
	return out
}

func buildPrompt(query string) string {
	return Rules +
		"\n\nUser query: " + strings.TrimSpace(query) +
		"\n\nRespond with a concise banking FAQ answer."
}
