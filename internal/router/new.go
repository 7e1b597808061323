package router

import (
	"context"

	"integrated-bots/internal/bot/genz"
	"integrated-bots/pkg/completion"
	"integrated-bots/pkg/log"
)

// Answerer is a persona that turns a query into a reply.
type Answerer interface {
	Answer(ctx context.Context, query string) string
}

// ScriptBot is the social-content persona; it has a richer contract
// than the plain Answerer personas.
type ScriptBot interface {
	Generate(ctx context.Context, query string, opts genz.Options) (string, string)
}

// Router classifies queries and dispatches them to persona bots.
type Router struct {
	llm       completion.Completer
	banking   Answerer
	cooking   Answerer
	finance   Answerer
	gptMaster Answerer
	genz      ScriptBot
	l         log.Logger
}

// New wires the router with its personas.
func New(llm completion.Completer, banking, cooking, finance, gptMaster Answerer, genzBot ScriptBot, l log.Logger) *Router {
	return &Router{
		llm:       llm,
		banking:   banking,
		cooking:   cooking,
		finance:   finance,
		gptMaster: gptMaster,
		genz:      genzBot,
		l:         l,
	}
}
