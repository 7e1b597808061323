package router

import (
	"context"

	"integrated-bots/internal/bot/genz"
)

// Dispatch classifies the query with the model classifier and hands it
// to the matching persona. The reply is always non-empty; unrecognized
// queries get the rephrase message under the unknown label.
func (r *Router) Dispatch(ctx context.Context, query string) DispatchOutput {
	bot := r.ClassifyModel(ctx, query)
	r.l.Infof(ctx, "router.Dispatch: bot: %s", bot)

	var reply string
	switch bot {
	case CategoryBanking:
		reply = r.banking.Answer(ctx, query)
	case CategoryCooking:
		reply = r.cooking.Answer(ctx, query)
	case CategoryFinance:
		reply = r.finance.Answer(ctx, query)
	case CategoryGPTMaster:
		reply = r.gptMaster.Answer(ctx, query)
	case CategoryGenZ:
		reply, _ = r.genz.Generate(ctx, query, genz.DefaultOptions())
	default:
		reply = RephraseMsg
	}

	return DispatchOutput{Bot: bot, Reply: reply, RoutedTo: bot}
}
