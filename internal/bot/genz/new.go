package genz

import (
	"context"

	"integrated-bots/pkg/completion"
	"integrated-bots/pkg/log"
	"integrated-bots/pkg/newsapi"
	"integrated-bots/pkg/tmdb"
)

// NewsSearcher fetches recent articles for a free-text query.
type NewsSearcher interface {
	Search(ctx context.Context, query string) ([]newsapi.Article, error)
}

// MovieSearcher looks up movies by title and exposes the daily trending
// list as a fallback.
type MovieSearcher interface {
	SearchMovie(ctx context.Context, title string) ([]tmdb.Movie, error)
	Trending(ctx context.Context) ([]tmdb.Movie, error)
}

// SummaryFetcher resolves a topic to an encyclopedia extract.
type SummaryFetcher interface {
	Summary(ctx context.Context, topic string) (string, error)
}

// Bot is the GenZ social-content persona. The news, movies and wiki
// collaborators are optional; a nil collaborator degrades the matching
// branch to its fixed empty-result reply.
type Bot struct {
	llm    completion.Completer
	news   NewsSearcher
	movies MovieSearcher
	wiki   SummaryFetcher
	l      log.Logger
}

// New creates the GenZ bot.
func New(llm completion.Completer, news NewsSearcher, movies MovieSearcher, wiki SummaryFetcher, l log.Logger) *Bot {
	return &Bot{llm: llm, news: news, movies: movies, wiki: wiki, l: l}
}
