package genz

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"integrated-bots/pkg/tmdb"
)

// HandleQuery sub-classifies the query and routes it through the
// matching enrichment branch. Collaborator errors degrade to the fixed
// empty-result replies; the caller always gets a usable string.
func (b *Bot) HandleQuery(ctx context.Context, query string) string {
	category := b.Classify(ctx, query)
	b.l.Infof(ctx, "genz.HandleQuery: category: %s", category)

	switch category {
	case CategorySocialMedia:
		opts := DefaultOptions()
		opts.Platform = detectPlatform(query)
		reply, _ := b.Generate(ctx, query, opts)
		return reply

	case CategoryNews:
		return b.newsBranch(ctx, query)

	case CategoryMovies:
		return b.moviesBranch(ctx, query)

	case CategoryGeneralKnowledge:
		return b.knowledgeBranch(ctx, query)

	default:
		// quotes, mixed, unrelated: free-form creative reply.
		out := strings.TrimSpace(b.llm.Text(ctx, fmt.Sprintf(creativePromptFmt, query)))
		if out == "" {
			return CreativeEmpty
		}
		return out
	}
}

func (b *Bot) newsBranch(ctx context.Context, query string) string {
	if b.news == nil {
		return NoNewsMsg
	}
	articles, err := b.news.Search(ctx, query)
	if err != nil {
		b.l.Warnf(ctx, "genz.newsBranch: search failed. err: %v", err)
		return NoNewsMsg
	}
	if len(articles) == 0 {
		return NoNewsMsg
	}
	if len(articles) > maxListItems {
		articles = articles[:maxListItems]
	}
	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, fmt.Sprintf("- [%s](%s)", a.Title, a.URL))
	}
	return newsHeader + strings.Join(lines, "\n")
}

func (b *Bot) moviesBranch(ctx context.Context, query string) string {
	if b.movies == nil {
		return NoMoviesMsg
	}
	movies, err := b.movies.SearchMovie(ctx, query)
	if err != nil {
		b.l.Warnf(ctx, "genz.moviesBranch: search failed. err: %v", err)
		movies = nil
	}
	if len(movies) == 0 {
		movies, err = b.movies.Trending(ctx)
		if err != nil {
			b.l.Warnf(ctx, "genz.moviesBranch: trending fallback failed. err: %v", err)
			return NoMoviesMsg
		}
	}
	if len(movies) == 0 {
		return NoMoviesMsg
	}
	if len(movies) > maxListItems {
		movies = movies[:maxListItems]
	}
	lines := make([]string, 0, len(movies))
	for _, m := range movies {
		lines = append(lines, renderMovie(m))
	}
	return moviesHeader + strings.Join(lines, "\n")
}

func renderMovie(m tmdb.Movie) string {
	title := m.Title
	if title == "" {
		title = "Unknown"
	}
	year := m.ReleaseDate
	if len(year) > 4 {
		year = year[:4]
	}
	rating := "N/A"
	if m.VoteAverage > 0 {
		rating = strconv.FormatFloat(m.VoteAverage, 'f', 1, 64)
	}
	return fmt.Sprintf("- %s (%s) ⭐ %s", title, year, rating)
}

func (b *Bot) knowledgeBranch(ctx context.Context, query string) string {
	if b.wiki != nil {
		extract, err := b.wiki.Summary(ctx, query)
		if err != nil {
			b.l.Warnf(ctx, "genz.knowledgeBranch: summary failed. err: %v", err)
		} else if extract != "" {
			return extract
		}
	}
	// Encyclopedia miss falls back to a generated caption.
	return b.llm.Text(ctx, fmt.Sprintf(carouselCaptionFmt, query))
}
