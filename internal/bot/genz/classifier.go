package genz

import (
	"context"
	"fmt"
	"strings"
)

// Classify maps the query to one of the seven content categories.
// Anything the model returns outside the valid set, including a failed
// JSON parse, collapses to unrelated.
func (b *Bot) Classify(ctx context.Context, query string) Category {
	js := b.llm.JSON(ctx, fmt.Sprintf(subClassifyPromptFmt, query))
	raw, _ := js["category"].(string)
	category := Category(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := validCategories[category]; !ok {
		return CategoryUnrelated
	}
	return category
}

// detectPlatform scans the query for platform keywords in priority
// order, defaulting to instagram_reel.
func detectPlatform(query string) string {
	q := strings.ToLower(query)
	for _, pk := range platformKeywords {
		if strings.Contains(q, pk.keyword) {
			return pk.platform
		}
	}
	return DefaultPlatform
}
