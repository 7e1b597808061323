package router

import (
	"context"
	"regexp"
	"strings"
)

var labelCleanRe = regexp.MustCompile(`[^a-z_]`)

// ClassifyModel asks the backend which bot should handle the query.
// The raw completion is lowercased and stripped to [a-z_] before the
// membership check; anything outside the allowed set is unknown.
func (r *Router) ClassifyModel(ctx context.Context, query string) Category {
	raw := r.llm.Text(ctx, classifyInstruction+"\nUser query: "+query)
	label := Category(labelCleanRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), ""))
	if _, ok := allowedLabels[label]; !ok {
		return CategoryUnknown
	}
	return label
}
