package router

import (
	"context"
	"strings"
)

// Classify is the hybrid classifier behind the standalone classify
// endpoint. Keyword scoring runs first unless forceModel is set; the
// model classifier is the second stage, and an unrecognized model
// label lands on the fixed default category with low confidence.
func (r *Router) Classify(ctx context.Context, query string, forceModel bool) ClassifyOutput {
	if !forceModel {
		if category, ok := classifyKeywords(query); ok {
			return ClassifyOutput{Category: category, Confidence: ConfidenceMedium}
		}
	}

	if category := r.ClassifyModel(ctx, query); category != CategoryUnknown {
		return ClassifyOutput{Category: category, Confidence: ConfidenceHigh}
	}

	return ClassifyOutput{Category: DefaultCategory, Confidence: ConfidenceLow}
}

// classifyKeywords counts substring hits per category. The highest
// score wins, ties going to the first-enumerated category; a zero
// maximum reports no match.
func classifyKeywords(query string) (Category, bool) {
	q := strings.ToLower(query)

	best := CategoryUnknown
	bestScore := 0
	for _, set := range keywordSets {
		score := 0
		for _, kw := range set.keywords {
			if strings.Contains(q, kw) {
				score++
			}
		}
		if score > bestScore {
			best = set.category
			bestScore = score
		}
	}
	if bestScore == 0 {
		return CategoryUnknown, false
	}
	return best, true
}
