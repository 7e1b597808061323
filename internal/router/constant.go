package router

// RephraseMsg answers queries no bot recognizes.
const RephraseMsg = "Please rephrase your question clearly."

// DefaultCategory absorbs queries neither keywords nor the model could
// place.
const DefaultCategory = CategoryFinance

// classifyInstruction is the model-classifier preamble; the query is
// appended after it.
const classifyInstruction = `You are a router for a unified assistant.

Bots:
- banking
- cooking
- finance
- genz
- gpt_master

Return ONLY one lowercase word.
`

// allowedLabels is the closed set the model classifier may return.
var allowedLabels = map[Category]struct{}{
	CategoryBanking:   {},
	CategoryCooking:   {},
	CategoryFinance:   {},
	CategoryGenZ:      {},
	CategoryGPTMaster: {},
	CategoryUnknown:   {},
}

// keywordSet pairs a category with its trigger substrings. The slice
// order is the tie-break order for equal scores.
type keywordSet struct {
	category Category
	keywords []string
}

var keywordSets = []keywordSet{
	{CategoryBanking, []string{
		"account", "balance", "transfer", "card", "loan",
		"ifsc", "branch", "upi", "atm", "deposit",
	}},
	{CategoryCooking, []string{
		"recipe", "cook", "ingredient", "bake", "fry",
		"boil", "dish", "meal", "cuisine", "kitchen",
	}},
	{CategoryFinance, []string{
		"invest", "stock", "mutual fund", "interest", "budget",
		"savings", "inflation", "tax", "bond", "portfolio",
	}},
	{CategoryGenZ, []string{
		"platform", "duration", "script", "camera", "gesture",
		"hashtag", "reel", "tiktok", "youtube", "linkedin",
		"instagram", "voiceover", "caption", "viral", "meme",
	}},
	{CategoryGPTMaster, []string{
		"explain", "learn", "mentor", "teach", "guide",
		"roadmap", "concept", "how do i",
	}},
}
