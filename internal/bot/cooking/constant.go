package cooking

// Label is the bot label used by the dispatcher and response envelopes.
const Label = "cooking"

// Rules is the fixed system instruction block.
const Rules = `You are a cooking assistant. Always respond with:
1) Ingredients (with quantities)
2) Steps (numbered)
3) Cooking time

Rules:
- If the user doesn't give enough info, ask for the main ingredient or dish before giving a full recipe.
- Never include unsafe food practices.
- No storytelling.
- No nutrition claims unless clearly stated as estimates.
`

// FallbackMsg doubles as the too-short-input clarification and the
// empty-completion substitute.
const FallbackMsg = "Please tell me the main ingredient or dish you want a recipe for " +
	"(e.g., pasta, eggs, chicken, rice, salad, soup)."

// minQueryWords is the whitespace-token threshold below which no backend
// call is made.
const minQueryWords = 2
