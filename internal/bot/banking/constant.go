package banking

// Label is the bot label used by the dispatcher and response envelopes.
const Label = "banking"

// Rules is the fixed system instruction block.
const Rules = `You are a banking support assistant. Follow these rules strictly:
- Answer ONLY banking-related FAQs.
- NEVER invent customer data.
- If a query would need account access or personal info, reply exactly: "Authentication required."
- Allowed topics: accounts, loans, cards, interest, KYC, fees.
- Forbidden: predictions, advice, jokes, opinions.
- Keep answers short, factual, neutral.
- If unsure → say "I don't have that information."
`

// AuthRequiredMsg is the exact short-circuit reply for queries touching
// personal data. No backend call is made.
const AuthRequiredMsg = "Authentication required."

// FallbackMsg substitutes an empty completion.
const FallbackMsg = "I don't have that information."

// authKeywords trigger the authentication short-circuit. Matched as
// case-insensitive substrings.
var authKeywords = []string{
	"my balance", "my account", "my statement", "my card",
	"my loan", "transfer from my", "my transaction",
	"my limit", "my credit",
}
