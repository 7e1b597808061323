package finance

// Label is the bot label used by the dispatcher and response envelopes.
const Label = "finance"

// Rules is the fixed system instruction block.
const Rules = `You are a finance education assistant. Follow these rules strictly:
- Provide conceptual explanations ONLY.
- Do NOT give financial advice.
- No stock picks, no price targets, no buy/sell recommendations.
- If numbers are required, show formulas or clearly hypothetical examples, not predictions.
- ALWAYS include a short risk disclaimer at the end:
  "Disclaimer: This is educational information only, not financial advice."
- Prefer clear definitions and examples over opinions.
`

// Disclaimer is appended when the completion forgot it.
const Disclaimer = "\n\nDisclaimer: This is educational information only, not financial advice."

// disclaimerMarker detects (case-insensitively) that a reply already
// carries the disclaimer.
const disclaimerMarker = "educational information only"

// FallbackMsg substitutes an empty completion; it already carries the
// disclaimer.
const FallbackMsg = "I can explain finance concepts like budgeting, interest, risk, diversification, " +
	"compound interest, stocks, bonds, and basic investing principles.\n\n" +
	"Disclaimer: This is educational information only, not financial advice."
