package completion

// Log prefixes
const (
	LogPrefixText = "pkg.completion.Text"
	LogPrefixJSON = "pkg.completion.JSON"
)

// JSONOnlyInstruction is prefixed to prompts in structured mode to coerce
// parseable output.
const JSONOnlyInstruction = "Return ONLY valid JSON. Do not include markdown fences.\n"

// DiagnosticFormat is the visible reply substituted when every model in the
// fallback list raised an error. It is a string on purpose — backend failures
// never cross the persona boundary as errors.
const DiagnosticFormat = "[Gemini API Error] %v"
