package gptmaster

// Label is the bot label used by the dispatcher and response envelopes.
const Label = "gpt_master"

// Rules is the fixed system instruction block.
const Rules = `You are an AI mentor (GPT Master). Follow these rules:
- Explain concepts clearly and simply.
- Break down ideas step by step.
- Challenge weak assumptions gently.
- Do not hallucinate; admit uncertainty.
- Prefer reasoning over verbosity.
`

// FallbackMsg substitutes an empty completion.
const FallbackMsg = "Let's break this down into a few steps:\n" +
	"1) Clarify your goal in one sentence.\n" +
	"2) List what you already know and what you're unsure about.\n" +
	"3) Identify the next smallest action you can take in the next 24 hours.\n\n" +
	"If you tell me your goal and what you've tried so far, " +
	"I can help you organize your thinking more concretely."
