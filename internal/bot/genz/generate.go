package genz

import (
	"context"
	"fmt"
	"strings"

	"integrated-bots/pkg/langid"
)

// Generate builds the augmented prompt and produces a platform-shaped
// script. It returns the reply and the detected language code; the
// reply is never empty — two generation attempts are followed by a
// deterministic template.
func (b *Bot) Generate(ctx context.Context, query string, opts Options) (string, string) {
	opts = opts.normalize()
	lang := langid.Detect(opts.Language)

	prompt := buildAugmentedPrompt(query, opts, lang)

	if out := strings.TrimSpace(b.llm.Text(ctx, prompt)); out != "" {
		return fmt.Sprintf(languageBanner, lang) + out, lang
	}

	b.l.Warnf(ctx, "genz.Generate: primary attempt empty, retrying compact. platform: %s", opts.Platform)
	if out := strings.TrimSpace(b.llm.Text(ctx, compactRetryPrefix+prompt)); out != "" {
		return fmt.Sprintf(languageBanner, lang) + out, lang
	}

	return safeTemplate(query, opts.Duration, lang), lang
}

func buildAugmentedPrompt(query string, opts Options, lang string) string {
	desc, ok := platformDescriptions[opts.Platform]
	if !ok {
		desc = platformDescriptions[DefaultPlatform]
	}

	parts := []string{
		fmt.Sprintf("🎯 User idea: %s", query),
		fmt.Sprintf("📱 Platform: %s → %s", opts.Platform, desc),
		fmt.Sprintf("⏱ Target duration: %d seconds", opts.Duration),
		fmt.Sprintf("🎬 Content type: %s", opts.ContentType),
	}
	if opts.AreaSpec != "" {
		parts = append(parts, fmt.Sprintf("🍲 Specific focus: %s", opts.AreaSpec))
	}
	if opts.Location != "" {
		parts = append(parts, fmt.Sprintf("📍 Location: %s", opts.Location))
	}
	parts = append(parts,
		fmt.Sprintf("🌐 Language: %s", lang),
		fmt.Sprintf("🌀 Tone: %s (always Gen-Z slang, memes, FOMO hooks)", opts.Tone),
		fmt.Sprintf("🔥 Include trending suggestions: %s", yesNo(opts.IncludeTrending)),
		fmt.Sprintf("🎥 Include camera cues & gestures: %s", yesNo(opts.CameraCues)),
		fmt.Sprintf("📊 Compare with trending reels: %s", yesNo(opts.CompareReels)),
		creatorInstruction,
	)

	return strings.Join(parts, "\n\n")
}

func safeTemplate(query string, duration int, lang string) string {
	return fmt.Sprintf(languageBanner, lang) +
		fmt.Sprintf("Title: %s\nDuration: %ds\n\n", query, duration) +
		"Hook (0-3s): [Punchy hook here]\n" +
		"Body: [Main script lines]\n" +
		"CTA: [e.g., Tag your friend!]\n" +
		"Hashtags: #trending #viral #shorts"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
