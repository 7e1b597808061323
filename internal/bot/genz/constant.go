package genz

// Label is the bot label used by the dispatcher and response envelopes.
const Label = "genz"

// DefaultPlatform is used when no platform is given or recognized.
const DefaultPlatform = "instagram_reel"

// platformDescriptions maps a platform id to the format brief injected
// into the augmented prompt.
var platformDescriptions = map[string]string{
	"instagram_reel":  "Instagram reel (hook → beat → CTA, use 3-5 hashtags, sec-by-sec cues)",
	"linkedin_post":   "LinkedIn post (professional yet modern, 120–180 words)",
	"x_thread":        "X/Twitter thread of 4 short tweets",
	"youtube_short":   "YouTube Shorts script (voiceover + quick cuts, title + tags)",
	"whatsapp_status": "WhatsApp status ideas — 1 line each (3 options)",
	"tiktok":          "TikTok script (punchy hook + trend fit + CTA)",
}

// platformKeywords is scanned in order against the lowercased query;
// the first hit wins. "x " keeps a trailing space so it does not match
// inside ordinary words.
var platformKeywords = []struct {
	keyword  string
	platform string
}{
	{"instagram", "instagram_reel"},
	{"reel", "instagram_reel"},
	{"linkedin", "linkedin_post"},
	{"thread", "x_thread"},
	{"twitter", "x_thread"},
	{"x ", "x_thread"},
	{"youtube", "youtube_short"},
	{"short", "youtube_short"},
	{"whatsapp", "whatsapp_status"},
	{"tiktok", "tiktok"},
}

const subClassifyPromptFmt = `Classify the user query into exactly ONE of the following categories:
- social_media
- news
- movies
- quotes
- general_knowledge
- mixed
- unrelated

Rules:
- If the user is asking for ideas, scripts, captions, posts, stories, threads, reels, or carousels specific to any social platform → "social_media".
- If explicitly about current events or headlines → "news".
- If about a film, known movie, cast, or plot → "movies".
- If asking for a quote, poem, or inspiration → "quotes".
- If asking for general facts, definitions, bios, history, or knowledge → "general_knowledge".
- If the query clearly spans multiple categories (e.g., "Instagram reel idea about a movie quote") → "mixed".
- If none of the above apply → "unrelated".

Return JSON only:
{"category": "<one_of_the_above>"}

User query: %q`

// creatorInstruction closes every augmented prompt.
const creatorInstruction = "👉 You are a Gen-Z short-video content creator. Generate a scroll-stopping script " +
	"with strong hook in first 3 seconds, energetic pacing, slang, emojis. " +
	"If camera cues requested, give second-by-second instructions (close-up/mid/wide + gestures). " +
	"If trending is enabled, suggest 2-3 trending sounds and hashtags. " +
	"Keep it conversational, funny, and relatable. Always end with a clear CTA."

// compactRetryPrefix prefixes the second generation attempt.
const compactRetryPrefix = "Return a compact GenZ style script:\n\n"

const (
	newsHeader     = "📰 Latest news:\n"
	moviesHeader   = "🎬 Movie results:\n"
	languageBanner = "🌐 Language detected/selected: %s\n\n"

	// Fixed replies for empty branches.
	NoNewsMsg     = "No news articles found for that query."
	NoMoviesMsg   = "No movies found for that query."
	CreativeEmpty = "Couldn't come up with something GenZ enough."
)

const creativePromptFmt = `You are a GenZ content creator AI. Respond in a casual, trendy, and GenZ style.
User said: %q
Respond creatively, add humor or wit as appropriate, keep it short, avoid excessive emojis.
Include hashtags and camera angles if fitting.`

const carouselCaptionFmt = "Generate a GenZ style Instagram carousel caption about '%s', " +
	"with minimal emojis and engaging tone."

// maxListItems caps news and movie result lists.
const maxListItems = 5
