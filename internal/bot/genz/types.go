package genz

// Category is the result of the internal sub-classifier.
type Category string

const (
	CategorySocialMedia      Category = "social_media"
	CategoryNews             Category = "news"
	CategoryMovies           Category = "movies"
	CategoryQuotes           Category = "quotes"
	CategoryGeneralKnowledge Category = "general_knowledge"
	CategoryMixed            Category = "mixed"
	CategoryUnrelated        Category = "unrelated"
)

var validCategories = map[Category]struct{}{
	CategorySocialMedia:      {},
	CategoryNews:             {},
	CategoryMovies:           {},
	CategoryQuotes:           {},
	CategoryGeneralKnowledge: {},
	CategoryMixed:            {},
	CategoryUnrelated:        {},
}

// Options shapes the generated script.
type Options struct {
	Platform        string
	Duration        int
	ContentType     string
	AreaSpec        string
	Location        string
	Language        string
	Tone            string
	IncludeTrending bool
	CameraCues      bool
	CompareReels    bool
}

// DefaultOptions returns the option set used when the caller does not
// customize the script.
func DefaultOptions() Options {
	return Options{
		Platform:        DefaultPlatform,
		Duration:        30,
		ContentType:     "script_voiceover",
		Language:        "auto",
		Tone:            "genz",
		IncludeTrending: true,
		CameraCues:      true,
		CompareReels:    true,
	}
}

// normalize fills zero values so a partially built Options behaves like
// DefaultOptions for the missing fields.
func (o Options) normalize() Options {
	if o.Platform == "" {
		o.Platform = DefaultPlatform
	}
	if o.Duration <= 0 {
		o.Duration = 30
	}
	if o.ContentType == "" {
		o.ContentType = "script_voiceover"
	}
	if o.Language == "" {
		o.Language = "auto"
	}
	// Tone is pinned; callers cannot opt out of the persona.
	o.Tone = "genz"
	return o
}
