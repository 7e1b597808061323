package tmdb

// Movie is one TMDB result. Missing fields keep their zero values —
// the renderer decides what a blank year or rating looks like.
type Movie struct {
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
}

type searchResponse struct {
	Results []Movie `json:"results"`
}
