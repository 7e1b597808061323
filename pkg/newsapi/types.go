package newsapi

// Article is one search hit. Only title and url are consumed downstream;
// items missing either field are dropped by the client.
type Article struct {
	Title string
	URL   string
}

// searchResponse is the wire shape of GET /v2/everything.
// Fields are optional by contract — a partial article is skipped, not an error.
type searchResponse struct {
	Status   string        `json:"status"`
	Articles []wireArticle `json:"articles"`
}

type wireArticle struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
