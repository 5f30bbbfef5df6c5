package openalex

// worksResponse is the API response for /works queries.
type worksResponse struct {
	Meta    meta             `json:"meta"`
	Results []map[string]any `json:"results"`
}

type meta struct {
	Count   int `json:"count"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// authorsResponse is the API response for /authors queries.
type authorsResponse struct {
	Results []authorResult `json:"results"`
}

type authorResult struct {
	ID    string `json:"id"`
	Orcid string `json:"orcid"`
}
