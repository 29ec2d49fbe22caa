package omdb

// OMDb returns every field as a string, including numbers and booleans.
// Values are decoded as-is here and converted in mapper.go.

// SearchResponse is the body of a ?s= request
type SearchResponse struct {
	Response     string         `json:"Response"`
	Error        string         `json:"Error"`
	TotalResults string         `json:"totalResults"`
	Search       []SearchResult `json:"Search"`
}

// SearchResult is one entry of SearchResponse.Search
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// TitleResponse is the body of an ?i= request
type TitleResponse struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Poster     string `json:"Poster"`
	IMDbRating string `json:"imdbRating"`
	IMDbVotes  string `json:"imdbVotes"`
	IMDbID     string `json:"imdbID"`
	Type       string `json:"Type"`
}
