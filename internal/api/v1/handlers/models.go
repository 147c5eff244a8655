package handlers

type SummaryResponse struct {
	Greeting    string `json:"greeting"`
	Temperature string `json:"temperature"`
	HeadsUp     string `json:"headsUp"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// summaryQuery bounds follow the provider's accepted ranges: the upper
// latitude and longitude limits are exclusive.
type summaryQuery struct {
	Latitude  float64 `validate:"gte=-90,lt=90"`
	Longitude float64 `validate:"gte=-180,lt=180"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
