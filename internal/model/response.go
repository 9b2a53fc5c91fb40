package model

// ResultSet is the response body of POST /run-use-cases. Total always equals
// len(Results), and Results preserves the order of the uploaded rows.
type ResultSet struct {
	Total   int           `json:"total"`
	Results []ResolvedRow `json:"results"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
