package models

// ErrorResponse is the JSON body for failed API calls.
type ErrorResponse struct {
	Error string `json:"error"`
}
