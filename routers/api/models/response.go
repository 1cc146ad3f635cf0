package models

// Response is the basic model for an API error response
type Response struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}
