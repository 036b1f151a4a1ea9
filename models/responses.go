package models

// StatusResponse is the JSON body returned by vault service endpoints that
// have no other payload.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON body returned by the vault service on failure.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
