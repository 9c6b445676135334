package httpdto

// MessageResponse is the minimal {"message": ...} body used by auth
// endpoints and the auth middleware.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope shared by car endpoints, the catch-all
// recovery handler, and the 404 fallback.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
