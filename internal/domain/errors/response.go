package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INVALID_ID"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope the HTTP layer uses for error payloads.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
