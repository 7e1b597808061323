package response

// Resp is the standard JSON response body for error and meta routes.
// Bot contract payloads (chat/classify/persona replies) are returned
// unwrapped — their shape is part of the public API.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
