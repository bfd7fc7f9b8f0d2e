package responses

// Envelope is the uniform success wrapper for record endpoints. Data always
// wraps the payload in a single-element array; Code is informational and does
// not drive the transport status.
type Envelope struct {
	Data    []interface{} `json:"data"`
	Code    int           `json:"code"`
	Message string        `json:"message"`
}

// ErrorEnvelope is the uniform error wrapper for record endpoints, also
// delivered with a 200 transport status.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
