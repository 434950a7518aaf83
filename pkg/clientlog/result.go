package clientlog

import "time"

// RequestResult captures complete details of one request/response exchange
// between the client and the Fauna service. The client populates every
// field before invoking observers; observers must treat it as read-only.
type RequestResult struct {
	// Method is the HTTP verb of the request.
	Method string

	// Path is the request path without the leading slash.
	Path string

	// Query holds the query parameters, if any. A nil or empty map
	// renders with no query suffix.
	Query map[string]string

	// RequestContent is the structured request body. nil means the
	// request carried no body and the "Request JSON" line is omitted.
	RequestContent any

	// ResponseHeaders are the response headers.
	ResponseHeaders map[string]string

	// ResponseContent is the parsed response body.
	ResponseContent any

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// TimeTaken is the network latency of the exchange.
	TimeTaken time.Duration
}
