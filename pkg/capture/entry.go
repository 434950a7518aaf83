package capture

import "time"

// Entry is one captured exchange: the rendered debug block plus the fields
// a debugging session filters on.
type Entry struct {
	// ID is a unique identifier for the entry, assigned on record.
	ID string `json:"id"`

	// Timestamp is when the exchange was recorded.
	Timestamp time.Time `json:"timestamp"`

	// Method is the HTTP method of the request.
	Method string `json:"method"`

	// Path is the request path without the leading slash.
	Path string `json:"path"`

	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"statusCode"`

	// DurationMs is the network latency in milliseconds.
	DurationMs int64 `json:"durationMs"`

	// Rendered is the full log block as produced by clientlog.Render.
	Rendered string `json:"rendered"`
}
