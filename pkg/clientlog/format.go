package clientlog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Render formats one exchange as a multi-line debug log block. It is pure:
// no I/O, no mutation of rr, identical input yields identical output.
//
// Serialization failures (cyclic values, channels, funcs) abort the whole
// render; no partial block is returned.
func Render(rr *RequestResult) (string, error) {
	var b strings.Builder

	b.WriteString("Fauna ")
	b.WriteString(rr.Method)
	b.WriteString(" /")
	b.WriteString(rr.Path)
	b.WriteString(queryString(rr.Query))
	b.WriteByte('\n')

	if rr.RequestContent != nil {
		body, err := indentJSON(rr.RequestContent)
		if err != nil {
			return "", fmt.Errorf("render request content: %w", err)
		}
		b.WriteString("  Request JSON: ")
		b.WriteString(body)
		b.WriteByte('\n')
	}

	headers, err := indentJSON(rr.ResponseHeaders)
	if err != nil {
		return "", fmt.Errorf("render response headers: %w", err)
	}
	b.WriteString("  Response headers: ")
	b.WriteString(headers)
	b.WriteByte('\n')

	content, err := indentJSON(rr.ResponseContent)
	if err != nil {
		return "", fmt.Errorf("render response content: %w", err)
	}
	b.WriteString("  Response JSON: ")
	b.WriteString(content)
	b.WriteByte('\n')

	b.WriteString("  Response (")
	b.WriteString(strconv.Itoa(rr.StatusCode))
	b.WriteString("): Network latency ")
	b.WriteString(formatMillis(rr.TimeTaken))
	b.WriteString("ms\n")

	return b.String(), nil
}

// queryString rebuilds the "?k1=v1&k2=v2" suffix from the query map.
// Keys are sorted so the same record always renders the same string.
// Values are inserted verbatim: consumers parse these log lines, and the
// established format does not url-encode.
func queryString(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+query[k])
	}
	return "?" + strings.Join(pairs, "&")
}

// indentJSON pretty-prints v with two-space nesting and shifts every
// continuation line two further spaces right, so the block nests visually
// under the label that precedes it on the first line.
func indentJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "  ", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatMillis renders d as milliseconds without trailing zeros
// (13ms stays "13", 13.5ms stays "13.5").
func formatMillis(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	return strconv.FormatFloat(ms, 'f', -1, 64)
}
