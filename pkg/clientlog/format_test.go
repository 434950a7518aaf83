package clientlog

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_FullExchange(t *testing.T) {
	rr := &RequestResult{
		Method:          "POST",
		Path:            "",
		RequestContent:  map[string]any{"data": map[string]any{"name": "Fido"}},
		ResponseHeaders: map[string]string{"content-type": "application/json"},
		ResponseContent: map[string]any{"resource": map[string]any{"ref": "classes/dogs/1"}},
		StatusCode:      201,
		TimeTaken:       13 * time.Millisecond,
	}

	out, err := Render(rr)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Fauna POST /\n"))
	assert.Contains(t, out, "  Request JSON: {\n    \"data\": {\n      \"name\": \"Fido\"\n    }\n  }\n")
	assert.Contains(t, out, "  Response headers: {\n    \"content-type\": \"application/json\"\n  }\n")
	assert.Contains(t, out, "  Response JSON: {\n    \"resource\": {\n      \"ref\": \"classes/dogs/1\"\n    }\n  }\n")
	assert.True(t, strings.HasSuffix(out, "  Response (201): Network latency 13ms\n"))
}

func TestRender_QuerySuffix(t *testing.T) {
	rr := &RequestResult{
		Method:          "GET",
		Path:            "classes",
		Query:           map[string]string{"ts": "123", "size": "10"},
		ResponseHeaders: map[string]string{},
		ResponseContent: map[string]any{},
		StatusCode:      200,
		TimeTaken:       2 * time.Millisecond,
	}

	out, err := Render(rr)
	require.NoError(t, err)

	lines := strings.SplitN(out, "\n", 2)
	assert.Equal(t, "Fauna GET /classes?size=10&ts=123", lines[0])
}

func TestRender_NoRequestContent(t *testing.T) {
	rr := &RequestResult{
		Method:          "GET",
		Path:            "classes/dogs/1",
		ResponseHeaders: map[string]string{"content-type": "application/json"},
		ResponseContent: map[string]any{"resource": map[string]any{}},
		StatusCode:      200,
		TimeTaken:       5 * time.Millisecond,
	}

	out, err := Render(rr)
	require.NoError(t, err)
	assert.NotContains(t, out, "  Request JSON:")
}

func TestRender_RequestContentRoundTrip(t *testing.T) {
	content := map[string]any{
		"data": map[string]any{"name": "Fido", "age": float64(3)},
	}
	rr := &RequestResult{
		Method:          "POST",
		Path:            "classes/dogs",
		RequestContent:  content,
		ResponseHeaders: map[string]string{},
		ResponseContent: map[string]any{},
		StatusCode:      201,
		TimeTaken:       time.Millisecond,
	}

	out, err := Render(rr)
	require.NoError(t, err)

	// The block between the label and the next label is valid JSON that
	// round-trips to the original value.
	start := strings.Index(out, "  Request JSON: ")
	require.GreaterOrEqual(t, start, 0)
	rest := out[start+len("  Request JSON: "):]
	end := strings.Index(rest, "\n  Response headers: ")
	require.GreaterOrEqual(t, end, 0)

	var decoded any
	require.NoError(t, json.Unmarshal([]byte(rest[:end]), &decoded))
	assert.Equal(t, content, decoded)
}

func TestRender_Deterministic(t *testing.T) {
	rr := &RequestResult{
		Method:          "GET",
		Path:            "classes",
		Query:           map[string]string{"b": "2", "a": "1", "c": "3"},
		ResponseHeaders: map[string]string{"x-read-ops": "1", "content-type": "application/json"},
		ResponseContent: map[string]any{"data": []any{"a", "b"}},
		StatusCode:      200,
		TimeTaken:       7 * time.Millisecond,
	}

	first, err := Render(rr)
	require.NoError(t, err)
	second, err := Render(rr)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRender_SerializationError(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	rr := &RequestResult{
		Method:          "POST",
		Path:            "",
		RequestContent:  cyclic,
		ResponseHeaders: map[string]string{},
		ResponseContent: map[string]any{},
		StatusCode:      201,
		TimeTaken:       time.Millisecond,
	}

	out, err := Render(rr)
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRender_FractionalLatency(t *testing.T) {
	rr := &RequestResult{
		Method:          "GET",
		Path:            "classes",
		ResponseHeaders: map[string]string{},
		ResponseContent: map[string]any{},
		StatusCode:      200,
		TimeTaken:       13*time.Millisecond + 500*time.Microsecond,
	}

	out, err := Render(rr)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "  Response (200): Network latency 13.5ms\n"))
}

func TestQueryString(t *testing.T) {
	tests := []struct {
		name     string
		query    map[string]string
		expected string
	}{
		{"nil map", nil, ""},
		{"empty map", map[string]string{}, ""},
		{"single pair", map[string]string{"size": "10"}, "?size=10"},
		{"sorted pairs", map[string]string{"ts": "123", "size": "10"}, "?size=10&ts=123"},
		{"no url encoding", map[string]string{"q": "a b&c"}, "?q=a b&c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, queryString(tt.query))
		})
	}
}

func TestIndentJSON_InteriorLines(t *testing.T) {
	v := map[string]any{
		"outer": map[string]any{
			"inner": []any{float64(1), float64(2)},
		},
	}

	plain, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	indented, err := indentJSON(v)
	require.NoError(t, err)

	plainLines := strings.Split(string(plain), "\n")
	indentedLines := strings.Split(indented, "\n")
	require.Equal(t, len(plainLines), len(indentedLines))

	// First line carries the label's indentation, every interior line is
	// shifted two spaces right of its plain counterpart.
	assert.Equal(t, plainLines[0], indentedLines[0])
	for i := 1; i < len(plainLines); i++ {
		assert.Equal(t, "  "+plainLines[i], indentedLines[i])
	}
}

func TestIndentJSON_Scalar(t *testing.T) {
	out, err := indentJSON("hello")
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, out)
}

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "13", formatMillis(13*time.Millisecond))
	assert.Equal(t, "13.5", formatMillis(13*time.Millisecond+500*time.Microsecond))
	assert.Equal(t, "0", formatMillis(0))
	assert.Equal(t, "1000", formatMillis(time.Second))
}
