package producer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "plain paragraph",
			html:     "<p>Hello world</p>",
			expected: "Hello world",
		},
		{
			name:     "drops script blocks",
			html:     "<p>visible</p><script>var hidden = 1;</script>",
			expected: "visible",
		},
		{
			name:     "drops style and nav blocks",
			html:     "<style>.a{color:red}</style><nav><a href='/'>Home</a></nav><p>content</p>",
			expected: "content",
		},
		{
			name:     "decodes entities",
			html:     "<p>fish &amp; chips &lt;daily&gt;</p>",
			expected: "fish & chips <daily>",
		},
		{
			name:     "collapses whitespace",
			html:     "<p>too     many\t\tspaces</p>",
			expected: "too many spaces",
		},
		{
			name:     "empty page",
			html:     "<html><body></body></html>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractText(tt.html))
		})
	}
}

func TestExtractText_MultilineKeepsLines(t *testing.T) {
	html := "<h1>Title</h1>\n<p>First paragraph</p>\n<p>Second paragraph</p>"

	text := extractText(html)
	assert.Contains(t, text, "Title")
	assert.Contains(t, text, "First paragraph")
	assert.Contains(t, text, "Second paragraph")
}

func TestWebProducer_Produce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><h1>Docs</h1><p>Some page text</p></body></html>"))
	}))
	defer server.Close()

	producer := NewWebProducer()

	text, err := producer.Produce(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Docs")
	assert.Contains(t, text, "Some page text")
}

func TestWebProducer_ProduceNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	producer := NewWebProducer()

	_, err := producer.Produce(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestWebProducer_ProduceUnreachable(t *testing.T) {
	producer := NewWebProducer()

	_, err := producer.Produce(context.Background(), "http://127.0.0.1:1/nope")
	assert.Error(t, err)
}

func TestWebProducer_ProduceInvalidURL(t *testing.T) {
	producer := NewWebProducer()

	_, err := producer.Produce(context.Background(), "://not-a-url")
	assert.Error(t, err)
}
