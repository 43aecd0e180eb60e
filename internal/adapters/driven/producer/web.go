// Package producer provides thin text producers for ingestion sources.
// Extraction here is deliberately crude; sophisticated content heuristics
// belong to external tooling, not this store.
package producer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/alcove-ai/alcove/internal/core/ports/driven"
)

// Ensure WebProducer implements the interface.
var _ driven.TextProducer = (*WebProducer)(nil)

// DefaultTimeout bounds the page fetch. This is the only externally
// imposed timeout in the system; store and embedding calls rely on their
// own client defaults.
const DefaultTimeout = 15 * time.Second

var (
	dropBlocks = regexp.MustCompile(`(?is)<(script|style|header|footer|nav|aside)[^>]*>.*?</(script|style|header|footer|nav|aside)>`)
	tags       = regexp.MustCompile(`(?s)<[^>]*>`)
)

// WebProducer fetches a web page and returns its visible text.
type WebProducer struct {
	client *http.Client
}

// NewWebProducer creates a web page text producer.
func NewWebProducer() *WebProducer {
	return &WebProducer{
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Produce fetches the URL and returns crudely extracted page text.
// May return empty text for pages with no extractable content.
func (p *WebProducer) Produce(ctx context.Context, source string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", source, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", source, err)
	}

	return extractText(string(body)), nil
}

// extractText strips non-content blocks and tags, then collapses
// whitespace line by line.
func extractText(html string) string {
	html = dropBlocks.ReplaceAllString(html, " ")
	html = tags.ReplaceAllString(html, " ")
	html = strings.NewReplacer("&nbsp;", " ", "&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#39;", "'").Replace(html)

	var lines []string
	for _, line := range strings.Split(html, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
