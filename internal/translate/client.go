// Package translate is the outbound translation collaborator. It chunks text
// into segments the remote service accepts, translates each segment over
// HTTP, and reassembles the output in segment order. The extraction engine
// itself never calls this; translation is a caller-side concern.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// chunkSize is the safe per-request character limit of the translation API.
const chunkSize = 400

// defaultBaseURL is the MyMemory translated.net endpoint.
const defaultBaseURL = "https://api.mymemory.translated.net/get"

// defaultDelay between requests keeps the free tier from rate limiting.
const defaultDelay = 300 * time.Millisecond

// Client translates document text via a MyMemory-compatible HTTP API.
// The zero value is usable: it targets the public endpoint with ja→en.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	LangPair   string // e.g. "ja|en"
	Delay      time.Duration
}

type apiResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate splits text into segments of at most 400 characters, translates
// each in order and joins the results with single spaces. Empty input
// returns the empty string with no network traffic.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	chunks := splitChunks(text, chunkSize)
	translations := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		translated, err := c.translateChunk(ctx, chunk)
		if err != nil {
			return "", fmt.Errorf("translate segment %d/%d: %w", i+1, len(chunks), err)
		}
		if translated != "" {
			translations = append(translations, translated)
		}

		if i < len(chunks)-1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.delay()):
			}
		}
	}

	return strings.Join(translations, " "), nil
}

func (c *Client) translateChunk(ctx context.Context, chunk string) (string, error) {
	q := url.Values{}
	q.Set("q", chunk)
	q.Set("langpair", c.langPair())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation API returned %s", resp.Status)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode translation response: %w", err)
	}
	return body.ResponseData.TranslatedText, nil
}

// splitChunks cuts text into rune-safe segments of at most size characters.
func splitChunks(text string, size int) []string {
	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

func (c *Client) langPair() string {
	if c.LangPair != "" {
		return c.LangPair
	}
	return "ja|en"
}

func (c *Client) delay() time.Duration {
	if c.Delay > 0 {
		return c.Delay
	}
	return defaultDelay
}
