package suggest

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"taskmaster-api/domain"
)

// HTTP asks a remote suggestion service: POST {"title": ...} to the
// configured URL, reading back a partial suggestion. It is the
// network-backed substitute for the offline keyword engine.
type HTTP struct {
	url    string
	client *http.Client
}

// NewHTTP returns a Suggester talking to the given endpoint. A nil client
// gets a 10 second default timeout.
func NewHTTP(url string, client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTP{url: url, client: client}
}

type suggestPayload struct {
	Title string `json:"title"`
}

func (h *HTTP) Suggest(ctx context.Context, title string) (domain.Suggestion, error) {
	if len(strings.TrimSpace(title)) < MinTitleLen {
		return domain.Suggestion{}, ErrTitleTooShort
	}

	body, err := sonic.ConfigStd.Marshal(suggestPayload{Title: title})
	if err != nil {
		return domain.Suggestion{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return domain.Suggestion{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return domain.Suggestion{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Suggestion{}, fmt.Errorf("suggest: unexpected status %d", resp.StatusCode)
	}

	var suggestion domain.Suggestion
	if err := sonic.ConfigStd.NewDecoder(resp.Body).Decode(&suggestion); err != nil {
		return domain.Suggestion{}, fmt.Errorf("suggest: decode response: %w", err)
	}
	return suggestion, nil
}
