package tagger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/janvolk/lostfound/internal/config"
	"github.com/janvolk/lostfound/internal/metrics"
)

// FallbackLabel is returned whenever classification fails for any reason.
const FallbackLabel = "miscellaneous"

// CandidateLabels is the fixed closed set of category labels the classifier
// chooses from.
var CandidateLabels = []string{
	// Core everyday objects
	"electronics", "clothing", "accessories", "documents", "books",
	"sports_equipment", "toys", "keys", "tools",

	// Personal items
	"wallets_and_purses", "bags_and_backpacks", "jewelry", "watches",
	"glasses_and_sunglasses", "umbrellas", "cosmetics_and_makeup",

	// Identification / official items
	"id_cards_and_badges", "credit_cards", "driver_license", "passport", "tickets",

	// Academic / work items
	"stationery", "notebooks", "laptops_and_tablets", "usb_drives",
	"calculators", "school_supplies", "office_supplies",

	// Transport / mobility
	"bicycles", "helmets", "vehicle_keys",

	// Miscellaneous
	"food_containers", "bottles", "miscellaneous",
}

// Client calls a remote zero-shot text classification endpoint.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

// New creates a classifier client from the given configuration.
func New(cfg config.TaggerConfig) *Client {
	return &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

type classifyRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters classifyParameters `json:"parameters"`
}

type classifyParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

// Classify returns the top predicted category label for an item, lowercased.
// It never fails: any network error, timeout or unrecognized response shape
// collapses to FallbackLabel.
func (c *Client) Classify(ctx context.Context, name, description string) string {
	label, err := c.classify(ctx, strings.TrimSpace(name+" "+description))
	if err != nil {
		slog.Warn("classification failed, using fallback label", "error", err)
		metrics.TaggerFallbacks.Inc()
		return FallbackLabel
	}
	return strings.ToLower(label)
}

// classify performs the remote call and parses the response. The endpoint
// returns either an object with a confidence-ordered labels field or a list
// of label/score objects; both shapes are accepted.
func (c *Client) classify(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(classifyRequest{
		Inputs: text,
		Parameters: classifyParameters{
			CandidateLabels: CandidateLabels,
			MultiLabel:      false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling classifier: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	return parseResponse(body)
}

// parseResponse extracts the top label from either accepted response shape.
func parseResponse(body []byte) (string, error) {
	var object struct {
		Labels []string `json:"labels"`
	}
	if err := json.Unmarshal(body, &object); err == nil && len(object.Labels) > 0 {
		return object.Labels[0], nil
	}

	var list []struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].Label != "" {
		return list[0].Label, nil
	}

	return "", fmt.Errorf("unexpected response shape: %s", truncate(body, 200))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
