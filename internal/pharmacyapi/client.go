// Package pharmacyapi is the admin service's client for the pharmacy
// service's GraphQL endpoint.
package pharmacyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/medisuite/hospital-services/internal/model"
	"github.com/medisuite/hospital-services/pkg/metrics"
)

// Client pulls the medicine list from the pharmacy service. Like the
// reference lookup in the other direction, failures degrade to an empty
// collection and are only logged.
type Client struct {
	url     string
	http    *http.Client
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewClient(url string, m *metrics.Metrics) *Client {
	return &Client{
		url:     url,
		http:    &http.Client{},
		metrics: m,
		logger:  log.With().Str("component", "pharmacyapi").Logger(),
	}
}

// FetchMedicines returns all medicines known to the pharmacy service, or
// an empty collection when the call fails for any reason.
func (c *Client) FetchMedicines(ctx context.Context) []*model.RemoteMedicine {
	medicines, err := c.fetchMedicines(ctx)
	if err != nil {
		c.count("error")
		c.logger.Error().Err(err).Msg("failed to fetch medicines from pharmacy service")
		return []*model.RemoteMedicine{}
	}
	c.count("hit")
	return medicines
}

func (c *Client) fetchMedicines(ctx context.Context) ([]*model.RemoteMedicine, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": "query { medicines { id name dosage status } }",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	var envelope struct {
		Data struct {
			Medicines []*model.RemoteMedicine `json:"medicines"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("remote error: %s", envelope.Errors[0].Message)
	}

	medicines := envelope.Data.Medicines
	if medicines == nil {
		medicines = []*model.RemoteMedicine{}
	}
	return medicines, nil
}

func (c *Client) count(status string) {
	if c.metrics != nil {
		c.metrics.RemoteLookups.WithLabelValues("pharmacy", status).Inc()
	}
}
