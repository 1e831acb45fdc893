// Package adminapi is the pharmacy service's client for the admin
// service's GraphQL endpoint. It exists to resolve the weak patient
// reference stored on medicines.
package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/medisuite/hospital-services/internal/model"
	"github.com/medisuite/hospital-services/pkg/metrics"
)

const patientFields = "id name age gender address phone disease"

// Client issues synchronous GraphQL queries against the admin service.
//
// Failure handling is deliberately lossy: a missing patient, a network
// error, a non-2xx status and a malformed body all come back as nil.
// Errors are logged here and never surfaced to callers, so "patient does
// not exist" and "admin service is down" are indistinguishable upstream.
type Client struct {
	url     string
	http    *http.Client
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewClient creates a client for the admin GraphQL endpoint at url.
// The underlying transport carries no explicit timeout: a hung admin
// service hangs the calling request until the transport gives up on its
// own. metrics may be nil.
func NewClient(url string, m *metrics.Metrics) *Client {
	return &Client{
		url:     url,
		http:    &http.Client{},
		metrics: m,
		logger:  log.With().Str("component", "adminapi").Logger(),
	}
}

// Resolve fetches a single patient by id. A nil result means either the
// patient does not exist or the lookup failed; the caller cannot tell
// which.
func (c *Client) Resolve(ctx context.Context, id string) *model.RemotePatient {
	query := fmt.Sprintf("query ($id: ID!) { patient(id: $id) { %s } }", patientFields)

	var payload struct {
		Patient *model.RemotePatient `json:"patient"`
	}
	if err := c.execute(ctx, query, map[string]interface{}{"id": id}, &payload); err != nil {
		c.count("error")
		c.logger.Error().Err(err).Str("patient_id", id).
			Msg("failed to fetch patient from admin service")
		return nil
	}

	if payload.Patient == nil {
		c.count("miss")
		return nil
	}
	c.count("hit")
	return payload.Patient
}

// ResolveMany batches several lookups into one outbound query by
// aliasing each id under its own field (p0, p1, ...). Entries that
// resolve to null are dropped; the rest keep their input order. Any
// failure of the call as a whole yields an empty collection.
func (c *Client) ResolveMany(ctx context.Context, ids []string) []*model.RemotePatient {
	if len(ids) == 0 {
		return []*model.RemotePatient{}
	}

	var b strings.Builder
	b.WriteString("query {")
	for i, id := range ids {
		fmt.Fprintf(&b, " p%d: patient(id: %q) { %s }", i, id, patientFields)
	}
	b.WriteString(" }")

	var payload map[string]*model.RemotePatient
	if err := c.execute(ctx, b.String(), nil, &payload); err != nil {
		c.count("error")
		c.logger.Error().Err(err).Int("count", len(ids)).
			Msg("failed to fetch patients from admin service")
		return []*model.RemotePatient{}
	}

	patients := make([]*model.RemotePatient, 0, len(ids))
	for i := range ids {
		if p := payload[fmt.Sprintf("p%d", i)]; p != nil {
			patients = append(patients, p)
		}
	}
	c.count("hit")
	return patients
}

// execute posts a GraphQL document and decodes the data payload into out.
// Remote resolver errors are treated the same as transport failures.
func (c *Client) execute(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("empty response body")
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("remote error: %s", envelope.Errors[0].Message)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("response has no data")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}
	return nil
}

func (c *Client) count(status string) {
	if c.metrics != nil {
		c.metrics.RemoteLookups.WithLabelValues("admin", status).Inc()
	}
}
