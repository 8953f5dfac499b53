// Package fnames queries the Farcaster fname registry for name-transfer
// history.
package fnames

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"anniversary-backend/application/ports"
	"anniversary-backend/domain/profile"
	apperrors "anniversary-backend/pkg/errors"
	"anniversary-backend/pkg/observability"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Client is a NameRegistry backed by the fname registry HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewClient creates a registry client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "fnames",
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state change",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		}),
		metrics: metrics,
		logger:  logger,
	}
}

type transfersResponse struct {
	Transfers []struct {
		Timestamp int64  `json:"timestamp"`
		Username  string `json:"username"`
	} `json:"transfers"`
}

// Transfers returns the historical name assignments for fid. An empty slice
// means the registry has no record for the FID.
func (c *Client) Transfers(ctx context.Context, fid profile.FID) ([]ports.TransferEvent, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetchTransfers(ctx, fid)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.metrics.ObserveUpstream("fnames", "rejected")
			return nil, apperrors.NewUpstreamUnavailableError("name registry", err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			c.metrics.ObserveUpstream("fnames", "timeout")
			return nil, apperrors.NewTimeoutError("name registry query")
		}
		c.metrics.ObserveUpstream("fnames", "error")
		return nil, err
	}
	c.metrics.ObserveUpstream("fnames", "success")
	return result.([]ports.TransferEvent), nil
}

func (c *Client) fetchTransfers(ctx context.Context, fid profile.FID) ([]ports.TransferEvent, error) {
	url := fmt.Sprintf("%s/transfers?fid=%s", c.baseURL, fid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamUnavailableError("name registry", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamUnavailableError("name registry",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var decoded transfersResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.NewUpstreamUnavailableError("name registry", err)
	}

	events := make([]ports.TransferEvent, 0, len(decoded.Transfers))
	for _, t := range decoded.Transfers {
		events = append(events, ports.TransferEvent{
			Timestamp: t.Timestamp,
			Username:  t.Username,
		})
	}
	return events, nil
}
