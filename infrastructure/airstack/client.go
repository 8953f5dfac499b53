// Package airstack queries the Airstack social-graph API for Farcaster
// profile data.
package airstack

import (
	"bytes"
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

// profileQuery filters Socials to the Farcaster namespace on ethereum and
// pulls the fields the card uses.
const profileQuery = `
query GetFarcasterUser($fid: String!) {
  Socials(
    input: {filter: {dappName: {_eq: farcaster}, userId: {_eq: $fid}}, blockchain: ethereum}
  ) {
    Social {
      userId
      userCreatedAtBlockTimestamp
      profileName
      profileDisplayName
      profileImage
      profileImageContentValue {
        image {
          extraSmall
        }
      }
    }
  }
}
`

// Client is a SocialGraphClient backed by the Airstack GraphQL endpoint.
// A circuit breaker guards the upstream; while it is open every call reports
// the upstream as unavailable without touching the network.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewClient creates an Airstack client.
func NewClient(endpoint, apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *zap.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "airstack",
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

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type graphqlResponse struct {
	Data struct {
		Socials struct {
			Social []socialRecord `json:"Social"`
		} `json:"Socials"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type socialRecord struct {
	UserID                      string `json:"userId"`
	UserCreatedAtBlockTimestamp string `json:"userCreatedAtBlockTimestamp"`
	ProfileName                 string `json:"profileName"`
	ProfileDisplayName          string `json:"profileDisplayName"`
	ProfileImage                string `json:"profileImage"`
	ProfileImageContentValue    struct {
		Image struct {
			ExtraSmall string `json:"extraSmall"`
		} `json:"image"`
	} `json:"profileImageContentValue"`
}

// ProfileByFID queries the social graph for the profile behind fid. A nil
// result with nil error means no matching profile exists.
func (c *Client) ProfileByFID(ctx context.Context, fid profile.FID) (*ports.SocialProfile, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetchProfile(ctx, fid)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.metrics.ObserveUpstream("airstack", "rejected")
			return nil, apperrors.NewUpstreamUnavailableError("social graph", err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			c.metrics.ObserveUpstream("airstack", "timeout")
			return nil, apperrors.NewTimeoutError("social graph query")
		}
		c.metrics.ObserveUpstream("airstack", "error")
		return nil, err
	}
	c.metrics.ObserveUpstream("airstack", "success")
	if result == nil {
		return nil, nil
	}
	return result.(*ports.SocialProfile), nil
}

func (c *Client) fetchProfile(ctx context.Context, fid profile.FID) (*ports.SocialProfile, error) {
	body, err := json.Marshal(graphqlRequest{
		Query:     profileQuery,
		Variables: map[string]string{"fid": fid.String()},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamUnavailableError("social graph", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamUnavailableError("social graph",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var decoded graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.NewUpstreamUnavailableError("social graph", err)
	}
	if len(decoded.Errors) > 0 {
		return nil, apperrors.NewUpstreamUnavailableError("social graph",
			fmt.Errorf("graphql error: %s", decoded.Errors[0].Message))
	}

	if len(decoded.Data.Socials.Social) == 0 {
		return nil, nil
	}

	record := decoded.Data.Socials.Social[0]
	sp := &ports.SocialProfile{
		ProfileName:        record.ProfileName,
		ProfileDisplayName: record.ProfileDisplayName,
		ProfileImage:       record.ProfileImage,
	}
	if record.ProfileImageContentValue.Image.ExtraSmall != "" {
		sp.ProfileImage = record.ProfileImageContentValue.Image.ExtraSmall
	}
	// The block timestamp is informational; the registry's earliest transfer
	// remains the canonical creation time.
	if ts, err := time.Parse(time.RFC3339, record.UserCreatedAtBlockTimestamp); err == nil {
		sp.UserCreatedAt = ts
	}

	return sp, nil
}
