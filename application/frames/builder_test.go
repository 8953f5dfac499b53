package frames

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"anniversary-backend/application/ports"
	"anniversary-backend/application/resolver"
	"anniversary-backend/domain/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Upstream stubs; the builder is exercised through a real resolver so these
// tests cover the whole pipeline below the HTTP layer.

type stubSocial struct {
	profile *ports.SocialProfile
	err     error
}

func (s *stubSocial) ProfileByFID(ctx context.Context, fid profile.FID) (*ports.SocialProfile, error) {
	return s.profile, s.err
}

type stubRegistry struct {
	transfers []ports.TransferEvent
	err       error
}

func (s *stubRegistry) Transfers(ctx context.Context, fid profile.FID) ([]ports.TransferEvent, error) {
	return s.transfers, s.err
}

type stubRenderer struct {
	err  error
	last ports.RenderParams
}

func (s *stubRenderer) ImageRef(params ports.RenderParams) (string, error) {
	s.last = params
	if s.err != nil {
		return "", s.err
	}
	return "https://frame.example/api/og?fid=" + params.FID, nil
}

func fixedNow() time.Time {
	return time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
}

func newTestBuilder(social ports.SocialGraphClient, registry ports.NameRegistry, renderer ports.ImageRenderer) *Builder {
	res := resolver.New(social, registry, nil, 0, time.Second, zap.NewNop())
	return NewBuilder(res, renderer, "https://frame.example", fixedNow, zap.NewNop())
}

func TestInitial(t *testing.T) {
	b := newTestBuilder(&stubSocial{}, &stubRegistry{}, &stubRenderer{})

	resp := b.Initial()

	assert.Equal(t, ViewInitial, resp.State)
	assert.Equal(t, initialTitle, resp.Title)
	require.Len(t, resp.Buttons, 1)
	assert.Equal(t, "Check Anniversary", resp.Buttons[0].Label)
	assert.Equal(t, ActionPost, resp.Buttons[0].Action)
	assert.Equal(t, resp.Image, resp.OGImage)
}

func TestHandleAction_SuccessfulCheck(t *testing.T) {
	// fid 500, joined 2021-01-15, checked 2024-01-15: exactly 3 years and
	// the first tier message.
	renderer := &stubRenderer{}
	b := newTestBuilder(
		&stubSocial{profile: &ports.SocialProfile{ProfileDisplayName: "Alice"}},
		&stubRegistry{transfers: []ports.TransferEvent{{Timestamp: 1610668800, Username: "alice"}}},
		renderer,
	)

	resp := b.HandleAction(context.Background(), ActionEnvelope{
		UntrustedData: UntrustedData{FID: 500, ButtonIndex: 1},
	})

	assert.Equal(t, ViewResult, resp.State)
	assert.Equal(t, resultTitle, resp.Title)
	assert.Contains(t, resp.Description, "January 15, 2021")
	assert.Contains(t, resp.Description, "3 years")

	require.Len(t, resp.Buttons, 3)
	assert.Equal(t, "Share", resp.Buttons[0].Label)
	assert.Equal(t, ActionLink, resp.Buttons[0].Action)
	assert.Equal(t, "Check Again", resp.Buttons[1].Label)
	assert.Equal(t, ActionPost, resp.Buttons[1].Action)
	assert.Equal(t, "Home", resp.Buttons[2].Label)
	assert.Equal(t, ActionPost, resp.Buttons[2].Action)

	// Only the share button opens an external link.
	shareURL, err := url.Parse(resp.Buttons[0].Target)
	require.NoError(t, err)
	assert.Equal(t, "warpcast.com", shareURL.Host)
	assert.Contains(t, shareURL.Query().Get("embeds[]"), "https://frame.example/frames")

	assert.Equal(t, "500", renderer.last.FID)
	assert.Equal(t, "January 15, 2021", renderer.last.JoinDate)
	assert.Equal(t, "3 years", renderer.last.Anniversary)
	assert.Contains(t, renderer.last.AwesomeText, "1,000")
	assert.Equal(t, "Alice", renderer.last.Username)
}

func TestHandleAction_UserNotFound(t *testing.T) {
	b := newTestBuilder(
		&stubSocial{},
		&stubRegistry{transfers: []ports.TransferEvent{}},
		&stubRenderer{},
	)

	resp := b.HandleAction(context.Background(), ActionEnvelope{
		UntrustedData: UntrustedData{FID: 999, ButtonIndex: 1},
	})

	assert.Equal(t, ViewError, resp.State)
	assert.Equal(t, errorTitle, resp.Title)
	require.Len(t, resp.Buttons, 1)
	assert.Equal(t, "Retry", resp.Buttons[0].Label)
	assert.Equal(t, ActionPost, resp.Buttons[0].Action)
}

func TestHandleAction_UpstreamFailure(t *testing.T) {
	b := newTestBuilder(
		&stubSocial{},
		&stubRegistry{err: errors.New("connection refused")},
		&stubRenderer{},
	)

	resp := b.HandleAction(context.Background(), ActionEnvelope{
		UntrustedData: UntrustedData{FID: 500, ButtonIndex: 1},
	})

	assert.Equal(t, ViewError, resp.State)
	// The raw upstream error never leaks to the user.
	assert.NotContains(t, resp.Description, "connection refused")
}

func TestHandleAction_MissingFID(t *testing.T) {
	b := newTestBuilder(&stubSocial{}, &stubRegistry{}, &stubRenderer{})

	resp := b.HandleAction(context.Background(), ActionEnvelope{
		UntrustedData: UntrustedData{ButtonIndex: 1},
	})

	assert.Equal(t, ViewError, resp.State)
}

func TestHandleAction_HomeReturnsToInitial(t *testing.T) {
	b := newTestBuilder(&stubSocial{}, &stubRegistry{}, &stubRenderer{})

	resp := b.HandleAction(context.Background(), ActionEnvelope{
		UntrustedData: UntrustedData{FID: 500, ButtonIndex: 3, State: ViewResult},
	})

	assert.Equal(t, ViewInitial, resp.State)
	assert.Equal(t, initialTitle, resp.Title)
}

func TestHandleAction_RetryFromErrorResolvesAgain(t *testing.T) {
	b := newTestBuilder(
		&stubSocial{},
		&stubRegistry{transfers: []ports.TransferEvent{{Timestamp: 1610668800, Username: "alice"}}},
		&stubRenderer{},
	)

	resp := b.HandleAction(context.Background(), ActionEnvelope{
		UntrustedData: UntrustedData{FID: 500, ButtonIndex: 1, State: ViewError},
	})

	assert.Equal(t, ViewResult, resp.State)
}

func TestHandleAction_NotYetJoined(t *testing.T) {
	// Transfer timestamp after the fixed "now".
	future := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	renderer := &stubRenderer{}
	b := newTestBuilder(
		&stubSocial{},
		&stubRegistry{transfers: []ports.TransferEvent{{Timestamp: future, Username: "early"}}},
		renderer,
	)

	resp := b.HandleAction(context.Background(), ActionEnvelope{
		UntrustedData: UntrustedData{FID: 500, ButtonIndex: 1},
	})

	assert.Equal(t, ViewResult, resp.State)
	assert.Equal(t, "Not joined yet", renderer.last.Anniversary)
}

func TestRenderFailureFallsBackToPlaceholder(t *testing.T) {
	b := newTestBuilder(
		&stubSocial{},
		&stubRegistry{transfers: []ports.TransferEvent{{Timestamp: 1610668800, Username: "alice"}}},
		&stubRenderer{err: errors.New("render backend down")},
	)

	resp := b.HandleAction(context.Background(), ActionEnvelope{
		UntrustedData: UntrustedData{FID: 500, ButtonIndex: 1},
	})

	// The request still succeeds with the placeholder image.
	assert.Equal(t, ViewResult, resp.State)
	assert.True(t, strings.HasPrefix(resp.Image, "data:image/svg+xml"))
}
