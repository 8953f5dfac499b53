package frames

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"anniversary-backend/application/ports"
	"anniversary-backend/application/resolver"
	"anniversary-backend/domain/anniversary"
	"anniversary-backend/domain/profile"
	apperrors "anniversary-backend/pkg/errors"

	"go.uber.org/zap"
)

const (
	initialTitle       = "Check Your Farcaster Anniversary"
	initialDescription = "Find out when you joined Farcaster and how long you've been a member!"
	resultTitle        = "My Farcaster Anniversary"
	errorTitle         = "Farcaster Anniversary Frame Error"
	errorDescription   = "An error occurred while processing your Farcaster anniversary information."

	composeURL = "https://warpcast.com/~/compose"

	// Shown when even the renderer reference cannot be built. A 1x1 SVG so
	// the client always has something to display.
	placeholderImage = "data:image/svg+xml," +
		"%3Csvg%20xmlns='http://www.w3.org/2000/svg'%20width='1'%20height='1'/%3E"
)

// Builder assembles frame responses. Every resolver or calculator failure is
// normalized into the error view here; nothing propagates raw to the caller.
type Builder struct {
	resolver *resolver.Resolver
	renderer ports.ImageRenderer
	appURL   string
	now      func() time.Time
	logger   *zap.Logger
}

// NewBuilder creates a builder. appURL is the externally reachable base URL
// used for the share embed. now is injectable for tests; nil means time.Now.
func NewBuilder(
	res *resolver.Resolver,
	renderer ports.ImageRenderer,
	appURL string,
	now func() time.Time,
	logger *zap.Logger,
) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{
		resolver: res,
		renderer: renderer,
		appURL:   appURL,
		now:      now,
		logger:   logger,
	}
}

// Initial renders the first-visit view. No side effects.
func (b *Builder) Initial() Response {
	image := b.imageRef(ports.RenderParams{IsInitial: true})
	return Response{
		Image:       image,
		OGImage:     image,
		State:       ViewInitial,
		Title:       initialTitle,
		Description: initialDescription,
		Buttons: []Button{
			{Label: "Check Anniversary", Action: ActionPost},
		},
	}
}

// HandleAction applies one state-machine transition for a posted action and
// renders the resulting view.
func (b *Builder) HandleAction(ctx context.Context, env ActionEnvelope) Response {
	// Home returns to the initial view without touching upstreams.
	if env.UntrustedData.State == ViewResult && env.UntrustedData.ButtonIndex == 3 {
		return b.Initial()
	}

	fid, err := profile.FIDFromInt(env.UntrustedData.FID)
	if err != nil {
		return b.errorResponse(err)
	}

	// Every other submit re-resolves: the initial check, "Check Again" from
	// the result view, and "Retry" from the error view.
	return b.result(ctx, fid)
}

func (b *Builder) result(ctx context.Context, fid profile.FID) Response {
	p, err := b.resolver.Resolve(ctx, fid)
	if err != nil {
		return b.errorResponse(err)
	}

	joinDate := anniversary.FormatJoinDate(p.CreatedAt)
	tierText := anniversary.TierMessage(uint64(fid))

	var durationLabel string
	if d, future := anniversary.Compute(p.CreatedAt, b.now()); future {
		durationLabel = anniversary.NotYetJoined{}.String()
	} else {
		durationLabel = d.Label
	}

	image := b.imageRef(ports.RenderParams{
		FID:         fid.String(),
		JoinDate:    joinDate,
		Anniversary: durationLabel,
		AwesomeText: tierText,
		Username:    p.DisplayName(),
	})

	description := fmt.Sprintf(
		"I joined Farcaster on %s and have been a member for %s!",
		joinDate, durationLabel,
	)

	return Response{
		Image:       image,
		OGImage:     image,
		State:       ViewResult,
		Title:       resultTitle,
		Description: description,
		Buttons: []Button{
			{Label: "Share", Action: ActionLink, Target: b.shareTarget(description)},
			{Label: "Check Again", Action: ActionPost},
			{Label: "Home", Action: ActionPost},
		},
	}
}

func (b *Builder) errorResponse(err error) Response {
	message := "An unexpected error occurred"
	if appErr := apperrors.GetAppError(err); appErr != nil {
		message = appErr.UserMessage()
	}

	b.logger.Warn("frame rendered in error state", zap.Error(err))

	image := b.imageRef(ports.RenderParams{IsError: true, ErrorMessage: message})
	return Response{
		Image:       image,
		OGImage:     image,
		State:       ViewError,
		Title:       errorTitle,
		Description: errorDescription,
		Buttons: []Button{
			{Label: "Retry", Action: ActionPost},
		},
	}
}

// imageRef asks the renderer to name the image for a state. A render failure
// degrades to the placeholder instead of failing the whole response.
func (b *Builder) imageRef(params ports.RenderParams) string {
	ref, err := b.renderer.ImageRef(params)
	if err != nil {
		b.logger.Error("image render failed, using placeholder",
			zap.Error(apperrors.NewRenderFailureError(err)))
		return placeholderImage
	}
	return ref
}

// shareTarget builds the compose link that embeds this frame.
func (b *Builder) shareTarget(text string) string {
	q := url.Values{}
	q.Set("text", text+" Check your Farcaster anniversary: ")
	q.Add("embeds[]", b.appURL+"/frames")
	return composeURL + "?" + q.Encode()
}
