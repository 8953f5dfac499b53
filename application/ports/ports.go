// Package ports defines the interfaces the application layer depends on.
// Infrastructure provides the implementations.
package ports

import (
	"context"
	"time"

	"anniversary-backend/domain/profile"
)

// SocialProfile is the subset of social-graph data the pipeline uses.
type SocialProfile struct {
	ProfileName        string
	ProfileDisplayName string
	ProfileImage       string
	// UserCreatedAt is the profile-system creation timestamp. The registry's
	// earliest transfer remains the canonical creation time; this one is
	// informational only.
	UserCreatedAt time.Time
}

// SocialGraphClient queries the social-graph API for profile data, filtered
// to the Farcaster namespace. A nil result with nil error means no matching
// profile exists.
type SocialGraphClient interface {
	ProfileByFID(ctx context.Context, fid profile.FID) (*SocialProfile, error)
}

// TransferEvent is a name-registry record assigning a username to an FID.
type TransferEvent struct {
	Timestamp int64 // unix seconds
	Username  string
}

// NameRegistry queries the fname registry for historical transfer events.
// An empty slice means the FID has no registry record.
type NameRegistry interface {
	Transfers(ctx context.Context, fid profile.FID) ([]TransferEvent, error)
}

// ProfileCache is an optional, explicitly managed key-value store for
// resolved profiles. It is never authoritative: callers invalidate entries
// with Delete or Clear, nothing expires silently into correctness problems.
type ProfileCache interface {
	Get(ctx context.Context, fid profile.FID) (*profile.UserProfile, bool)
	Set(ctx context.Context, p *profile.UserProfile, ttl time.Duration) error
	Delete(ctx context.Context, fid profile.FID) error
	Clear(ctx context.Context) error
}

// RenderParams names the fields a card render depends on. The renderer is a
// pure function of these parameters; every field is string-typed on the wire.
type RenderParams struct {
	FID          string
	JoinDate     string
	Anniversary  string
	IsError      bool
	ErrorMessage string
	IsInitial    bool
	AwesomeText  string
	Username     string
}

// ImageRenderer names the image that should be rendered for a state. It
// returns a reference (URL or data URI), never pixels.
type ImageRenderer interface {
	ImageRef(params RenderParams) (string, error)
}
