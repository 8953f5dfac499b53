// Package resolver merges the two upstream views of a Farcaster account
// into a single per-request profile.
package resolver

import (
	"context"
	"sort"
	"time"

	"anniversary-backend/application/ports"
	"anniversary-backend/domain/profile"
	apperrors "anniversary-backend/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Resolver resolves an FID to a UserProfile. The registry's earliest
// transfer timestamp is the canonical creation time; the social graph only
// decorates the profile with names, so its failures are tolerated.
type Resolver struct {
	social   ports.SocialGraphClient
	registry ports.NameRegistry
	cache    ports.ProfileCache // nil disables caching
	cacheTTL time.Duration
	timeout  time.Duration
	logger   *zap.Logger
}

// New creates a resolver. cache may be nil.
func New(
	social ports.SocialGraphClient,
	registry ports.NameRegistry,
	cache ports.ProfileCache,
	cacheTTL time.Duration,
	timeout time.Duration,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		social:   social,
		registry: registry,
		cache:    cache,
		cacheTTL: cacheTTL,
		timeout:  timeout,
		logger:   logger,
	}
}

// Resolve looks up the account behind fid. The two lookups run concurrently;
// neither depends on the other. A registry failure or an empty transfer list
// is terminal, a social-graph failure is not.
func (r *Resolver) Resolve(ctx context.Context, fid profile.FID) (*profile.UserProfile, error) {
	if r.cache != nil {
		if cached, ok := r.cache.Get(ctx, fid); ok {
			return cached, nil
		}
	}

	var (
		social    *ports.SocialProfile
		transfers []ports.TransferEvent
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sctx, cancel := context.WithTimeout(gctx, r.timeout)
		defer cancel()

		p, err := r.social.ProfileByFID(sctx, fid)
		if err != nil {
			// Display name is optional decoration. Log once and move on.
			r.logger.Warn("social graph lookup failed",
				zap.String("fid", fid.String()),
				zap.Error(err),
			)
			return nil
		}
		social = p
		return nil
	})

	g.Go(func() error {
		rctx, cancel := context.WithTimeout(gctx, r.timeout)
		defer cancel()

		events, err := r.registry.Transfers(rctx, fid)
		if err != nil {
			return err
		}
		transfers = events
		return nil
	})

	if err := g.Wait(); err != nil {
		r.logger.Error("name registry lookup failed",
			zap.String("fid", fid.String()),
			zap.Error(err),
		)
		if appErr := apperrors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		return nil, apperrors.NewUpstreamUnavailableError("name registry", err)
	}

	if len(transfers) == 0 {
		return nil, apperrors.NewUserNotFoundError(fid.String())
	}

	// The earliest transfer approximates account creation time. Responses
	// are not guaranteed to arrive ordered.
	earliest := earliestTransfer(transfers)

	p := &profile.UserProfile{
		FID:       fid,
		CreatedAt: time.Unix(earliest.Timestamp, 0).UTC(),
		Username:  earliest.Username,
	}
	if social != nil {
		p.ProfileName = social.ProfileName
		p.ProfileDisplayName = social.ProfileDisplayName
		p.ProfileImage = social.ProfileImage
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, p, r.cacheTTL); err != nil {
			r.logger.Warn("profile cache write failed",
				zap.String("fid", fid.String()),
				zap.Error(err),
			)
		}
	}

	return p, nil
}

// Invalidate drops any cached entry for fid. No-op without a cache.
func (r *Resolver) Invalidate(ctx context.Context, fid profile.FID) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Delete(ctx, fid)
}

func earliestTransfer(transfers []ports.TransferEvent) ports.TransferEvent {
	sorted := make([]ports.TransferEvent, len(transfers))
	copy(sorted, transfers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})
	return sorted[0]
}
