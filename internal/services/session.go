package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"printshop-backend/internal/models"
)

type ResolverOptions struct {
	Attempts int
	Delay    time.Duration
	MaxDelay time.Duration
}

func DefaultResolverOptions() ResolverOptions {
	return ResolverOptions{
		Attempts: 5,
		Delay:    500 * time.Millisecond,
		MaxDelay: 2 * time.Second,
	}
}

// SessionResolver maps an authenticated identity to its Usuarios profile.
// Right after sign-up the profile row may not be visible yet, so Resolve
// polls for it.
type SessionResolver struct {
	profiles ProfileStore
	opts     ResolverOptions
}

func NewSessionResolver(profiles ProfileStore, opts ResolverOptions) *SessionResolver {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	if opts.MaxDelay < opts.Delay {
		opts.MaxDelay = opts.Delay
	}
	return &SessionResolver{profiles: profiles, opts: opts}
}

// Resolve returns (nil, nil) when no profile shows up within the configured
// attempts. A query error other than "no rows" stops polling at once.
func (r *SessionResolver) Resolve(ctx context.Context, authID uuid.UUID) (*models.Profile, error) {
	delay := r.opts.Delay

	for attempt := 1; attempt <= r.opts.Attempts; attempt++ {
		profile, err := r.profiles.GetProfileByAuthID(ctx, authID)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			zap.L().Error("profile lookup failed",
				zap.String("auth_id", authID.String()), zap.Error(err))
			return nil, fmt.Errorf("failed to resolve profile: %w", err)
		}

		zap.L().Debug("profile not found yet",
			zap.String("auth_id", authID.String()), zap.Int("attempt", attempt))

		if attempt == r.opts.Attempts {
			break
		}
		if err := sleepContext(ctx, delay); err != nil {
			return nil, err
		}
		delay *= 2
		if delay > r.opts.MaxDelay {
			delay = r.opts.MaxDelay
		}
	}

	zap.L().Warn("profile not found after retries",
		zap.String("auth_id", authID.String()), zap.Int("attempts", r.opts.Attempts))
	return nil, nil
}

// Require does a single lookup and fails with ErrProfileNotFound when the
// row is missing. Used on every request that acts on behalf of a profile.
func (r *SessionResolver) Require(ctx context.Context, authID uuid.UUID) (*models.Profile, error) {
	profile, err := r.profiles.GetProfileByAuthID(ctx, authID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
