package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
	"printshop-backend/internal/services/servicetest"
)

func fastResolverOptions(attempts int) services.ResolverOptions {
	return services.ResolverOptions{
		Attempts: attempts,
		Delay:    time.Millisecond,
		MaxDelay: 2 * time.Millisecond,
	}
}

func TestSessionResolver_ResolveImmediately(t *testing.T) {
	store := servicetest.NewMemoryStore()
	ana := store.AddProfile("Ana", models.RoleClient)

	resolver := services.NewSessionResolver(store, fastResolverOptions(5))
	profile, err := resolver.Resolve(context.Background(), ana.AuthID)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, ana.ID, profile.ID)
	assert.Equal(t, 1, store.ProfileLookups)
}

func TestSessionResolver_ResolvePollsUntilVisible(t *testing.T) {
	store := servicetest.NewMemoryStore()
	ana := store.AddProfile("Ana", models.RoleClient)
	store.ProfileVisibleAfter = 2

	resolver := services.NewSessionResolver(store, fastResolverOptions(5))
	profile, err := resolver.Resolve(context.Background(), ana.AuthID)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, 3, store.ProfileLookups)
}

func TestSessionResolver_ResolveGivesUp(t *testing.T) {
	store := servicetest.NewMemoryStore()

	resolver := services.NewSessionResolver(store, fastResolverOptions(5))
	profile, err := resolver.Resolve(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.Nil(t, profile)
	assert.Equal(t, 5, store.ProfileLookups)
}

func TestSessionResolver_ResolveStopsOnQueryError(t *testing.T) {
	store := servicetest.NewMemoryStore()
	store.Err = servicetest.ErrInjected

	resolver := services.NewSessionResolver(store, fastResolverOptions(5))
	profile, err := resolver.Resolve(context.Background(), uuid.New())

	assert.ErrorIs(t, err, servicetest.ErrInjected)
	assert.Nil(t, profile)
	assert.Equal(t, 1, store.ProfileLookups)
}

func TestSessionResolver_ResolveHonoursContext(t *testing.T) {
	store := servicetest.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resolver := services.NewSessionResolver(store, services.ResolverOptions{
		Attempts: 3,
		Delay:    time.Hour,
		MaxDelay: time.Hour,
	})
	_, err := resolver.Resolve(ctx, uuid.New())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, store.ProfileLookups)
}

func TestSessionResolver_Require(t *testing.T) {
	store := servicetest.NewMemoryStore()
	admin := store.AddProfile("Bea", models.RoleAdmin)
	resolver := services.NewSessionResolver(store, services.DefaultResolverOptions())

	profile, err := resolver.Require(context.Background(), admin.AuthID)
	require.NoError(t, err)
	assert.True(t, profile.IsAdmin())

	_, err = resolver.Require(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrProfileNotFound)
	assert.Equal(t, 2, store.ProfileLookups)
}
