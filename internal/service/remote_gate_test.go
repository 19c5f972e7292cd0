package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/transparent-media/library/internal/config"
	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/internal/mock"
	"github.com/transparent-media/library/internal/store"
)

func newTestGate(remote store.RemoteLibrary, cooldown time.Duration) *remoteGate {
	return newRemoteGate(remote, config.Remote{
		RequestTimeout:  time.Second,
		BreakerCooldown: cooldown,
		BreakerTrip:     2,
	}, logger.Nop())
}

func TestRemoteGate_NilRemote(t *testing.T) {
	gate := newTestGate(nil, time.Minute)

	assert.False(t, gate.Available())

	_, err := callRemote(context.Background(), gate, func(ctx context.Context, remote store.RemoteLibrary) (bool, error) {
		t.Fatal("must not be called without a remote store")
		return false, nil
	})
	assert.ErrorIs(t, err, ErrRemoteDisabled)
}

func TestRemoteGate_OpensAfterConsecutiveFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock.NewMockRemoteLibrary(ctrl)
	gate := newTestGate(remote, time.Minute)
	ctx := context.Background()

	remote.EXPECT().Ping(gomock.Any()).Return(errConnRefused).Times(2)

	ping := func(ctx context.Context, remote store.RemoteLibrary) (struct{}, error) {
		return struct{}{}, remote.Ping(ctx)
	}

	_, err := callRemote(ctx, gate, ping)
	require.Error(t, err)
	assert.True(t, gate.Available(), "one failure does not open the breaker")

	_, err = callRemote(ctx, gate, ping)
	require.Error(t, err)
	assert.False(t, gate.Available(), "breaker opens at the trip threshold")

	// while open the remote is not touched at all
	_, err = callRemote(ctx, gate, func(ctx context.Context, remote store.RemoteLibrary) (struct{}, error) {
		t.Fatal("must not be called while the breaker is open")
		return struct{}{}, nil
	})
	require.Error(t, err)
}

func TestRemoteGate_ReprobesAfterCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock.NewMockRemoteLibrary(ctrl)
	gate := newTestGate(remote, 20*time.Millisecond)
	ctx := context.Background()

	remote.EXPECT().Ping(gomock.Any()).Return(errConnRefused).Times(2)

	ping := func(ctx context.Context, remote store.RemoteLibrary) (struct{}, error) {
		return struct{}{}, remote.Ping(ctx)
	}

	_, _ = callRemote(ctx, gate, ping)
	_, _ = callRemote(ctx, gate, ping)
	require.False(t, gate.Available())

	time.Sleep(30 * time.Millisecond)

	remote.EXPECT().Ping(gomock.Any()).Return(nil)
	_, err := callRemote(ctx, gate, ping)
	require.NoError(t, err, "a successful probe closes the breaker")
	assert.True(t, gate.Available())
}
