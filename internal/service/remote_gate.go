package service

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/transparent-media/library/internal/config"
	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/internal/store"
)

// ErrRemoteDisabled is returned by the gate when no remote store is configured.
// Callers treat it the same way as an unreachable remote and serve locally.
var ErrRemoteDisabled = errors.New("remote store is not configured")

// remoteGate funnels every remote call through a circuit breaker and a
// per-call timeout. While the breaker is open calls fail immediately without
// touching the network; after the cooldown a single probe call is let through
// and a success closes the breaker again.
type remoteGate struct {
	remote  store.RemoteLibrary
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
}

func newRemoteGate(remote store.RemoteLibrary, cfg config.Remote, log *logger.Logger) *remoteGate {
	trip := cfg.BreakerTrip
	if trip == 0 {
		trip = 3
	}

	settings := gobreaker.Settings{
		Name:        "remote-library",
		MaxRequests: 1,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= trip
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("remote availability changed")
		},
	}

	return &remoteGate{
		remote:  remote,
		breaker: gobreaker.NewCircuitBreaker(settings),
		timeout: cfg.RequestTimeout,
	}
}

// Available reports whether the gate would currently attempt a remote call.
func (g *remoteGate) Available() bool {
	return g.remote != nil && g.breaker.State() != gobreaker.StateOpen
}

// callRemote executes fn against the remote store through the breaker with a
// bounded timeout. The caller falls back to the local store on any error.
func callRemote[T any](ctx context.Context, g *remoteGate, fn func(ctx context.Context, remote store.RemoteLibrary) (T, error)) (T, error) {
	var zero T
	if g.remote == nil {
		return zero, ErrRemoteDisabled
	}

	result, err := g.breaker.Execute(func() (any, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		return fn(callCtx, g.remote)
	})
	if err != nil {
		return zero, err
	}

	value, ok := result.(T)
	if !ok {
		return zero, nil
	}

	return value, nil
}
