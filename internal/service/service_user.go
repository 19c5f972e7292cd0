package service

import (
	"context"
	"strings"

	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/internal/store"
	"github.com/transparent-media/library/models"
)

type userService struct {
	local  *store.LocalStore
	gate   *remoteGate
	logger *logger.Logger
}

func NewUserService(local *store.LocalStore, gate *remoteGate, log *logger.Logger) UserService {
	return &userService{local: local, gate: gate, logger: log}
}

// FindOrCreateUser implements UserService. A successful remote lookup is merged
// into the local mirror so that any provisional negative-ID user created while
// offline is re-keyed to the server-assigned ID.
func (s *userService) FindOrCreateUser(ctx context.Context, username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, store.ErrEmptyUsername
	}

	remoteUser, err := callRemote(ctx, s.gate, func(ctx context.Context, remote store.RemoteLibrary) (models.User, error) {
		return remote.FindOrCreateUser(ctx, username)
	})
	if err == nil {
		merged, _ := s.local.MergeUser(remoteUser)
		return merged, nil
	}

	s.logger.Debug().Err(err).Str("func", "FindOrCreateUser").Str("username", username).Msg("remote unavailable, resolving user locally")

	return s.local.FindOrCreateUser(username)
}
