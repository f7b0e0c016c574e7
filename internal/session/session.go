package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/goserg/bizness/internal/domain"
	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("session slot not found")

// Backend is durable byte storage addressed by slot key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is the single session slot of one profile. Its operations never fail
// from the caller's point of view: storage errors are logged, and a record
// that does not decode reads as no session.
type Store struct {
	backend Backend
	key     string
	log     *logrus.Entry
}

func New(backend Backend, key string, l *logrus.Logger) *Store {
	return &Store{
		backend: backend,
		key:     key,
		log: l.WithFields(map[string]interface{}{
			"from": "session-store",
			"slot": key,
		}),
	}
}

func (s *Store) Read(ctx context.Context) (domain.Identity, bool) {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.WithError(err).Error("read session slot")
		}
		return domain.Identity{}, false
	}
	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		s.log.WithError(err).Debug("stored identity does not decode, treating as absent")
		return domain.Identity{}, false
	}
	// null, {} and records without a role decode cleanly but are no session.
	if _, err := domain.ParseRole(string(identity.Role)); err != nil {
		s.log.WithError(err).Debug("stored identity has no valid role, treating as absent")
		return domain.Identity{}, false
	}
	return identity, true
}

func (s *Store) Write(ctx context.Context, identity domain.Identity) {
	raw, err := json.Marshal(identity)
	if err != nil {
		s.log.WithError(err).Error("encode identity")
		return
	}
	if err := s.backend.Set(ctx, s.key, raw); err != nil {
		s.log.WithError(err).Error("write session slot")
	}
}

func (s *Store) Clear(ctx context.Context) {
	if err := s.backend.Delete(ctx, s.key); err != nil {
		s.log.WithError(err).Error("clear session slot")
	}
}

// Key returns the slot key of the profile with the given id.
func Key(prefix string, profileID string) string {
	return prefix + profileID
}
