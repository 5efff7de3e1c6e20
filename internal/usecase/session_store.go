package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"
)

// maxSaveAttempts bounds how many times a mutation is re-applied on a fresh
// snapshot after losing a version race.
const maxSaveAttempts = 3

// sessionStore is the single read/write path to the session snapshot. Every
// step of the flow goes through it so that mutations are always applied to the
// latest version.
type sessionStore struct {
	repo interfaces.ISessionRepository
	now  func() time.Time
}

func newSessionStore(repo interfaces.ISessionRepository) sessionStore {
	return sessionStore{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (st sessionStore) load(ctx context.Context, id string) (entities.Session, error) {
	const op = "session.load"

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSessionID
	}
	s, err := st.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	s.EnsureMaps()
	return s, nil
}

// mutate loads the session, applies fn and saves it under a version check.
// fn may run more than once and must only depend on the session it is given.
func (st sessionStore) mutate(ctx context.Context, id string, fn func(s *entities.Session) error) (entities.Session, error) {
	const op = "session.mutate"

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		s, err := st.load(ctx, id)
		if err != nil {
			return entities.Session{}, err
		}
		if err := fn(&s); err != nil {
			return entities.Session{}, err
		}
		s.UpdatedAt = st.now()

		saved, err := st.repo.Save(ctx, s)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.Session{}, fmt.Errorf("%s: %w", op, err)
		}
		saved.EnsureMaps()
		return saved, nil
	}
	return entities.Session{}, ErrSessionConflict
}
