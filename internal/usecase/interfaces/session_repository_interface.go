package interfaces

import (
	"context"
	"errors"

	"home_estimate/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the stored session moved past
// the version the caller read.
var ErrVersionConflict = errors.New("version conflict")

// ISessionRepository abstracts persistence of the estimate session snapshot.
//
// The snapshot is shared by every step of the flow, so writes are guarded by
// Session.Version:
//   - Create stores version 1
//   - GetByID returns the zero value when the session does not exist
//   - Save writes only if the stored version equals s.Version and returns the
//     session with its version incremented
type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)
	Save(ctx context.Context, s entities.Session) (entities.Session, error)
}
