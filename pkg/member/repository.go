package member

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSourceMissing means the backing roster is absent or unreadable.
var ErrSourceMissing = errors.New("roster source missing")

// Repository is the backing store of the directory. Snapshot returns the raw
// table; Append persists a validated new member and returns its id.
type Repository interface {
	Snapshot(ctx context.Context) (Table, error)
	Append(ctx context.Context, m NewMember) (uuid.UUID, error)
}
