package contracts

import "context"

// ViewStateRepository keeps the per-session state of each view. Load
// reports false when nothing is stored yet.
type ViewStateRepository interface {
	Load(ctx context.Context, sessionID, view string, dest interface{}) (bool, error)
	Save(ctx context.Context, sessionID, view string, state interface{}) error
	Delete(ctx context.Context, sessionID, view string) error
	Name() string
}
