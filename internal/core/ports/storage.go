package ports

import "context"

// Storage is the external file store holding uploaded images.
//
// Delete is best-effort: callers treat a failure as a condition to log,
// never as a reason to block deletion of the owning record.
type Storage interface {
	Delete(ctx context.Context, path string) error
}
