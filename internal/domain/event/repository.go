package event

import "context"

// Repository describes event persistence needs from use cases.
// List includes the joined series summary.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	Create(ctx context.Context, fields Fields) (Event, error)
	Update(ctx context.Context, id int64, patch Patch) (Event, error)
	Delete(ctx context.Context, id int64) error
}
