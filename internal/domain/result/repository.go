package result

import "context"

// Repository describes result persistence needs from use cases.
// List includes the joined player and event summaries.
type Repository interface {
	List(ctx context.Context) ([]Result, error)
	Create(ctx context.Context, fields Fields) (Result, error)
	Update(ctx context.Context, id int64, patch Patch) (Result, error)
	Delete(ctx context.Context, id int64) error
}
