package series

import "context"

// Repository describes series persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Series, error)
	Create(ctx context.Context, fields Fields) (Series, error)
	Update(ctx context.Context, id int64, patch Patch) (Series, error)
	Delete(ctx context.Context, id int64) error
}
