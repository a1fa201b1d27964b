package photo

import "context"

// Repository describes photo persistence needs from use cases.
// List includes the joined event summary.
type Repository interface {
	List(ctx context.Context) ([]Photo, error)
	Create(ctx context.Context, fields Fields) (Photo, error)
	Update(ctx context.Context, id int64, patch Patch) (Photo, error)
	Delete(ctx context.Context, id int64) error
}
