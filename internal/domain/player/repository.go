package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	Create(ctx context.Context, fields Fields) (Player, error)
	Update(ctx context.Context, id int64, patch Patch) (Player, error)
	Delete(ctx context.Context, id int64) error
}
