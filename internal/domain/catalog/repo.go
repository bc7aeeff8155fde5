package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product does not exist or, for
// active-scoped lookups, exists but is deactivated.
var ErrNotFound = errors.New("product not found")

type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int) (*Product, error)
	// GetActive fetches a product only when its active flag is set.
	GetActive(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context, limit, offset int) ([]*Product, int, error)
	SetActive(ctx context.Context, id int, active bool) error
}
