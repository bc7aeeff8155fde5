package catalog

import (
	"context"
	"fmt"

	"github.com/collagendirect/portal/pkg/pagination"
)

type Service struct {
	products ProductRepository
}

func NewService(products ProductRepository) *Service {
	return &Service{products: products}
}

func (s *Service) Create(ctx context.Context, p *Product) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.PriceAdmin != nil && *p.PriceAdmin < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return s.products.Create(ctx, p)
}

// GetActive returns the product only if it exists and is orderable.
func (s *Service) GetActive(ctx context.Context, id int) (*Product, error) {
	return s.products.GetActive(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int) (*Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Product, int, error) {
	p := pagination.Normalize(limit, offset)
	return s.products.List(ctx, p.Limit, p.Offset)
}

// Deactivate pulls a product from the orderable catalog. Existing orders
// keep their snapshots.
func (s *Service) Deactivate(ctx context.Context, id int) error {
	return s.products.SetActive(ctx, id, false)
}
