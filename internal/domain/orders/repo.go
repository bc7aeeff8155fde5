package orders

import "context"

// OrderRepository is the storage port for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByClinician(ctx context.Context, clinicianID string, limit, offset int) ([]*Order, int, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Order, int, error)
	CountByClinician(ctx context.Context, clinicianID string) (int, error)
}
