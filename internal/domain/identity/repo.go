package identity

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type ClinicianRepository interface {
	Create(ctx context.Context, c *Clinician) error
	GetByID(ctx context.Context, id string) (*Clinician, error)
	Update(ctx context.Context, c *Clinician) error
}

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	// GetForClinician fetches a patient only if it belongs to the given
	// clinician, mirroring the portal's ownership-scoped lookups.
	GetForClinician(ctx context.Context, id, clinicianID string) (*Patient, error)
	ListByClinician(ctx context.Context, clinicianID string, limit, offset int) ([]*Patient, int, error)
}
