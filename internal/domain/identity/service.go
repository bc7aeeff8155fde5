package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/collagendirect/portal/internal/platform/ident"
	"github.com/collagendirect/portal/pkg/pagination"
)

// ErrInvalidReference is returned when an operation references a record
// that does not exist (e.g. registering a patient under an unknown
// clinician).
var ErrInvalidReference = errors.New("invalid reference")

type Service struct {
	clinicians ClinicianRepository
	patients   PatientRepository
	ids        ident.Generator
}

func NewService(clinicians ClinicianRepository, patients PatientRepository, ids ident.Generator) *Service {
	return &Service{clinicians: clinicians, patients: patients, ids: ids}
}

// CreateClinician persists a new portal user. An id is generated when the
// caller does not supply one.
func (s *Service) CreateClinician(ctx context.Context, c *Clinician) error {
	if c.ID == "" {
		c.ID = s.ids.Token()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.clinicians.Create(ctx, c)
}

func (s *Service) GetClinician(ctx context.Context, id string) (*Clinician, error) {
	return s.clinicians.GetByID(ctx, id)
}

// RegisterPatient creates a new patient record under the given clinician.
// It generates an opaque id and an MRN, stamps timestamps, and persists one
// row. The owner must exist; otherwise ErrInvalidReference is returned and
// nothing is written. Demographic fields are stored as supplied, without
// format validation.
func (s *Service) RegisterPatient(ctx context.Context, clinicianID string, d Demographics) (*Patient, error) {
	if clinicianID == "" {
		return nil, ErrInvalidReference
	}
	if _, err := s.clinicians.GetByID(ctx, clinicianID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("look up clinician %s: %w", clinicianID, err)
	}

	now := time.Now().UTC()
	p := &Patient{
		ID:                  s.ids.Token(),
		UserID:              clinicianID,
		FirstName:           nilIfEmpty(d.FirstName),
		LastName:            nilIfEmpty(d.LastName),
		DOB:                 nilIfEmpty(d.DOB),
		MRN:                 s.ids.MRN(now),
		Phone:               nilIfEmpty(d.Phone),
		Email:               nilIfEmpty(d.Email),
		Address:             nilIfEmpty(d.Address),
		City:                nilIfEmpty(d.City),
		State:               nilIfEmpty(d.State),
		Zip:                 nilIfEmpty(d.Zip),
		InsuranceProvider:   nilIfEmpty(d.InsuranceProvider),
		InsuranceMemberID:   nilIfEmpty(d.InsuranceMemberID),
		InsuranceGroupID:    nilIfEmpty(d.InsuranceGroupID),
		InsurancePayerPhone: nilIfEmpty(d.InsurancePayerPhone),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("persist patient: %w", err)
	}
	return p, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// GetPatientForClinician fetches a patient only when it is owned by the
// given clinician.
func (s *Service) GetPatientForClinician(ctx context.Context, id, clinicianID string) (*Patient, error) {
	return s.patients.GetForClinician(ctx, id, clinicianID)
}

func (s *Service) ListPatientsByClinician(ctx context.Context, clinicianID string, limit, offset int) ([]*Patient, int, error) {
	p := pagination.Normalize(limit, offset)
	return s.patients.ListByClinician(ctx, clinicianID, p.Limit, p.Offset)
}
