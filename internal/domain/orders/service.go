package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/collagendirect/portal/internal/domain/catalog"
	"github.com/collagendirect/portal/internal/domain/identity"
	"github.com/collagendirect/portal/internal/platform/ident"
	"github.com/collagendirect/portal/pkg/pagination"
)

// ProductSource resolves orderable products. Satisfied by the catalog
// repository and service.
type ProductSource interface {
	GetActive(ctx context.Context, id int) (*catalog.Product, error)
}

// ClinicianSource resolves the submitting clinician.
type ClinicianSource interface {
	GetByID(ctx context.Context, id string) (*identity.Clinician, error)
}

// PatientSource resolves a patient scoped to its owning clinician.
type PatientSource interface {
	GetForClinician(ctx context.Context, id, clinicianID string) (*identity.Patient, error)
}

// TxRunner executes fn inside a single database transaction. The context
// passed to fn carries the transaction so that every repository call made
// within runs against it.
type TxRunner func(ctx context.Context, fn func(context.Context) error) error

type Service struct {
	orders     OrderRepository
	products   ProductSource
	clinicians ClinicianSource
	patients   PatientSource
	ids        ident.Generator
	runTx      TxRunner
}

// NewService wires the submitter. runTx may be nil, in which case Submit
// runs without transactional scope (useful for unit tests with in-memory
// repositories).
func NewService(orders OrderRepository, products ProductSource, clinicians ClinicianSource, patients PatientSource, ids ident.Generator, runTx TxRunner) *Service {
	if runTx == nil {
		runTx = func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }
	}
	return &Service{
		orders:     orders,
		products:   products,
		clinicians: clinicians,
		patients:   patients,
		ids:        ids,
		runTx:      runTx,
	}
}

// Submit validates and persists a new supply order. Validation and the
// insert run inside one transaction so a product deactivated between the
// lookup and the write cannot leave a submitted order behind: the whole
// submission either lands or rolls back.
//
// Failure modes:
//   - ErrProductUnavailable: product missing or inactive
//   - ErrMissingCredential:  clinician missing or has no NPI
//   - ErrInvalidReference:   patient missing or owned by another clinician
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Order, error) {
	if in.ClinicianID == "" || in.PatientID == "" {
		return nil, ErrInvalidReference
	}
	if in.ProductID <= 0 {
		return nil, ErrProductUnavailable
	}

	var order *Order
	err := s.runTx(ctx, func(ctx context.Context) error {
		product, err := s.products.GetActive(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return ErrProductUnavailable
			}
			return fmt.Errorf("product lookup: %w", err)
		}

		clinician, err := s.clinicians.GetByID(ctx, in.ClinicianID)
		if err != nil {
			if errors.Is(err, identity.ErrNotFound) {
				return ErrMissingCredential
			}
			return fmt.Errorf("clinician lookup: %w", err)
		}
		if !clinician.HasNPI() {
			return ErrMissingCredential
		}

		if _, err := s.patients.GetForClinician(ctx, in.PatientID, in.ClinicianID); err != nil {
			if errors.Is(err, identity.ErrNotFound) {
				return ErrInvalidReference
			}
			return fmt.Errorf("patient lookup: %w", err)
		}

		order = s.buildOrder(in, product, clinician, time.Now().UTC())
		if err := s.orders.Create(ctx, order); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// buildOrder assembles the row, copying the product and signer snapshots
// as they stand at submission time.
func (s *Service) buildOrder(in SubmitInput, product *catalog.Product, clinician *identity.Clinician, now time.Time) *Order {
	signName := in.SignName
	if signName == "" {
		signName = clinician.SignerName()
	}
	signTitle := in.SignTitle
	if signTitle == "" {
		signTitle = clinician.SignerTitle()
	}
	delivery := in.DeliveryMode
	if delivery == "" {
		delivery = DefaultDeliveryMode
	}
	payment := in.PaymentType
	if payment == "" {
		payment = DefaultPaymentType
	}
	signedAt := now

	return &Order{
		ID:                 s.ids.Token(),
		PatientID:          in.PatientID,
		UserID:             in.ClinicianID,
		Product:            product.Name,
		ProductID:          product.ID,
		ProductPrice:       product.PriceAdmin,
		CPT:                product.CPTCode,
		Status:             StatusSubmitted,
		ShipmentsRemaining: 0,
		DeliveryMode:       &delivery,
		PaymentType:        &payment,

		WoundLocation:   nilIfEmpty(in.WoundLocation),
		WoundLaterality: nilIfEmpty(in.WoundLaterality),
		WoundNotes:      nilIfEmpty(in.WoundNotes),
		ICD10Primary:    nilIfEmpty(in.ICD10Primary),
		ICD10Secondary:  nilIfEmpty(in.ICD10Secondary),
		WoundLengthCM:   in.WoundLengthCM,
		WoundWidthCM:    in.WoundWidthCM,
		WoundDepthCM:    in.WoundDepthCM,
		WoundType:       nilIfEmpty(in.WoundType),
		WoundStage:      nilIfEmpty(in.WoundStage),
		LastEvalDate:    nilIfEmpty(in.LastEvalDate),

		StartDate:              nilIfEmpty(in.StartDate),
		FrequencyPerWeek:       in.FrequencyPerWeek,
		QtyPerChange:           in.QtyPerChange,
		DurationDays:           in.DurationDays,
		RefillsAllowed:         in.RefillsAllowed,
		AdditionalInstructions: nilIfEmpty(in.AdditionalInstructions),

		ShippingName:    nilIfEmpty(in.ShippingName),
		ShippingPhone:   nilIfEmpty(in.ShippingPhone),
		ShippingAddress: nilIfEmpty(in.ShippingAddress),
		ShippingCity:    nilIfEmpty(in.ShippingCity),
		ShippingState:   nilIfEmpty(in.ShippingState),
		ShippingZip:     nilIfEmpty(in.ShippingZip),

		SignName:  nilIfEmpty(signName),
		SignTitle: nilIfEmpty(signTitle),
		SignedAt:  &signedAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Service) ListByClinician(ctx context.Context, clinicianID string, limit, offset int) ([]*Order, int, error) {
	p := pagination.Normalize(limit, offset)
	return s.orders.ListByClinician(ctx, clinicianID, p.Limit, p.Offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Order, int, error) {
	p := pagination.Normalize(limit, offset)
	return s.orders.ListByPatient(ctx, patientID, p.Limit, p.Offset)
}

// CountByClinician backs the portal dashboard's order count.
func (s *Service) CountByClinician(ctx context.Context, clinicianID string) (int, error) {
	return s.orders.CountByClinician(ctx, clinicianID)
}
