package sandbox

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/collagendirect/portal/internal/domain/catalog"
	"github.com/collagendirect/portal/internal/domain/identity"
)

type memDirectory struct {
	clinicians []*identity.Clinician
	patients   []*identity.Patient
	nextID     int
}

func (m *memDirectory) CreateClinician(_ context.Context, c *identity.Clinician) error {
	m.nextID++
	if c.ID == "" {
		c.ID = fmt.Sprintf("clin-%d", m.nextID)
	}
	m.clinicians = append(m.clinicians, c)
	return nil
}

func (m *memDirectory) RegisterPatient(_ context.Context, clinicianID string, d identity.Demographics) (*identity.Patient, error) {
	m.nextID++
	p := &identity.Patient{
		ID:        fmt.Sprintf("pat-%d", m.nextID),
		UserID:    clinicianID,
		FirstName: &d.FirstName,
		LastName:  &d.LastName,
		MRN:       fmt.Sprintf("CD-20260829-%04d", m.nextID),
	}
	m.patients = append(m.patients, p)
	return p, nil
}

type memCatalog struct{ products []*catalog.Product }

func (m *memCatalog) Create(_ context.Context, p *catalog.Product) error {
	m.products = append(m.products, p)
	return nil
}

func TestSeeder_Seed(t *testing.T) {
	dir := &memDirectory{}
	cat := &memCatalog{}
	cfg := SeedConfig{ClinicianCount: 3, PatientsPerClinician: 4, Seed: 42}

	result, err := NewSeeder(dir, cat, cfg).Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	if result.Products != len(demoProducts) {
		t.Errorf("products = %d, want %d", result.Products, len(demoProducts))
	}
	if result.Clinicians != 3 || len(dir.clinicians) != 3 {
		t.Errorf("clinicians = %d (persisted %d), want 3", result.Clinicians, len(dir.clinicians))
	}
	if result.Patients != 12 || len(dir.patients) != 12 {
		t.Errorf("patients = %d (persisted %d), want 12", result.Patients, len(dir.patients))
	}

	for _, c := range dir.clinicians {
		if c.NPI == nil || len(*c.NPI) != 10 {
			t.Errorf("clinician %s: NPI = %v, want 10 digits", c.ID, c.NPI)
		}
	}

	// Each clinician owns exactly PatientsPerClinician patients.
	perOwner := make(map[string]int)
	for _, p := range dir.patients {
		perOwner[p.UserID]++
	}
	for _, c := range dir.clinicians {
		if perOwner[c.ID] != 4 {
			t.Errorf("clinician %s owns %d patients, want 4", c.ID, perOwner[c.ID])
		}
	}
}

func TestSeeder_Deterministic(t *testing.T) {
	run := func() []*identity.Clinician {
		dir := &memDirectory{}
		cfg := SeedConfig{ClinicianCount: 2, PatientsPerClinician: 1, Seed: 7}
		if _, err := NewSeeder(dir, &memCatalog{}, cfg).Seed(context.Background()); err != nil {
			t.Fatalf("Seed error: %v", err)
		}
		return dir.clinicians
	}

	a, b := run(), run()
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Errorf("clinician %d differs between identically seeded runs:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestDemoProducts(t *testing.T) {
	seen := make(map[int]bool)
	active := 0
	for _, p := range demoProducts {
		if seen[p.ID] {
			t.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
		if p.Active {
			active++
		}
	}
	if active == 0 {
		t.Error("expected at least one active demo product")
	}
	if active == len(demoProducts) {
		t.Error("expected at least one inactive demo product for unavailability testing")
	}
}
