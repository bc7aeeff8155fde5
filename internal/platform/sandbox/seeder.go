// Package sandbox generates reproducible demo data for development and
// smoke environments: a wound-care product catalog, clinicians with NPIs
// on file, and patients registered under them.
package sandbox

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/collagendirect/portal/internal/domain/catalog"
	"github.com/collagendirect/portal/internal/domain/identity"
)

// Directory persists clinicians and patients. Satisfied by the identity
// service.
type Directory interface {
	CreateClinician(ctx context.Context, c *identity.Clinician) error
	RegisterPatient(ctx context.Context, clinicianID string, d identity.Demographics) (*identity.Patient, error)
}

// Catalog persists products. Satisfied by the catalog service.
type Catalog interface {
	Create(ctx context.Context, p *catalog.Product) error
}

// SeedConfig controls the volume of generated demo data.
type SeedConfig struct {
	ClinicianCount       int
	PatientsPerClinician int
	// Seed fixes the RNG so repeated runs produce identical data. Zero
	// picks a time-based seed.
	Seed int64
}

// DefaultSeedConfig returns the volumes used by the dev environment.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		ClinicianCount:       5,
		PatientsPerClinician: 8,
	}
}

// SeedResult summarizes a seed run.
type SeedResult struct {
	Products   int
	Clinicians int
	Patients   int
	Duration   time.Duration
}

var (
	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
		"Linda", "David", "Elizabeth", "William", "Barbara", "Richard",
		"Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	}
	streets = []string{
		"123 Main St", "456 Oak Ave", "789 Elm St", "321 Pine Rd",
		"654 Maple Dr", "987 Cedar Ln", "147 Birch Blvd", "258 Walnut Way",
	}
	cities = []string{
		"Dallas", "Phoenix", "Columbus", "Charlotte", "Austin", "Tampa",
		"Denver", "Nashville",
	}
	states = []string{"TX", "AZ", "OH", "NC", "FL", "CO", "TN", "GA"}
	zips   = []string{"75201", "85001", "43201", "28201", "73301", "33601", "80201", "37201"}

	practiceNames = []string{
		"Summit Wound Care Associates", "Lakewood Podiatry Group",
		"Riverside Vascular Clinic", "Valley Foot & Ankle Center",
		"Northside Surgical Partners",
	}
	signTitles = []string{"MD", "DO", "DPM", "NP"}

	insurers = []string{
		"Medicare Part B", "Aetna", "United Healthcare", "Cigna", "Humana",
	}
)

// demoProducts is the fixed wound-care catalog inserted by every seed run.
// IDs are stable so environments can reference them in fixtures.
var demoProducts = []catalog.Product{
	{ID: 1, Name: "CollaHeal Collagen Matrix", Size: strPtr("2x2 cm"), UOM: strPtr("sheet"), PriceAdmin: floatPtr(199.99), CPTCode: strPtr("Q4205"), Active: true},
	{ID: 2, Name: "CollaHeal Collagen Matrix", Size: strPtr("4x4 cm"), UOM: strPtr("sheet"), PriceAdmin: floatPtr(349.99), CPTCode: strPtr("Q4205"), Active: true},
	{ID: 3, Name: "DermaShield Amniotic Membrane", Size: strPtr("2x3 cm"), UOM: strPtr("graft"), PriceAdmin: floatPtr(892.50), CPTCode: strPtr("Q4151"), Active: true},
	{ID: 4, Name: "DermaShield Amniotic Membrane", Size: strPtr("4x6 cm"), UOM: strPtr("graft"), PriceAdmin: floatPtr(1785.00), CPTCode: strPtr("Q4151"), Active: true},
	{ID: 5, Name: "HydroGel Wound Dressing", Size: strPtr("3x3 cm"), UOM: strPtr("each"), PriceAdmin: floatPtr(24.99), CPTCode: strPtr("A6242"), Active: true},
	{ID: 6, Name: "Legacy Collagen Powder", Size: strPtr("1 g"), UOM: strPtr("vial"), PriceAdmin: floatPtr(79.99), CPTCode: strPtr("A6010"), Active: false},
}

// Seeder writes demo data through the domain services so generated rows
// carry real ids, MRNs, and timestamps.
type Seeder struct {
	directory Directory
	catalog   Catalog
	cfg       SeedConfig
	rng       *rand.Rand
}

func NewSeeder(directory Directory, cat Catalog, cfg SeedConfig) *Seeder {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{
		directory: directory,
		catalog:   cat,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Seed inserts the product catalog, then clinicians, then their patients.
func (s *Seeder) Seed(ctx context.Context) (*SeedResult, error) {
	start := time.Now()
	result := &SeedResult{}

	for i := range demoProducts {
		p := demoProducts[i]
		if err := s.catalog.Create(ctx, &p); err != nil {
			return nil, fmt.Errorf("seed product %d: %w", p.ID, err)
		}
		result.Products++
	}

	for i := 0; i < s.cfg.ClinicianCount; i++ {
		clinician := s.generateClinician()
		if err := s.directory.CreateClinician(ctx, clinician); err != nil {
			return nil, fmt.Errorf("seed clinician %d: %w", i, err)
		}
		result.Clinicians++

		for j := 0; j < s.cfg.PatientsPerClinician; j++ {
			if _, err := s.directory.RegisterPatient(ctx, clinician.ID, s.generateDemographics()); err != nil {
				return nil, fmt.Errorf("seed patient %d for clinician %s: %w", j, clinician.ID, err)
			}
			result.Patients++
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (s *Seeder) generateClinician() *identity.Clinician {
	first := s.pick(firstNames)
	last := s.pick(lastNames)
	title := s.pick(signTitles)
	return &identity.Clinician{
		FirstName:    &first,
		LastName:     &last,
		Email:        strPtr(fmt.Sprintf("%s.%s@example.com", first, last)),
		PracticeName: strPtr(s.pick(practiceNames)),
		NPI:          strPtr(fmt.Sprintf("%010d", s.rng.Int63n(10000000000))),
		SignName:     strPtr(fmt.Sprintf("Dr. %s %s", first, last)),
		SignTitle:    &title,
	}
}

func (s *Seeder) generateDemographics() identity.Demographics {
	first := s.pick(firstNames)
	last := s.pick(lastNames)
	return identity.Demographics{
		FirstName:         first,
		LastName:          last,
		DOB:               s.randomDate(1935, 1985),
		Phone:             s.randomPhone(),
		Email:             fmt.Sprintf("%s.%s@example.net", first, last),
		Address:           s.pick(streets),
		City:              s.pick(cities),
		State:             s.pick(states),
		Zip:               s.pick(zips),
		InsuranceProvider: s.pick(insurers),
		InsuranceMemberID: fmt.Sprintf("M%09d", s.rng.Intn(1000000000)),
		InsuranceGroupID:  fmt.Sprintf("G%05d", s.rng.Intn(100000)),
	}
}

func (s *Seeder) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

func (s *Seeder) randomDate(minYear, maxYear int) string {
	y := minYear + s.rng.Intn(maxYear-minYear+1)
	m := 1 + s.rng.Intn(12)
	d := 1 + s.rng.Intn(28) // safe for all months
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func (s *Seeder) randomPhone() string {
	return fmt.Sprintf("(%03d) %03d-%04d",
		200+s.rng.Intn(800),
		200+s.rng.Intn(800),
		s.rng.Intn(10000),
	)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
