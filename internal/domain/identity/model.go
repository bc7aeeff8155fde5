package identity

import (
	"strings"
	"time"
)

// Clinician is a portal user: the physician (or practice staff) who owns
// patients and submits orders. The NPI is nullable; its presence is a hard
// precondition for order submission, enforced by the orders service.
type Clinician struct {
	ID           string     `db:"id" json:"id"`
	FirstName    *string    `db:"first_name" json:"first_name,omitempty"`
	LastName     *string    `db:"last_name" json:"last_name,omitempty"`
	Email        *string    `db:"email" json:"email,omitempty"`
	PracticeName *string    `db:"practice_name" json:"practice_name,omitempty"`
	NPI          *string    `db:"npi" json:"npi,omitempty"`
	SignName     *string    `db:"sign_name" json:"sign_name,omitempty"`
	SignTitle    *string    `db:"sign_title" json:"sign_title,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// HasNPI reports whether the clinician has a non-empty NPI on file.
func (c *Clinician) HasNPI() bool {
	return c.NPI != nil && strings.TrimSpace(*c.NPI) != ""
}

// SignerName returns the clinician's signature name, falling back to their
// own first/last name and finally to "Physician".
func (c *Clinician) SignerName() string {
	if c.SignName != nil && *c.SignName != "" {
		return *c.SignName
	}
	name := strings.TrimSpace(strVal(c.FirstName) + " " + strVal(c.LastName))
	if name != "" {
		return name
	}
	return "Physician"
}

// SignerTitle returns the clinician's signature title, defaulting to
// "Physician".
func (c *Clinician) SignerTitle() string {
	if c.SignTitle != nil && *c.SignTitle != "" {
		return *c.SignTitle
	}
	return "Physician"
}

// Patient is a patient record owned by a clinician. The MRN is generated at
// registration, never supplied by the caller.
type Patient struct {
	ID                  string    `db:"id" json:"id"`
	UserID              string    `db:"user_id" json:"user_id"`
	FirstName           *string   `db:"first_name" json:"first_name,omitempty"`
	LastName            *string   `db:"last_name" json:"last_name,omitempty"`
	DOB                 *string   `db:"dob" json:"dob,omitempty"`
	MRN                 string    `db:"mrn" json:"mrn"`
	Phone               *string   `db:"phone" json:"phone,omitempty"`
	Email               *string   `db:"email" json:"email,omitempty"`
	Address             *string   `db:"address" json:"address,omitempty"`
	City                *string   `db:"city" json:"city,omitempty"`
	State               *string   `db:"state" json:"state,omitempty"`
	Zip                 *string   `db:"zip" json:"zip,omitempty"`
	InsuranceProvider   *string   `db:"insurance_provider" json:"insurance_provider,omitempty"`
	InsuranceMemberID   *string   `db:"insurance_member_id" json:"insurance_member_id,omitempty"`
	InsuranceGroupID    *string   `db:"insurance_group_id" json:"insurance_group_id,omitempty"`
	InsurancePayerPhone *string   `db:"insurance_payer_phone" json:"insurance_payer_phone,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// FullName returns the patient's display name.
func (p *Patient) FullName() string {
	return strings.TrimSpace(strVal(p.FirstName) + " " + strVal(p.LastName))
}

// Demographics carries the caller-supplied fields for patient registration.
// Empty strings are stored as NULL; no format validation is performed here.
type Demographics struct {
	FirstName           string
	LastName            string
	DOB                 string
	Phone               string
	Email               string
	Address             string
	City                string
	State               string
	Zip                 string
	InsuranceProvider   string
	InsuranceMemberID   string
	InsuranceGroupID    string
	InsurancePayerPhone string
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nilIfEmpty converts an empty or whitespace-only string to a NULL column.
func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
