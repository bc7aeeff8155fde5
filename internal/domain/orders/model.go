package orders

import (
	"strings"
	"time"
)

// StatusSubmitted is the initial (and, in this workflow, only) order
// status. Downstream states exist in the admin surface, not here.
const StatusSubmitted = "submitted"

// Defaults applied when the caller leaves the corresponding input blank.
const (
	DefaultDeliveryMode = "standard"
	DefaultPaymentType  = "insurance"
)

// Order is a submitted supply order. Product and signer data are copied
// onto the row at submission time so later edits to the catalog or the
// clinician record never retroactively alter historical orders.
type Order struct {
	ID                 string     `db:"id" json:"id"`
	PatientID          string     `db:"patient_id" json:"patient_id"`
	UserID             string     `db:"user_id" json:"user_id"`
	Product            string     `db:"product" json:"product"`
	ProductID          int        `db:"product_id" json:"product_id"`
	ProductPrice       *float64   `db:"product_price" json:"product_price,omitempty"`
	CPT                *string    `db:"cpt" json:"cpt,omitempty"`
	Status             string     `db:"status" json:"status"`
	ShipmentsRemaining int        `db:"shipments_remaining" json:"shipments_remaining"`
	DeliveryMode       *string    `db:"delivery_mode" json:"delivery_mode,omitempty"`
	PaymentType        *string    `db:"payment_type" json:"payment_type,omitempty"`

	WoundLocation   *string  `db:"wound_location" json:"wound_location,omitempty"`
	WoundLaterality *string  `db:"wound_laterality" json:"wound_laterality,omitempty"`
	WoundNotes      *string  `db:"wound_notes" json:"wound_notes,omitempty"`
	ICD10Primary    *string  `db:"icd10_primary" json:"icd10_primary,omitempty"`
	ICD10Secondary  *string  `db:"icd10_secondary" json:"icd10_secondary,omitempty"`
	WoundLengthCM   *float64 `db:"wound_length_cm" json:"wound_length_cm,omitempty"`
	WoundWidthCM    *float64 `db:"wound_width_cm" json:"wound_width_cm,omitempty"`
	WoundDepthCM    *float64 `db:"wound_depth_cm" json:"wound_depth_cm,omitempty"`
	WoundType       *string  `db:"wound_type" json:"wound_type,omitempty"`
	WoundStage      *string  `db:"wound_stage" json:"wound_stage,omitempty"`
	LastEvalDate    *string  `db:"last_eval_date" json:"last_eval_date,omitempty"`

	StartDate              *string `db:"start_date" json:"start_date,omitempty"`
	FrequencyPerWeek       *int    `db:"frequency_per_week" json:"frequency_per_week,omitempty"`
	QtyPerChange           *int    `db:"qty_per_change" json:"qty_per_change,omitempty"`
	DurationDays           *int    `db:"duration_days" json:"duration_days,omitempty"`
	RefillsAllowed         *int    `db:"refills_allowed" json:"refills_allowed,omitempty"`
	AdditionalInstructions *string `db:"additional_instructions" json:"additional_instructions,omitempty"`

	ShippingName    *string `db:"shipping_name" json:"shipping_name,omitempty"`
	ShippingPhone   *string `db:"shipping_phone" json:"shipping_phone,omitempty"`
	ShippingAddress *string `db:"shipping_address" json:"shipping_address,omitempty"`
	ShippingCity    *string `db:"shipping_city" json:"shipping_city,omitempty"`
	ShippingState   *string `db:"shipping_state" json:"shipping_state,omitempty"`
	ShippingZip     *string `db:"shipping_zip" json:"shipping_zip,omitempty"`

	SignName  *string    `db:"sign_name" json:"sign_name,omitempty"`
	SignTitle *string    `db:"sign_title" json:"sign_title,omitempty"`
	SignedAt  *time.Time `db:"signed_at" json:"signed_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// SubmitInput carries the caller-supplied fields for order submission.
// Blank optional strings are stored as NULL.
type SubmitInput struct {
	PatientID   string
	ClinicianID string
	ProductID   int

	DeliveryMode string
	PaymentType  string

	// Signer snapshot. When blank, the clinician's own signer fields are
	// used.
	SignName  string
	SignTitle string

	WoundLocation   string
	WoundLaterality string
	WoundNotes      string
	ICD10Primary    string
	ICD10Secondary  string
	WoundLengthCM   *float64
	WoundWidthCM    *float64
	WoundDepthCM    *float64
	WoundType       string
	WoundStage      string
	LastEvalDate    string

	StartDate              string
	FrequencyPerWeek       *int
	QtyPerChange           *int
	DurationDays           *int
	RefillsAllowed         *int
	AdditionalInstructions string

	ShippingName    string
	ShippingPhone   string
	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingZip     string
}

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
