package orders

import "errors"

var (
	// ErrProductUnavailable means the referenced product does not exist or
	// has been deactivated. Submission is refused before any write.
	ErrProductUnavailable = errors.New("product unavailable")

	// ErrMissingCredential means the submitting clinician has no NPI on
	// file. Orders cannot be submitted without one.
	ErrMissingCredential = errors.New("clinician NPI required")

	// ErrInvalidReference means the order references a patient that does
	// not exist or is not owned by the submitting clinician.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrNotFound is returned by repositories when a lookup matches no row.
	ErrNotFound = errors.New("order not found")
)
