package scheduling

import "errors"

// Sentinel errors for the four failure kinds callers branch on. Store
// failures are wrapped with %w and carry none of these.
var (
	ErrValidation       = errors.New("validation failed")
	ErrSlotUnavailable  = errors.New("slot unavailable")
	ErrPermissionDenied = errors.New("permission denied")
	ErrSlotNotFound     = errors.New("slot not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrSalonNotFound    = errors.New("salon not found")
	ErrApptNotFound     = errors.New("appointment not found")
	ErrClientNotFound   = errors.New("client not found")
)
