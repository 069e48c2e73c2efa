package vouchers

import "errors"

// Domain errors for the vouchers system.
var (
	// ErrNotFound indicates the requested voucher does not exist.
	ErrNotFound = errors.New("voucher not found")

	// ErrDuplicate indicates the attendee already holds a voucher for the event.
	ErrDuplicate = errors.New("voucher already issued for attendee and event")

	// ErrNumberExhausted indicates every issue attempt collided with an existing voucher.
	ErrNumberExhausted = errors.New("could not allocate a unique voucher number")

	// ErrQuotaExhausted indicates every drink of the requested kind was claimed.
	ErrQuotaExhausted = errors.New("drink quota exhausted")

	// ErrInvalidCommand indicates an issue command missing its attendee or event.
	ErrInvalidCommand = errors.New("attendee_id and event_id are required")

	// ErrInvalidKind indicates a claim for a drink kind other than soft or hard.
	ErrInvalidKind = errors.New("invalid drink kind")
)
