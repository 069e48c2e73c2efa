// Package vouchers issues and redeems attendee drink vouchers.
// Generation is local and never fails; the store enforces uniqueness of
// voucher numbers and of one voucher per attendee and event.
package vouchers

import (
	"context"

	"github.com/JaimeStill/registry-admin/pkg/pagination"
)

// System defines the interface for voucher issuance and redemption.
type System interface {
	// Issue generates and stores a voucher for the attendee and event.
	// Returns ErrDuplicate if the pair already holds a voucher.
	// Returns ErrNumberExhausted if no unique number was found.
	Issue(ctx context.Context, cmd IssueCommand) (*Voucher, error)

	// Find retrieves a voucher by ID.
	// Returns ErrNotFound if the voucher does not exist.
	Find(ctx context.Context, id string) (*Voucher, error)

	// FindByNumber retrieves a voucher by its voucher number.
	// Returns ErrNotFound if the voucher does not exist.
	FindByNumber(ctx context.Context, number string) (*Voucher, error)

	// List returns a page of vouchers matching filters.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Voucher], error)

	// Claim redeems one drink of the requested kind.
	// Returns ErrNotFound, ErrInvalidKind, or ErrQuotaExhausted.
	Claim(ctx context.Context, id string, cmd ClaimCommand) (*Voucher, error)
}
