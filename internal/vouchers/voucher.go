package vouchers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Default quotas for a newly issued voucher.
const (
	DefaultSoftDrinks = 2
	DefaultHardDrinks = 2
)

// Quota tracks how many drinks of one kind a voucher allows and how many were claimed.
type Quota struct {
	Total   int `json:"total" yaml:"total"`
	Claimed int `json:"claimed" yaml:"claimed"`
}

// Exhausted reports whether every drink in the quota was claimed.
func (q Quota) Exhausted() bool {
	return q.Claimed >= q.Total
}

// Voucher is an attendee's drink voucher for one event.
type Voucher struct {
	ID             string    `json:"id" yaml:"id"`
	VoucherNumber  string    `json:"voucher_number" yaml:"voucher_number"`
	AttendeeID     string    `json:"attendee_id" yaml:"attendee_id"`
	EventID        string    `json:"event_id" yaml:"event_id"`
	SoftDrinks     Quota     `json:"soft_drinks" yaml:"soft_drinks"`
	HardDrinks     Quota     `json:"hard_drinks" yaml:"hard_drinks"`
	IsFullyClaimed bool      `json:"is_fully_claimed" yaml:"is_fully_claimed"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
}

// TimestampLayout renders CreatedAt as ISO-8601 with exactly three fractional digits.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// MarshalJSON encodes CreatedAt with TimestampLayout in UTC.
func (v Voucher) MarshalJSON() ([]byte, error) {
	type voucher Voucher
	return json.Marshal(struct {
		voucher
		CreatedAt string `json:"created_at"`
	}{
		voucher:   voucher(v),
		CreatedAt: v.CreatedAt.UTC().Format(TimestampLayout),
	})
}

// DrinkKind selects the quota a claim draws from.
type DrinkKind string

const (
	DrinkSoft DrinkKind = "soft"
	DrinkHard DrinkKind = "hard"
)

// IssueCommand contains the data required to issue a voucher.
type IssueCommand struct {
	AttendeeID string `json:"attendee_id" yaml:"attendee_id"`
	EventID    string `json:"event_id" yaml:"event_id"`
}

// Validate reports ErrInvalidCommand when either identifier is blank.
func (c IssueCommand) Validate() error {
	if strings.TrimSpace(c.AttendeeID) == "" || strings.TrimSpace(c.EventID) == "" {
		return ErrInvalidCommand
	}
	return nil
}

// ClaimCommand redeems one drink of the given kind.
type ClaimCommand struct {
	Kind DrinkKind `json:"kind" yaml:"kind"`
}

// Redeem takes one drink of kind and recomputes IsFullyClaimed.
// It returns ErrInvalidKind or ErrQuotaExhausted and leaves v unchanged on failure.
func (v *Voucher) Redeem(kind DrinkKind) error {
	var q *Quota
	switch kind {
	case DrinkSoft:
		q = &v.SoftDrinks
	case DrinkHard:
		q = &v.HardDrinks
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	if q.Exhausted() {
		return fmt.Errorf("%w: %s", ErrQuotaExhausted, kind)
	}

	q.Claimed++
	v.IsFullyClaimed = v.SoftDrinks.Exhausted() && v.HardDrinks.Exhausted()
	return nil
}
