package vouchers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/JaimeStill/registry-admin/pkg/query"
)

var projection = query.NewProjectionMap("public", "vouchers", "v").
	Project("id", "ID").
	Project("voucher_number", "VoucherNumber").
	Project("attendee_id", "AttendeeID").
	Project("event_id", "EventID").
	Project("soft_drinks_total", "SoftDrinksTotal").
	Project("soft_drinks_claimed", "SoftDrinksClaimed").
	Project("hard_drinks_total", "HardDrinksTotal").
	Project("hard_drinks_claimed", "HardDrinksClaimed").
	Project("is_fully_claimed", "IsFullyClaimed").
	Project("created_at", "CreatedAt")

const defaultSort = "CreatedAt"

type scanner interface {
	Scan(dest ...any) error
}

func scanVoucher(s scanner) (Voucher, error) {
	var v Voucher
	err := s.Scan(
		&v.ID, &v.VoucherNumber, &v.AttendeeID, &v.EventID,
		&v.SoftDrinks.Total, &v.SoftDrinks.Claimed,
		&v.HardDrinks.Total, &v.HardDrinks.Claimed,
		&v.IsFullyClaimed, &v.CreatedAt,
	)
	v.CreatedAt = v.CreatedAt.UTC()
	return v, err
}

// Filters narrows voucher listings.
type Filters struct {
	EventID    *string
	AttendeeID *string
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if v := values.Get("event_id"); v != "" {
		f.EventID = &v
	}
	if v := values.Get("attendee_id"); v != "" {
		f.AttendeeID = &v
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.EventID != nil {
		b = b.WhereEquals("EventID", *f.EventID)
	}
	if f.AttendeeID != nil {
		b = b.WhereEquals("AttendeeID", *f.AttendeeID)
	}
	return b
}

// MapHTTPStatus translates voucher errors into HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrQuotaExhausted):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidKind), errors.Is(err, ErrInvalidCommand):
		return http.StatusBadRequest
	case errors.Is(err, ErrNumberExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
