package api

import (
	"github.com/JaimeStill/registry-admin/internal/routetable"
	"github.com/JaimeStill/registry-admin/internal/vouchers"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Routes   routetable.Table
	Vouchers vouchers.System
}

// NewDomain creates all domain systems from the API runtime.
// The route table is composed once here and shared read-only afterwards.
func NewDomain(runtime *Runtime) *Domain {
	table := routetable.Compose()
	for scope, paths := range table.Duplicates() {
		runtime.Logger.Warn("duplicate route paths", "scope", scope, "paths", paths)
	}

	vouchersSys := vouchers.New(
		runtime.Database.Connection(),
		vouchers.NewGenerator(runtime.Clock),
		runtime.Logger,
		runtime.Pagination,
		runtime.Vouchers.MaxIssueAttempts,
	)

	return &Domain{
		Routes:   table,
		Vouchers: vouchersSys,
	}
}
