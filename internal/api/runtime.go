package api

import (
	"github.com/JaimeStill/registry-admin/internal/config"
	"github.com/JaimeStill/registry-admin/internal/infrastructure"
	"github.com/JaimeStill/registry-admin/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Vouchers   config.VouchersConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Clock:     infra.Clock,
		},
		Pagination: cfg.API.Pagination,
		Vouchers:   cfg.Vouchers,
	}
}
