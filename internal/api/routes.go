package api

import (
	"net/http"

	"github.com/JaimeStill/registry-admin/internal/config"
	"github.com/JaimeStill/registry-admin/internal/routetable"
	"github.com/JaimeStill/registry-admin/internal/vouchers"
	"github.com/JaimeStill/registry-admin/pkg/openapi"
	"github.com/JaimeStill/registry-admin/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	navigationHandler := routetable.NewHandler(domain.Routes, runtime.Logger)
	vouchersHandler := vouchers.NewHandler(domain.Vouchers, runtime.Logger, runtime.Pagination)

	spec.Components.AddSchemas(routetable.Spec.Schemas())
	spec.Components.AddSchemas(vouchers.Spec.Schemas())

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		navigationHandler.Routes(),
		vouchersHandler.Routes(),
	)
}
