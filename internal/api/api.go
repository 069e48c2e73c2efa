// Package api assembles the /api module: domain systems, their handlers,
// the generated OpenAPI document, and the module middleware chain.
package api

import (
	"net/http"

	"github.com/JaimeStill/registry-admin/internal/config"
	"github.com/JaimeStill/registry-admin/internal/infrastructure"
	"github.com/JaimeStill/registry-admin/pkg/middleware"
	"github.com/JaimeStill/registry-admin/pkg/module"
	"github.com/JaimeStill/registry-admin/pkg/openapi"
)

func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)
	for _, server := range cfg.API.OpenAPI.Servers {
		spec.AddServer(server)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBytes(cfg.API.MaxRequestSizeBytes()))

	return m, nil
}
