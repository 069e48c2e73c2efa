package routetable

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/registry-admin/pkg/handlers"
	"github.com/JaimeStill/registry-admin/pkg/navigation"
	"github.com/JaimeStill/registry-admin/pkg/routes"
)

// Tree is the grouped navigation payload.
type Tree struct {
	Protected []navigation.Descriptor `json:"protected"`
	Public    []navigation.Descriptor `json:"public"`
}

// Registrations is the flattened router registration payload.
// Scoped requests leave the other half empty.
type Registrations struct {
	Protected []navigation.Entry `json:"protected,omitempty"`
	Public    []navigation.Entry `json:"public,omitempty"`
}

type Handler struct {
	table  Table
	logger *slog.Logger
}

func NewHandler(table Table, logger *slog.Logger) *Handler {
	return &Handler{
		table:  table,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/navigation",
		Tags:        []string{"Navigation"},
		Description: "Console route table",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Groups, OpenAPI: Spec.Groups},
			{Method: "GET", Pattern: "/routes", Handler: h.Flat, OpenAPI: Spec.Flat},
		},
	}
}

func (h *Handler) Groups(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Tree{
		Protected: h.table.ProtectedGroups(),
		Public:    h.table.PublicGroups(),
	})
}

func (h *Handler) Flat(w http.ResponseWriter, r *http.Request) {
	s := r.URL.Query().Get("scope")
	if s == "" {
		handlers.RespondJSON(w, http.StatusOK, Registrations{
			Protected: navigation.Entries(h.table.ProtectedFlat()),
			Public:    navigation.Entries(h.table.PublicFlat()),
		})
		return
	}

	scope, err := ParseScope(s)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	var result Registrations
	if scope == ScopeProtected {
		result.Protected = navigation.Entries(h.table.ProtectedFlat())
	} else {
		result.Public = navigation.Entries(h.table.PublicFlat())
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
