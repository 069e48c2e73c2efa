package vouchers

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/registry-admin/pkg/handlers"
	"github.com/JaimeStill/registry-admin/pkg/pagination"
	"github.com/JaimeStill/registry-admin/pkg/routes"
)

type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger,
		pagination: pagination,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/vouchers",
		Tags:        []string{"Vouchers"},
		Description: "Attendee drink vouchers",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Issue, OpenAPI: Spec.Issue},
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "GET", Pattern: "/number/{number}", Handler: h.FindByNumber, OpenAPI: Spec.FindByNumber},
			{Method: "POST", Pattern: "/{id}/claim", Handler: h.Claim, OpenAPI: Spec.Claim},
		},
	}
}

func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	var cmd IssueCommand
	if status, err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, r, h.logger, status, err)
		return
	}

	result, err := h.sys.Issue(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) FindByNumber(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.FindByNumber(r.Context(), r.PathValue("number"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	var cmd ClaimCommand
	if status, err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, r, h.logger, status, err)
		return
	}

	result, err := h.sys.Claim(r.Context(), r.PathValue("id"), cmd)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
