package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/registry-admin/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Registry Admin API", "0.1.0")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("OpenAPI = %q, want 3.1.0", spec.OpenAPI)
	}

	for _, name := range []string{"BadRequest", "NotFound", "Conflict"} {
		if spec.Components.Responses[name] == nil {
			t.Errorf("missing shared response %s", name)
		}
	}

	if spec.Components.Schemas["Error"] == nil {
		t.Error("missing Error schema")
	}
}

func TestSpec_AddServer(t *testing.T) {
	spec := openapi.NewSpec("t", "v")
	spec.AddServer("")
	spec.AddServer("https://registry.example.com/api")

	if len(spec.Servers) != 1 {
		t.Fatalf("len(Servers) = %d, want 1", len(spec.Servers))
	}
}

func TestSpec_AddOperation(t *testing.T) {
	spec := openapi.NewSpec("t", "v")
	get := &openapi.Operation{Summary: "get"}
	post := &openapi.Operation{Summary: "post"}

	spec.AddOperation("/vouchers", "get", get)
	spec.AddOperation("/vouchers", http.MethodPost, post)
	spec.AddOperation("/vouchers", "PATCH", &openapi.Operation{})

	item := spec.Paths["/vouchers"]
	if item.Get != get || item.Post != post {
		t.Error("operations not attached to the expected methods")
	}
}

func TestMarshalAndServe(t *testing.T) {
	spec := openapi.NewSpec("Registry Admin API", "0.1.0")
	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Voucher": {Type: "object"},
	})
	spec.AddOperation("/vouchers/{id}", "GET", &openapi.Operation{
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Voucher ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Voucher", "Voucher"),
			404: openapi.ResponseRef("NotFound"),
		},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}

	w := httptest.NewRecorder()
	openapi.ServeSpec(data)(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("served spec is not JSON: %v", err)
	}

	paths := doc["paths"].(map[string]any)
	op := paths["/vouchers/{id}"].(map[string]any)["get"].(map[string]any)
	responses := op["responses"].(map[string]any)

	if responses["404"].(map[string]any)["$ref"] != "#/components/responses/NotFound" {
		t.Errorf("404 response = %v", responses["404"])
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_OPENAPI_SERVERS", "https://a.example/api, https://b.example/api")

	cfg := openapi.Config{}
	if err := cfg.Finalize(&openapi.ConfigEnv{Servers: "TEST_OPENAPI_SERVERS"}); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Title != "Registry Admin API" {
		t.Errorf("Title = %q, want default", cfg.Title)
	}
	if len(cfg.Servers) != 2 || cfg.Servers[1] != "https://b.example/api" {
		t.Errorf("Servers = %v", cfg.Servers)
	}
}
