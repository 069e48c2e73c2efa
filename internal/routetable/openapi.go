package routetable

import "github.com/JaimeStill/registry-admin/pkg/openapi"

type spec struct {
	Groups *openapi.Operation
	Flat   *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the navigation endpoints.
var Spec = spec{
	Groups: &openapi.Operation{
		Summary:     "Navigation tree",
		Description: "Returns the protected and public route groups in menu order",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Grouped route tree", "NavigationTree"),
		},
	},
	Flat: &openapi.Operation{
		Summary:     "Route registrations",
		Description: "Returns every route in pre-order for router registration. Duplicate paths are preserved",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("scope", "string", "protected or public; omit for both", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Flattened registrations", "RouteRegistrations"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

// Schemas returns the navigation schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"RouteDescriptor": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"path":      {Type: "string", Example: "/shareholders/:id"},
				"name":      {Type: "string"},
				"component": {Type: "string", Description: "Front-end component registry key"},
				"guard":     {Type: "string", Enum: []string{"authenticated", "public"}},
				"icon":      {Type: "string"},
				"header":    {Type: "string"},
				"children":  {Type: "array", Items: openapi.SchemaRef("RouteDescriptor")},
			},
		},
		"RouteEntry": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"path":      {Type: "string"},
				"name":      {Type: "string"},
				"component": {Type: "string"},
				"guard":     {Type: "string", Enum: []string{"authenticated", "public"}},
			},
		},
		"NavigationTree": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"protected": {Type: "array", Items: openapi.SchemaRef("RouteDescriptor")},
				"public":    {Type: "array", Items: openapi.SchemaRef("RouteDescriptor")},
			},
		},
		"RouteRegistrations": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"protected": {Type: "array", Items: openapi.SchemaRef("RouteEntry")},
				"public":    {Type: "array", Items: openapi.SchemaRef("RouteEntry")},
			},
		},
	}
}
