package vouchers

import "github.com/JaimeStill/registry-admin/pkg/openapi"

type spec struct {
	Issue        *openapi.Operation
	List         *openapi.Operation
	Find         *openapi.Operation
	FindByNumber *openapi.Operation
	Claim        *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all voucher endpoints.
var Spec = spec{
	Issue: &openapi.Operation{
		Summary:     "Issue voucher",
		Description: "Generates a voucher number and stores a voucher with default drink quotas",
		RequestBody: openapi.RequestBodyJSON("IssueVoucherCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Voucher issued", "Voucher"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List vouchers",
		Description: "Returns a paginated list of vouchers with optional filtering and sorting",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search voucher number or attendee ID", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
			openapi.QueryParam("event_id", "string", "Filter by event ID", false),
			openapi.QueryParam("attendee_id", "string", "Filter by attendee ID", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of vouchers", "VoucherPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Find voucher by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Voucher ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Voucher", "Voucher"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	FindByNumber: &openapi.Operation{
		Summary: "Find voucher by number",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("number", "Voucher number, e.g. VP20260042"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Voucher", "Voucher"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Claim: &openapi.Operation{
		Summary:     "Claim drink",
		Description: "Redeems one soft or hard drink from the voucher",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Voucher ID"),
		},
		RequestBody: openapi.RequestBodyJSON("ClaimDrinkCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated voucher", "Voucher"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

// Schemas returns the voucher domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	quota := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"total":   {Type: "integer"},
			"claimed": {Type: "integer"},
		},
	}

	return map[string]*openapi.Schema{
		"Voucher": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":               {Type: "string", Description: "Millisecond Unix timestamp of creation"},
				"voucher_number":   {Type: "string", Example: "VP20260042"},
				"attendee_id":      {Type: "string"},
				"event_id":         {Type: "string"},
				"soft_drinks":      quota,
				"hard_drinks":      quota,
				"is_fully_claimed": {Type: "boolean"},
				"created_at":       {Type: "string", Format: "date-time"},
			},
		},
		"IssueVoucherCommand": {
			Type:     "object",
			Required: []string{"attendee_id", "event_id"},
			Properties: map[string]*openapi.Schema{
				"attendee_id": {Type: "string"},
				"event_id":    {Type: "string"},
			},
		},
		"ClaimDrinkCommand": {
			Type:     "object",
			Required: []string{"kind"},
			Properties: map[string]*openapi.Schema{
				"kind": {Type: "string", Enum: []string{string(DrinkSoft), string(DrinkHard)}},
			},
		},
		"VoucherPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Voucher")},
				"total":       {Type: "integer", Description: "Total number of results"},
				"page":        {Type: "integer", Description: "Current page number"},
				"page_size":   {Type: "integer", Description: "Results per page"},
				"total_pages": {Type: "integer", Description: "Total number of pages"},
			},
		},
	}
}
