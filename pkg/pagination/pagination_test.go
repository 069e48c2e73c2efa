package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/registry-admin/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		wantSearch   string
		wantSort     int
	}{
		{"defaults", "", 1, 20, "", 0},
		{"explicit", "page=3&page_size=50", 3, 50, "", 0},
		{"clamped", "page=-2&page_size=500", 1, 100, "", 0},
		{"malformed", "page=abc&page_size=x", 1, 20, "", 0},
		{"search trimmed", "search=%20VP2026%20", 1, 20, "VP2026", 0},
		{"blank search dropped", "search=%20%20", 1, 20, "", 0},
		{"sort", "sort=EventID,-CreatedAt", 1, 20, "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}

			req := pagination.PageRequestFromQuery(values, cfg)

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}

			gotSearch := ""
			if req.Search != nil {
				gotSearch = *req.Search
			}
			if gotSearch != tt.wantSearch {
				t.Errorf("Search = %q, want %q", gotSearch, tt.wantSearch)
			}
			if tt.wantSearch == "" && req.Search != nil {
				t.Error("Search should be nil")
			}

			if len(req.Sort) != tt.wantSort {
				t.Errorf("len(Sort) = %d, want %d", len(req.Sort), tt.wantSort)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := pagination.PageRequest{Page: 4, PageSize: 25}
	if req.Offset() != 75 {
		t.Errorf("Offset() = %d, want 75", req.Offset())
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		page           int
		pageSize       int
		wantTotalPages int
		wantHasNext    bool
	}{
		{"empty", 0, 1, 20, 1, false},
		{"exact fit", 40, 1, 20, 2, true},
		{"partial last page", 41, 3, 20, 3, false},
		{"middle", 100, 2, 10, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult[string](nil, tt.total, tt.page, tt.pageSize)

			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
			if result.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", result.HasNext, tt.wantHasNext)
			}
			if result.Data == nil {
				t.Error("Data = nil, want empty slice")
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := pagination.Config{}
		if err := c.Finalize(nil); err != nil {
			t.Fatalf("Finalize() failed: %v", err)
		}
		if c.DefaultPageSize != 20 || c.MaxPageSize != 100 {
			t.Errorf("got %+v, want defaults 20/100", c)
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("TEST_PAGE_SIZE", "30")
		c := pagination.Config{}
		if err := c.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGE_SIZE"}); err != nil {
			t.Fatalf("Finalize() failed: %v", err)
		}
		if c.DefaultPageSize != 30 {
			t.Errorf("DefaultPageSize = %d, want 30", c.DefaultPageSize)
		}
	})

	t.Run("default exceeds max", func(t *testing.T) {
		c := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
		if err := c.Finalize(nil); err == nil {
			t.Error("Finalize() succeeded, want error")
		}
	})
}

func TestConfig_Merge(t *testing.T) {
	base := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	base.Merge(&pagination.Config{MaxPageSize: 250})

	if base.DefaultPageSize != 20 || base.MaxPageSize != 250 {
		t.Errorf("Merge() = %+v", base)
	}
}
