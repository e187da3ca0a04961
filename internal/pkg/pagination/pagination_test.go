package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestParseParams(t *testing.T) {
	cases := []struct {
		url       string
		wantPage  int
		wantLimit int
	}{
		{"/api/employees", 1, DefaultLimit},
		{"/api/employees?page=3&limit=10", 3, 10},
		{"/api/employees?page=0&limit=0", 1, DefaultLimit},
		{"/api/employees?page=-2&limit=-5", 1, DefaultLimit},
		{"/api/employees?page=abc&limit=xyz", 1, DefaultLimit},
		{"/api/employees?limit=500", 1, MaxLimit},
		{"/api/employees?limit=100", 1, 100},
	}
	for _, c := range cases {
		r := httptest.NewRequest("GET", c.url, nil)
		p := ParseParams(r)
		if p.Page != c.wantPage || p.Limit != c.wantLimit {
			t.Errorf("ParseParams(%q) = {Page:%d Limit:%d}, want {Page:%d Limit:%d}",
				c.url, p.Page, p.Limit, c.wantPage, c.wantLimit)
		}
	}
}

func TestOffset(t *testing.T) {
	cases := []struct {
		params Params
		want   int
	}{
		{Params{Page: 1, Limit: 50}, 0},
		{Params{Page: 2, Limit: 50}, 50},
		{Params{Page: 5, Limit: 10}, 40},
	}
	for _, c := range cases {
		if got := c.params.Offset(); got != c.want {
			t.Errorf("Offset(%+v) = %d, want %d", c.params, got, c.want)
		}
	}
}

func TestNewMeta(t *testing.T) {
	cases := []struct {
		total     int64
		params    Params
		wantPages int
	}{
		{0, Params{Page: 1, Limit: 50}, 1},
		{1, Params{Page: 1, Limit: 50}, 1},
		{50, Params{Page: 1, Limit: 50}, 1},
		{51, Params{Page: 1, Limit: 50}, 2},
		{100, Params{Page: 2, Limit: 10}, 10},
		{101, Params{Page: 99, Limit: 10}, 11},
	}
	for _, c := range cases {
		meta := NewMeta(c.total, c.params)
		if meta.TotalPages != c.wantPages {
			t.Errorf("NewMeta(%d, %+v).TotalPages = %d, want %d",
				c.total, c.params, meta.TotalPages, c.wantPages)
		}
		if meta.Total != c.total || meta.Page != c.params.Page || meta.Limit != c.params.Limit {
			t.Errorf("NewMeta(%d, %+v) = %+v, echoed fields mismatch", c.total, c.params, meta)
		}
	}
}
