// file: internals/helpers/pagination_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		defPer int
		maxPer int
		want   Paging
	}{
		{"default", "/items", 20, 100, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"page dan per_page", "/items?page=3&per_page=10", 20, 100, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"alias limit", "/items?page=2&limit=5", 20, 100, Paging{Page: 2, PerPage: 5, Offset: 5, Limit: 5}},
		{"per_page di atas max kena clamp", "/items?per_page=500", 20, 100, Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"page nol dinormalisasi", "/items?page=0&per_page=10", 20, 100, Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
		{"per_page tidak valid pakai default", "/items?per_page=abc", 20, 100, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}

	app := fiber.New()
	var got Paging
	var defPer, maxPer int
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defPer, maxPer)
		return c.SendStatus(fiber.StatusOK)
	})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defPer, maxPer = tc.defPer, tc.maxPer
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.url, nil))
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			defer resp.Body.Close()
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		name  string
		p     Paging
		total int64
		count int
		want  Pagination
	}{
		{
			"halaman tengah",
			Paging{Page: 2, PerPage: 10}, 45, 10,
			Pagination{Page: 2, PerPage: 10, Total: 45, TotalPages: 5, HasNext: true, HasPrev: true, Count: 10},
		},
		{
			"halaman pertama",
			Paging{Page: 1, PerPage: 10}, 45, 10,
			Pagination{Page: 1, PerPage: 10, Total: 45, TotalPages: 5, HasNext: true, HasPrev: false, Count: 10},
		},
		{
			"halaman terakhir",
			Paging{Page: 5, PerPage: 10}, 45, 5,
			Pagination{Page: 5, PerPage: 10, Total: 45, TotalPages: 5, HasNext: false, HasPrev: true, Count: 5},
		},
		{
			"kosong",
			Paging{Page: 1, PerPage: 10}, 0, 0,
			Pagination{Page: 1, PerPage: 10, Total: 0, TotalPages: 0, HasNext: false, HasPrev: false, Count: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildPagination(tc.p, tc.total, tc.count); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
