package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParseLimit(t *testing.T) {
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		n, ok := parseLimit(c, 20, 100)
		return c.JSON(fiber.Map{"n": n, "ok": ok})
	})

	tests := []struct {
		query  string
		wantN  int
		wantOK bool
	}{
		{"", 20, true},       // default applies
		{"?limit=1", 1, true},
		{"?limit=50", 50, true},
		{"?limit=100", 100, true},
		{"?limit=250", 100, true}, // clamped, not rejected
		{"?limit=0", 0, false},
		{"?limit=-3", 0, false},
		{"?limit=abc", 0, false},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", "/t"+tt.query, nil))
		if err != nil {
			t.Fatalf("%q: %v", tt.query, err)
		}
		var body struct {
			N  int  `json:"n"`
			OK bool `json:"ok"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("%q: decode: %v", tt.query, err)
		}
		if body.N != tt.wantN || body.OK != tt.wantOK {
			t.Errorf("parseLimit(%q) = (%d, %v), want (%d, %v)", tt.query, body.N, body.OK, tt.wantN, tt.wantOK)
		}
	}
}
