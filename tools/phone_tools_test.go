package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/richinex/phonewise/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return cat
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewPhoneRegistry(testCatalog(t))
	if err != nil {
		t.Fatalf("NewPhoneRegistry: %v", err)
	}
	return reg
}

func TestPhoneRegistrySurface(t *testing.T) {
	reg := testRegistry(t)

	names := []string{
		"search_phones",
		"get_phone_details",
		"compare_phones",
		"get_best_camera_phones",
		"get_best_battery_phones",
		"get_gaming_phones",
		"get_compact_phones",
		"get_phones_by_brand",
	}
	for _, name := range names {
		if !reg.Has(name) {
			t.Errorf("registry missing tool %s", name)
		}
	}
	if len(reg.Names()) != len(names) {
		t.Errorf("registry has %d tools, want %d", len(reg.Names()), len(names))
	}
}

func TestSearchToolBudget(t *testing.T) {
	reg := testRegistry(t)

	out := reg.Dispatch(context.Background(), "search_phones", Args{"max_price": float64(30000)})
	if !strings.HasPrefix(out, "Found ") {
		t.Fatalf("expected result header, got: %q", out)
	}
	if strings.Contains(out, "Samsung Galaxy S24 Ultra") {
		t.Error("budget search should exclude phones above the cap")
	}
}

func TestSearchToolNoMatch(t *testing.T) {
	reg := testRegistry(t)

	out := reg.Dispatch(context.Background(), "search_phones", Args{"query": "flipphone 9000"})
	want := "No phones found matching your criteria. Try adjusting your filters."
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestDetailsToolByIDAndName(t *testing.T) {
	reg := testRegistry(t)

	byID := reg.Dispatch(context.Background(), "get_phone_details", Args{"phone_name": "samsung-s24-ultra"})
	if !strings.Contains(byID, "Samsung Galaxy S24 Ultra") {
		t.Errorf("lookup by id failed: %q", truncateStr(byID))
	}

	byName := reg.Dispatch(context.Background(), "get_phone_details", Args{"phone_name": "pixel 8a"})
	if !strings.Contains(byName, "Google Pixel 8a") {
		t.Errorf("lookup by name failed: %q", truncateStr(byName))
	}
}

func TestDetailsToolNotFound(t *testing.T) {
	reg := testRegistry(t)

	out := reg.Dispatch(context.Background(), "get_phone_details", Args{"phone_name": "Nokia 3310"})
	if !strings.Contains(out, "not found in the database") {
		t.Errorf("expected not-found message, got: %q", out)
	}
}

func TestCompareToolValidation(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	if out := reg.Dispatch(ctx, "compare_phones", Args{"phone_names": "Pixel 8a"}); out != "Please provide at least 2 phone names separated by commas." {
		t.Errorf("single name: %q", out)
	}

	five := "Pixel 8a, OnePlus 12, Samsung S24, iPhone 15 Pro, Xiaomi 14"
	if out := reg.Dispatch(ctx, "compare_phones", Args{"phone_names": five}); out != "Please compare a maximum of 4 phones at a time." {
		t.Errorf("five names: %q", out)
	}

	if out := reg.Dispatch(ctx, "compare_phones", Args{"phone_names": "Pixel 8a, Flipphone 9000"}); !strings.Contains(out, "Could only find 1 phone(s)") {
		t.Errorf("partial resolve: %q", out)
	}
}

func TestCompareToolAnalysis(t *testing.T) {
	reg := testRegistry(t)

	out := reg.Dispatch(context.Background(), "compare_phones", Args{"phone_names": "Pixel 8a, OnePlus 12R"})
	if !strings.Contains(out, "## Analysis") {
		t.Fatal("comparison must include the analysis section")
	}
	if !strings.Contains(out, "**Best Value:**") {
		t.Error("analysis missing best value verdict")
	}
	if !strings.Contains(out, "**Best Battery:**") {
		t.Error("analysis missing best battery verdict")
	}
	if !strings.Contains(out, "| --- |") && !strings.Contains(out, "|---|") && !strings.Contains(out, "| ---") {
		t.Error("comparison missing markdown table separator")
	}
}

func TestRankedToolHeaders(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	tests := []struct {
		tool string
		args Args
		want string
	}{
		{"get_best_camera_phones", Args{"max_price": float64(50000)}, "# Best Camera Phones under ₹50,000"},
		{"get_best_battery_phones", Args{}, "# Best Battery Phones\n"},
		{"get_gaming_phones", Args{"max_price": float64(40000)}, "# Best Gaming Phones under ₹40,000"},
		{"get_compact_phones", Args{}, "# Compact Phones (Good for One-Hand Use)"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			out := reg.Dispatch(ctx, tt.tool, tt.args)
			if !strings.HasPrefix(out, strings.TrimSuffix(tt.want, "\n")) {
				t.Errorf("got header %q, want prefix %q", truncateStr(out), tt.want)
			}
			if !strings.Contains(out, "## 1. ") {
				t.Error("ranked output should number its entries")
			}
		})
	}
}

func TestByBrandToolUnknownBrand(t *testing.T) {
	reg := testRegistry(t)

	out := reg.Dispatch(context.Background(), "get_phones_by_brand", Args{"brand": "Nokia"})
	if !strings.Contains(out, "No phones found for brand 'Nokia'") {
		t.Errorf("expected unknown-brand message, got: %q", truncateStr(out))
	}
	if !strings.Contains(out, "Available brands:") {
		t.Error("unknown-brand message should list available brands")
	}
}

func TestCardsForMatchesHandlerRouting(t *testing.T) {
	cat := testCatalog(t)

	cards := CardsFor(cat, "get_best_camera_phones", Args{"max_price": float64(80000), "limit": float64(3)})
	if len(cards) == 0 || len(cards) > 3 {
		t.Fatalf("got %d cards, want 1-3", len(cards))
	}
	for _, c := range cards {
		if c.Price > 80000 {
			t.Errorf("card %s exceeds budget at %d", c.ID, c.Price)
		}
	}

	if cards := CardsFor(cat, "made_up_tool", Args{}); cards != nil {
		t.Errorf("unknown tool should yield no cards, got %d", len(cards))
	}
}

func TestCardsForDetailsSingle(t *testing.T) {
	cat := testCatalog(t)

	cards := CardsFor(cat, "get_phone_details", Args{"phone_name": "oneplus-12"})
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	if cards[0].ID != "oneplus-12" {
		t.Errorf("got card %s, want oneplus-12", cards[0].ID)
	}
}

func truncateStr(s string) string {
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
