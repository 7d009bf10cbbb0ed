package catalog

import (
	"strings"
	"testing"
)

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cat
}

func TestLoadDataset(t *testing.T) {
	cat := loadCatalog(t)

	if cat.Len() == 0 {
		t.Fatal("embedded dataset is empty")
	}
	if len(cat.Brands()) == 0 {
		t.Error("dataset has no brand metadata")
	}
	for _, p := range cat.All() {
		if p.ID == "" || p.Name == "" || p.Price <= 0 {
			t.Errorf("phone %q has incomplete record", p.ID)
		}
	}
}

func TestByName(t *testing.T) {
	cat := loadCatalog(t)

	tests := []struct {
		name   string
		query  string
		wantID string
		found  bool
	}{
		{"exact name", "Google Pixel 8a", "pixel-8a", true},
		{"case insensitive", "google pixel 8a", "pixel-8a", true},
		{"substring prefers shortest", "pixel 8", "pixel-8", true},
		{"unknown phone", "Nokia 3310", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := cat.ByName(tt.query)
			if ok != tt.found {
				t.Fatalf("found=%v, want %v", ok, tt.found)
			}
			if ok && p.ID != tt.wantID {
				t.Errorf("got %s, want %s", p.ID, tt.wantID)
			}
		})
	}
}

func TestResolveDropsUnknown(t *testing.T) {
	cat := loadCatalog(t)

	phones := cat.Resolve([]string{"oneplus-12", "Flipphone 9000", "Pixel 8a"})
	if len(phones) != 2 {
		t.Fatalf("got %d phones, want 2", len(phones))
	}
	if phones[0].ID != "oneplus-12" || phones[1].ID != "pixel-8a" {
		t.Errorf("resolve order wrong: %s, %s", phones[0].ID, phones[1].ID)
	}
}

func TestSearchFilters(t *testing.T) {
	cat := loadCatalog(t)

	maxPrice := 30000
	results := cat.Search(SearchFilter{MaxPrice: &maxPrice, Limit: 10})
	if len(results) == 0 {
		t.Fatal("budget search returned nothing")
	}
	for _, p := range results {
		if p.Price > maxPrice {
			t.Errorf("%s at %d exceeds max price %d", p.ID, p.Price, maxPrice)
		}
	}

	fiveG := true
	minBattery := 5000
	results = cat.Search(SearchFilter{Has5G: &fiveG, MinBattery: &minBattery, Limit: 10})
	for _, p := range results {
		if !p.Has5G {
			t.Errorf("%s is not 5G", p.ID)
		}
		if p.Battery.Capacity < minBattery {
			t.Errorf("%s battery %d below minimum", p.ID, p.Battery.Capacity)
		}
	}
}

func TestSearchLimit(t *testing.T) {
	cat := loadCatalog(t)

	results := cat.Search(SearchFilter{Limit: 3})
	if len(results) != 3 {
		t.Errorf("got %d results, want 3", len(results))
	}
}

func TestBestCameraRanking(t *testing.T) {
	cat := loadCatalog(t)

	phones := cat.BestCamera(nil, 5)
	if len(phones) != 5 {
		t.Fatalf("got %d phones, want 5", len(phones))
	}
	for i := 1; i < len(phones); i++ {
		if cameraScore(phones[i]) > cameraScore(phones[i-1]) {
			t.Errorf("camera ranking out of order at %d: %s before %s", i, phones[i-1].ID, phones[i].ID)
		}
	}

	budget := 30000
	for _, p := range cat.BestCamera(&budget, 5) {
		if p.Price > budget {
			t.Errorf("%s exceeds camera budget", p.ID)
		}
	}
}

func TestCompactOnlySmallPhones(t *testing.T) {
	cat := loadCatalog(t)

	phones := cat.Compact(nil, nil, nil, 10)
	for _, p := range phones {
		if p.Display.Size > 6.4 {
			t.Errorf("%s at %.1f\" is not compact", p.ID, p.Display.Size)
		}
	}
	for i := 1; i < len(phones); i++ {
		if phones[i].Display.Size < phones[i-1].Display.Size {
			t.Errorf("compact list should be smallest-first, %s before %s", phones[i-1].ID, phones[i].ID)
		}
	}
}

func TestByBrandPriceDescending(t *testing.T) {
	cat := loadCatalog(t)

	phones := cat.ByBrand("samsung", nil, 10)
	if len(phones) < 2 {
		t.Fatalf("expected multiple samsung phones, got %d", len(phones))
	}
	for i := 1; i < len(phones); i++ {
		if phones[i].Price > phones[i-1].Price {
			t.Errorf("brand listing should be price-descending")
		}
		if phones[i].Brand != "Samsung" {
			t.Errorf("%s leaked into samsung listing", phones[i].ID)
		}
	}
}

func TestFormatPriceIndianGrouping(t *testing.T) {
	tests := []struct {
		price int
		want  string
	}{
		{999, "₹999"},
		{25999, "₹25,999"},
		{129999, "₹1,29,999"},
		{1234567, "₹12,34,567"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%d) = %s, want %s", tt.price, got, tt.want)
		}
	}
}

func TestFormatComparisonTableMarker(t *testing.T) {
	cat := loadCatalog(t)

	phones := cat.Resolve([]string{"pixel-8a", "oneplus-12r"})
	table := FormatComparisonTable(phones)

	if !strings.Contains(table, "---") {
		t.Error("comparison table missing separator row")
	}
	if !strings.Contains(table, "Google Pixel 8a") || !strings.Contains(table, "OnePlus 12R") {
		t.Error("comparison table missing phone columns")
	}
}

func TestDedupCards(t *testing.T) {
	cards := []Card{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "a", Name: "A again"},
		{ID: "c", Name: "C"},
		{ID: "d", Name: "D"},
		{ID: "e", Name: "E"},
		{ID: "f", Name: "F"},
	}

	got := DedupCards(cards, 5)
	if len(got) != 5 {
		t.Fatalf("got %d cards, want 5", len(got))
	}
	wantIDs := []string{"a", "b", "c", "d", "e"}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("card %d = %s, want %s", i, got[i].ID, id)
		}
	}
	if got[0].Name != "A" {
		t.Error("dedup should keep the first occurrence")
	}

	again := DedupCards(got, 5)
	if len(again) != len(got) {
		t.Error("dedup is not idempotent")
	}
}
