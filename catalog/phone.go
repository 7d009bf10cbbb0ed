// Package catalog provides the phone dataset and its query operations.
//
// The dataset is embedded at build time and read-only after load; all
// query operations are deterministic for a fixed input and safe for
// concurrent use without locking.
//
// Information Hiding:
// - Dataset layout and load mechanics hidden behind Catalog
// - Scoring weights for ranked retrieval hidden in score functions
package catalog

import "fmt"

// Display holds display attributes of a phone.
type Display struct {
	Size        float64 `json:"size"`
	Type        string  `json:"type"`
	Resolution  string  `json:"resolution"`
	RefreshRate int     `json:"refresh_rate"`
}

// Camera holds the camera setup of a phone.
type Camera struct {
	Main      string   `json:"main"`
	Ultrawide string   `json:"ultrawide,omitempty"`
	Telephoto string   `json:"telephoto,omitempty"`
	Front     string   `json:"front"`
	Features  []string `json:"features,omitempty"`
}

// HasFeature reports whether the camera advertises the given feature.
func (c Camera) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f == name {
			return true
		}
	}
	return false
}

// Battery holds battery capacity and charging description.
type Battery struct {
	Capacity int    `json:"capacity"`
	Charging string `json:"charging"`
}

// Phone is one dataset record.
type Phone struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Price           int      `json:"price"`
	Display         Display  `json:"display"`
	Processor       string   `json:"processor"`
	RAM             int      `json:"ram"`
	Storage         []int    `json:"storage"`
	Camera          Camera   `json:"camera"`
	Battery         Battery  `json:"battery"`
	Has5G           bool     `json:"5g"`
	NFC             bool     `json:"nfc"`
	WaterResistance string   `json:"water_resistance,omitempty"`
	Weight          int      `json:"weight,omitempty"`
	Rating          float64  `json:"rating"`
	Highlights      []string `json:"highlights,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	ReleaseDate     string   `json:"release_date,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
}

// PriceRange labels a price band in the dataset metadata.
type PriceRange struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Card is the structured, UI-ready projection of one phone record.
type Card struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	Price      int      `json:"price"`
	ImageURL   string   `json:"image_url"`
	Display    string   `json:"display"`
	Camera     string   `json:"camera"`
	Battery    string   `json:"battery"`
	Rating     float64  `json:"rating"`
	Highlights []string `json:"highlights"`
}

// CardFor projects a phone record into its UI card form.
func CardFor(p Phone) Card {
	highlights := p.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	return Card{
		ID:         p.ID,
		Name:       p.Name,
		Brand:      p.Brand,
		Price:      p.Price,
		ImageURL:   p.ImageURL,
		Display:    fmt.Sprintf("%.4g\" %s", p.Display.Size, p.Display.Type),
		Camera:     p.Camera.Main,
		Battery:    fmt.Sprintf("%dmAh", p.Battery.Capacity),
		Rating:     p.Rating,
		Highlights: highlights,
	}
}

// DedupCards removes duplicate cards by ID, preserving first-seen order,
// and caps the result at limit (no cap when limit <= 0). Running it on
// its own output is a no-op.
func DedupCards(cards []Card, limit int) []Card {
	seen := make(map[string]struct{}, len(cards))
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
