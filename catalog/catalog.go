package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed phones.json
var phonesJSON []byte

// Catalog is the read-only phone dataset with its query operations.
type Catalog struct {
	phones      []Phone
	brands      []string
	priceRanges []PriceRange
	features    []string
	byID        map[string]int
}

type datasetFile struct {
	Phones      []Phone      `json:"phones"`
	Brands      []string     `json:"brands"`
	PriceRanges []PriceRange `json:"price_ranges"`
	Features    []string     `json:"features"`
}

// Load parses the embedded dataset.
func Load() (*Catalog, error) {
	return New(phonesJSON)
}

// New builds a catalog from raw dataset JSON.
func New(data []byte) (*Catalog, error) {
	var file datasetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse phone dataset: %w", err)
	}
	if len(file.Phones) == 0 {
		return nil, fmt.Errorf("phone dataset is empty")
	}

	byID := make(map[string]int, len(file.Phones))
	for i, p := range file.Phones {
		byID[p.ID] = i
	}

	return &Catalog{
		phones:      file.Phones,
		brands:      file.Brands,
		priceRanges: file.PriceRanges,
		features:    file.Features,
		byID:        byID,
	}, nil
}

// Len returns the number of phones in the catalog.
func (c *Catalog) Len() int {
	return len(c.phones)
}

// All returns every phone in dataset order.
func (c *Catalog) All() []Phone {
	out := make([]Phone, len(c.phones))
	copy(out, c.phones)
	return out
}

// Brands returns the brand list from the dataset metadata.
func (c *Catalog) Brands() []string {
	out := make([]string, len(c.brands))
	copy(out, c.brands)
	return out
}

// ByID returns the phone with the given id.
func (c *Catalog) ByID(id string) (Phone, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Phone{}, false
	}
	return c.phones[i], true
}

// ByName returns the phone matching name. An exact (case-insensitive)
// match wins; otherwise the substring candidate with the shortest name
// is chosen as the most specific match.
func (c *Catalog) ByName(name string) (Phone, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Phone{}, false
	}

	for _, p := range c.phones {
		if strings.ToLower(p.Name) == needle {
			return p, true
		}
	}

	var candidates []Phone
	for _, p := range c.phones {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return Phone{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].Name) < len(candidates[j].Name)
	})
	return candidates[0], true
}

// Resolve looks up each token by id first, then by name, silently
// dropping tokens that resolve to nothing. Used by the compare tool.
func (c *Catalog) Resolve(tokens []string) []Phone {
	var out []Phone
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		phone, ok := c.ByID(tok)
		if !ok {
			phone, ok = c.ByName(tok)
		}
		if ok {
			out = append(out, phone)
		}
	}
	return out
}

// SearchFilter holds the optional filters for Search.
// Nil pointer fields mean "no constraint".
type SearchFilter struct {
	Query          string
	Brand          string
	MinPrice       *int
	MaxPrice       *int
	MinRAM         *int
	Has5G          *bool
	MinBattery     *int
	MinRefreshRate *int
	HasOIS         *bool
	Limit          int
}

// Search filters the dataset and, when a free-text query is present,
// ranks matches by a relevance score over name, brand, highlights,
// camera features and processor. Without a query, dataset order is kept.
func (c *Catalog) Search(f SearchFilter) []Phone {
	results := c.All()

	if f.Brand != "" {
		brand := strings.ToLower(f.Brand)
		results = keep(results, func(p Phone) bool { return strings.ToLower(p.Brand) == brand })
	}
	if f.MinPrice != nil {
		results = keep(results, func(p Phone) bool { return p.Price >= *f.MinPrice })
	}
	if f.MaxPrice != nil {
		results = keep(results, func(p Phone) bool { return p.Price <= *f.MaxPrice })
	}
	if f.MinRAM != nil {
		results = keep(results, func(p Phone) bool { return p.RAM >= *f.MinRAM })
	}
	if f.Has5G != nil {
		results = keep(results, func(p Phone) bool { return p.Has5G == *f.Has5G })
	}
	if f.MinBattery != nil {
		results = keep(results, func(p Phone) bool { return p.Battery.Capacity >= *f.MinBattery })
	}
	if f.MinRefreshRate != nil {
		results = keep(results, func(p Phone) bool { return p.Display.RefreshRate >= *f.MinRefreshRate })
	}
	if f.HasOIS != nil {
		results = keep(results, func(p Phone) bool { return p.Camera.HasFeature("OIS") == *f.HasOIS })
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		type scored struct {
			phone Phone
			score int
		}
		var matches []scored
		for _, p := range results {
			score := 0
			if strings.Contains(strings.ToLower(p.Name), q) {
				score += 10
			}
			if strings.Contains(strings.ToLower(p.Brand), q) {
				score += 5
			}
			for _, h := range p.Highlights {
				if strings.Contains(strings.ToLower(h), q) {
					score += 3
				}
			}
			for _, ft := range p.Camera.Features {
				if strings.Contains(strings.ToLower(ft), q) {
					score += 2
				}
			}
			if strings.Contains(strings.ToLower(p.Processor), q) {
				score += 2
			}
			if score > 0 {
				matches = append(matches, scored{p, score})
			}
		}
		sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
		results = results[:0]
		for _, m := range matches {
			results = append(results, m.phone)
		}
	}

	return truncate(results, f.Limit)
}

// BestCamera ranks phones by camera quality under an optional price cap.
func (c *Catalog) BestCamera(maxPrice *int, limit int) []Phone {
	results := c.underPrice(maxPrice)
	sortByScore(results, cameraScore)
	return truncate(results, limit)
}

// BestBattery ranks phones by battery endurance and charging speed.
func (c *Catalog) BestBattery(maxPrice *int, limit int) []Phone {
	results := c.underPrice(maxPrice)
	sortByScore(results, batteryScore)
	return truncate(results, limit)
}

// Gaming ranks phones for sustained gaming performance.
func (c *Catalog) Gaming(maxPrice *int, limit int) []Phone {
	results := c.underPrice(maxPrice)
	sortByScore(results, gamingScore)
	return truncate(results, limit)
}

// Compact returns phones with displays up to 6.4", smallest first.
func (c *Catalog) Compact(minPrice, maxPrice, minRAM *int, limit int) []Phone {
	results := c.All()
	if minPrice != nil {
		results = keep(results, func(p Phone) bool { return p.Price >= *minPrice })
	}
	if maxPrice != nil {
		results = keep(results, func(p Phone) bool { return p.Price <= *maxPrice })
	}
	if minRAM != nil {
		results = keep(results, func(p Phone) bool { return p.RAM >= *minRAM })
	}
	results = keep(results, func(p Phone) bool { return p.Display.Size <= 6.4 })

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Display.Size < results[j].Display.Size
	})
	return truncate(results, limit)
}

// ByBrand returns a brand's phones, priciest first (flagships on top).
func (c *Catalog) ByBrand(brand string, maxPrice *int, limit int) []Phone {
	needle := strings.ToLower(brand)
	results := keep(c.All(), func(p Phone) bool { return strings.ToLower(p.Brand) == needle })
	if maxPrice != nil {
		results = keep(results, func(p Phone) bool { return p.Price <= *maxPrice })
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price > results[j].Price
	})
	return truncate(results, limit)
}

// Scoring functions. The weights are heuristic and deliberately private;
// callers only rely on deterministic ordering.

func cameraScore(p Phone) float64 {
	score := float64(mainMegapixels(p.Camera)) / 10

	if p.Camera.Telephoto != "" {
		score += 20
	}
	if p.Camera.HasFeature("OIS") {
		score += 10
	}
	for _, brandOptic := range []string{"Hasselblad", "Leica", "ZEISS"} {
		if p.Camera.HasFeature(brandOptic) {
			score += 15
			break
		}
	}
	if p.Camera.HasFeature("8K Video") {
		score += 10
	}
	if p.Camera.HasFeature("ProRAW") || p.Camera.HasFeature("ProRes") {
		score += 8
	}

	return score + p.Rating*5
}

func batteryScore(p Phone) float64 {
	score := float64(p.Battery.Capacity) / 100

	charging := p.Battery.Charging
	switch {
	case strings.Contains(charging, "120W") || strings.Contains(charging, "125W"):
		score += 30
	case strings.Contains(charging, "100W"):
		score += 25
	case strings.Contains(charging, "80W") || strings.Contains(charging, "90W"):
		score += 20
	case strings.Contains(charging, "65W") || strings.Contains(charging, "67W"):
		score += 15
	case strings.Contains(charging, "45W"):
		score += 10
	}

	if strings.Contains(strings.ToLower(charging), "wireless") {
		score += 5
	}
	return score
}

func gamingScore(p Phone) float64 {
	score := float64(p.Display.RefreshRate) / 10

	processor := strings.ToLower(p.Processor)
	switch {
	case strings.Contains(processor, "snapdragon 8 gen 3"):
		score += 50
	case strings.Contains(processor, "a17 pro"):
		score += 45
	case strings.Contains(processor, "snapdragon 8 gen 2"),
		strings.Contains(processor, "snapdragon 8s gen 3"):
		score += 40
	case strings.Contains(processor, "snapdragon 8+ gen 1"),
		strings.Contains(processor, "dimensity 9"):
		score += 35
	}

	score += float64(p.RAM) * 2
	score += float64(p.Battery.Capacity) / 200

	if p.Brand == "ASUS" || p.Brand == "iQOO" {
		score += 10
	}
	for _, h := range p.Highlights {
		if strings.Contains(strings.ToLower(h), "gaming") {
			score += 15
		}
	}
	return score
}

// mainMegapixels parses the leading megapixel figure from a main camera
// spec like "200 MP f/1.65". Unparseable specs score zero.
func mainMegapixels(c Camera) int {
	fields := strings.Fields(c.Main)
	if len(fields) == 0 {
		return 0
	}
	mp, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return mp
}

func (c *Catalog) underPrice(maxPrice *int) []Phone {
	results := c.All()
	if maxPrice != nil {
		results = keep(results, func(p Phone) bool { return p.Price <= *maxPrice })
	}
	return results
}

func keep(phones []Phone, pred func(Phone) bool) []Phone {
	out := phones[:0]
	for _, p := range phones {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func sortByScore(phones []Phone, score func(Phone) float64) {
	sort.SliceStable(phones, func(i, j int) bool {
		return score(phones[i]) > score(phones[j])
	})
}

func truncate(phones []Phone, limit int) []Phone {
	if limit > 0 && len(phones) > limit {
		phones = phones[:limit]
	}
	return phones
}
