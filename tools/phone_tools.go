package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/richinex/phonewise/catalog"
)

// NewPhoneRegistry builds the registry with the full shopping tool surface.
func NewPhoneRegistry(cat *catalog.Catalog) (*Registry, error) {
	return NewRegistry(
		&SearchTool{cat},
		&DetailsTool{cat},
		&CompareTool{cat},
		&BestCameraTool{cat},
		&BestBatteryTool{cat},
		&GamingTool{cat},
		&CompactTool{cat},
		&ByBrandTool{cat},
	)
}

// objectSchema builds the JSON schema envelope every tool shares.
func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	if required == nil {
		required = []string{}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func strProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func intProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}

func boolProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "boolean", "description": description}
}

// SearchTool is the general filtered phone search.
type SearchTool struct {
	Catalog *catalog.Catalog
}

func (t *SearchTool) Name() string { return "search_phones" }

func (t *SearchTool) Description() string {
	return "General phone search with filters. Use this for budget-based searches or brand searches. " +
		"For specific use cases, prefer specialized tools: get_best_camera_phones, get_best_battery_phones, get_gaming_phones."
}

func (t *SearchTool) Schema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"query":       strProp("Optional text to match phone names (leave empty for general search)"),
		"brand":       strProp("Filter by brand name (e.g., \"Samsung\", \"Apple\", \"OnePlus\")"),
		"min_price":   intProp("Minimum price in rupees (leave empty for no minimum)"),
		"max_price":   intProp("Maximum price in rupees (e.g., 30000, 50000)"),
		"min_ram":     intProp("Minimum RAM in GB"),
		"has_5g":      boolProp("Set true for 5G phones only"),
		"min_battery": intProp("Minimum battery capacity in mAh"),
		"limit":       intProp("Maximum number of results (default 5)"),
	})
}

func (t *SearchTool) Invoke(ctx context.Context, args Args) (string, error) {
	results := t.Catalog.Search(catalog.SearchFilter{
		Query:      args.String("query"),
		Brand:      args.String("brand"),
		MinPrice:   args.Int("min_price"),
		MaxPrice:   args.Int("max_price"),
		MinRAM:     args.Int("min_ram"),
		Has5G:      args.Bool("has_5g"),
		MinBattery: args.Int("min_battery"),
		Limit:      args.Limit("limit", 5),
	})

	if len(results) == 0 {
		return "No phones found matching your criteria. Try adjusting your filters.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d phones:\n\n", len(results))
	for _, p := range results {
		fmt.Fprintf(&b, "**%s** - %s\n", p.Name, catalog.FormatPrice(p.Price))
		fmt.Fprintf(&b, "  • %.4g\" %s @ %dHz\n", p.Display.Size, p.Display.Type, p.Display.RefreshRate)
		fmt.Fprintf(&b, "  • %s | %dGB RAM\n", p.Processor, p.RAM)
		fmt.Fprintf(&b, "  • Camera: %s\n", p.Camera.Main)
		fmt.Fprintf(&b, "  • Battery: %dmAh | %s\n", p.Battery.Capacity, strings.SplitN(p.Battery.Charging, ",", 2)[0])
		fmt.Fprintf(&b, "  • Rating: %.1f/5\n", p.Rating)
		fmt.Fprintf(&b, "  • Highlights: %s\n\n", strings.Join(p.Highlights, ", "))
	}
	return b.String(), nil
}

// DetailsTool returns the full spec sheet for one phone.
type DetailsTool struct {
	Catalog *catalog.Catalog
}

func (t *DetailsTool) Name() string { return "get_phone_details" }

func (t *DetailsTool) Description() string {
	return "Get detailed information about a specific phone."
}

func (t *DetailsTool) Schema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"phone_name": strProp("The name or ID of the phone (e.g., \"iPhone 15 Pro\", \"samsung-s24-ultra\")"),
	}, "phone_name")
}

func (t *DetailsTool) Invoke(ctx context.Context, args Args) (string, error) {
	name := args.String("phone_name")
	phone, ok := t.Catalog.ByID(name)
	if !ok {
		phone, ok = t.Catalog.ByName(name)
	}
	if !ok {
		return fmt.Sprintf("Phone '%s' not found in the database. Please check the name and try again.", name), nil
	}
	return catalog.FormatDetails(phone), nil
}

// CompareTool compares 2-4 phones side by side.
type CompareTool struct {
	Catalog *catalog.Catalog
}

func (t *CompareTool) Name() string { return "compare_phones" }

func (t *CompareTool) Description() string {
	return "Compare 2-3 phones side by side with a specification table and analysis."
}

func (t *CompareTool) Schema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"phone_names": strProp("Comma-separated list of phone names to compare (e.g., \"Pixel 8a, OnePlus 12R, Samsung S24\")"),
	}, "phone_names")
}

func (t *CompareTool) Invoke(ctx context.Context, args Args) (string, error) {
	names := splitNames(args.String("phone_names"))

	if len(names) < 2 {
		return "Please provide at least 2 phone names separated by commas.", nil
	}
	if len(names) > 4 {
		return "Please compare a maximum of 4 phones at a time.", nil
	}

	phones := t.Catalog.Resolve(names)
	if len(phones) < 2 {
		found := make([]string, 0, len(phones))
		for _, p := range phones {
			found = append(found, p.Name)
		}
		return fmt.Sprintf("Could only find %d phone(s): %v. Please check the names and try again.", len(phones), found), nil
	}

	return catalog.FormatComparisonTable(phones) + compareAnalysis(phones), nil
}

// compareAnalysis appends the verdict section after the table.
func compareAnalysis(phones []catalog.Phone) string {
	var b strings.Builder
	b.WriteString("\n## Analysis\n\n")

	cheapest := phones[0]
	for _, p := range phones[1:] {
		if p.Price < cheapest.Price {
			cheapest = p
		}
	}
	fmt.Fprintf(&b, "**Best Value:** %s is the most affordable at %s\n\n", cheapest.Name, catalog.FormatPrice(cheapest.Price))

	sorted := make([]catalog.Phone, len(phones))
	copy(sorted, phones)
	sort.SliceStable(sorted, func(i, j int) bool {
		return mainMegapixelsOf(sorted[i]) > mainMegapixelsOf(sorted[j])
	})
	fmt.Fprintf(&b, "**Best Camera (by MP):** %s with %s\n\n", sorted[0].Name, sorted[0].Camera.Main)

	biggest := phones[0]
	for _, p := range phones[1:] {
		if p.Battery.Capacity > biggest.Battery.Capacity {
			biggest = p
		}
	}
	fmt.Fprintf(&b, "**Best Battery:** %s with %dmAh\n\n", biggest.Name, biggest.Battery.Capacity)

	flagships := []string{"snapdragon 8 gen 3", "a17 pro", "dimensity 9300"}
	for _, p := range phones {
		proc := strings.ToLower(p.Processor)
		for _, f := range flagships {
			if strings.Contains(proc, f) {
				fmt.Fprintf(&b, "**Best Performance:** %s with %s\n\n", p.Name, p.Processor)
				return b.String()
			}
		}
	}
	return b.String()
}

func mainMegapixelsOf(p catalog.Phone) int {
	fields := strings.Fields(p.Camera.Main)
	if len(fields) == 0 {
		return 0
	}
	var mp int
	_, err := fmt.Sscanf(fields[0], "%d", &mp)
	if err != nil {
		return 0
	}
	return mp
}

func splitNames(joined string) []string {
	var out []string
	for _, n := range strings.Split(joined, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// BestCameraTool ranks phones by camera quality.
type BestCameraTool struct {
	Catalog *catalog.Catalog
}

func (t *BestCameraTool) Name() string { return "get_best_camera_phones" }

func (t *BestCameraTool) Description() string {
	return "ALWAYS use this tool when user asks for best camera phones, camera recommendations, or photography phones. " +
		"Returns phones ranked by camera quality including megapixels, OIS, telephoto, and features."
}

func (t *BestCameraTool) Schema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"max_price": intProp("Maximum price in rupees (e.g., 30000, 50000). Leave empty for no limit."),
		"limit":     intProp("Number of phones to return (default 5)"),
	})
}

func (t *BestCameraTool) Invoke(ctx context.Context, args Args) (string, error) {
	maxPrice := args.Int("max_price")
	phones := t.Catalog.BestCamera(maxPrice, args.Limit("limit", 5))
	if len(phones) == 0 {
		return "No camera phones found within your budget.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Best Camera Phones%s\n\n", budgetSuffix(maxPrice))
	for i, p := range phones {
		fmt.Fprintf(&b, "## %d. %s - %s\n", i+1, p.Name, catalog.FormatPrice(p.Price))
		fmt.Fprintf(&b, "- **Main Camera:** %s\n", p.Camera.Main)
		if p.Camera.Telephoto != "" {
			fmt.Fprintf(&b, "- **Telephoto:** %s\n", p.Camera.Telephoto)
		}
		fmt.Fprintf(&b, "- **Camera Features:** %s\n", strings.Join(p.Camera.Features, ", "))
		fmt.Fprintf(&b, "- **Why it's great:** %s\n\n", strings.Join(p.Highlights, ", "))
	}
	return b.String(), nil
}

// BestBatteryTool ranks phones by battery life and charging.
type BestBatteryTool struct {
	Catalog *catalog.Catalog
}

func (t *BestBatteryTool) Name() string { return "get_best_battery_phones" }

func (t *BestBatteryTool) Description() string {
	return "Get phones with the best battery life and charging."
}

func (t *BestBatteryTool) Schema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"max_price": intProp("Maximum price in rupees (optional)"),
		"limit":     intProp("Number of phones to return (default 5)"),
	})
}

func (t *BestBatteryTool) Invoke(ctx context.Context, args Args) (string, error) {
	maxPrice := args.Int("max_price")
	phones := t.Catalog.BestBattery(maxPrice, args.Limit("limit", 5))
	if len(phones) == 0 {
		return "No phones found within your budget.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Best Battery Phones%s\n\n", budgetSuffix(maxPrice))
	for i, p := range phones {
		fmt.Fprintf(&b, "## %d. %s - %s\n", i+1, p.Name, catalog.FormatPrice(p.Price))
		fmt.Fprintf(&b, "- **Battery:** %dmAh\n", p.Battery.Capacity)
		fmt.Fprintf(&b, "- **Charging:** %s\n", p.Battery.Charging)
		fmt.Fprintf(&b, "- **Highlights:** %s\n\n", strings.Join(p.Highlights, ", "))
	}
	return b.String(), nil
}

// GamingTool ranks phones for gaming.
type GamingTool struct {
	Catalog *catalog.Catalog
}

func (t *GamingTool) Name() string { return "get_gaming_phones" }

func (t *GamingTool) Description() string {
	return "Get the best phones for gaming."
}

func (t *GamingTool) Schema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"max_price": intProp("Maximum price in rupees (optional)"),
		"limit":     intProp("Number of phones to return (default 5)"),
	})
}

func (t *GamingTool) Invoke(ctx context.Context, args Args) (string, error) {
	maxPrice := args.Int("max_price")
	phones := t.Catalog.Gaming(maxPrice, args.Limit("limit", 5))
	if len(phones) == 0 {
		return "No gaming phones found within your budget.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Best Gaming Phones%s\n\n", budgetSuffix(maxPrice))
	for i, p := range phones {
		fmt.Fprintf(&b, "## %d. %s - %s\n", i+1, p.Name, catalog.FormatPrice(p.Price))
		fmt.Fprintf(&b, "- **Processor:** %s\n", p.Processor)
		fmt.Fprintf(&b, "- **RAM:** %dGB\n", p.RAM)
		fmt.Fprintf(&b, "- **Display:** %.4g\" @ %dHz\n", p.Display.Size, p.Display.RefreshRate)
		fmt.Fprintf(&b, "- **Battery:** %dmAh | %s\n", p.Battery.Capacity, strings.SplitN(p.Battery.Charging, ",", 2)[0])
		fmt.Fprintf(&b, "- **Highlights:** %s\n\n", strings.Join(p.Highlights, ", "))
	}
	return b.String(), nil
}

// CompactTool finds phones suited for one-hand use.
type CompactTool struct {
	Catalog *catalog.Catalog
}

func (t *CompactTool) Name() string { return "get_compact_phones" }

func (t *CompactTool) Description() string {
	return "Get compact phones suitable for one-hand use."
}

func (t *CompactTool) Schema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"min_price": intProp("Minimum price in rupees (optional)"),
		"max_price": intProp("Maximum price in rupees (optional)"),
		"min_ram":   intProp("Minimum RAM in GB (optional)"),
		"limit":     intProp("Number of phones to return (default 5)"),
	})
}

func (t *CompactTool) Invoke(ctx context.Context, args Args) (string, error) {
	phones := t.Catalog.Compact(args.Int("min_price"), args.Int("max_price"), args.Int("min_ram"), args.Limit("limit", 5))
	if len(phones) == 0 {
		return "No compact phones found. Most modern phones are 6.5\" or larger.", nil
	}

	var b strings.Builder
	b.WriteString("# Compact Phones (Good for One-Hand Use)\n\n")
	for i, p := range phones {
		fmt.Fprintf(&b, "## %d. %s - %s\n", i+1, p.Name, catalog.FormatPrice(p.Price))
		fmt.Fprintf(&b, "- **Display:** %.4g\" %s\n", p.Display.Size, p.Display.Type)
		fmt.Fprintf(&b, "- **Weight:** %dg\n", p.Weight)
		fmt.Fprintf(&b, "- **Highlights:** %s\n\n", strings.Join(p.Highlights, ", "))
	}
	return b.String(), nil
}

// ByBrandTool lists a brand's lineup.
type ByBrandTool struct {
	Catalog *catalog.Catalog
}

func (t *ByBrandTool) Name() string { return "get_phones_by_brand" }

func (t *ByBrandTool) Description() string {
	return "Get all phones from a specific brand."
}

func (t *ByBrandTool) Schema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"brand":     strProp("The brand name (e.g., \"Samsung\", \"Apple\", \"OnePlus\")"),
		"max_price": intProp("Maximum price in rupees (optional)"),
		"limit":     intProp("Maximum number of results (default 10)"),
	}, "brand")
}

func (t *ByBrandTool) Invoke(ctx context.Context, args Args) (string, error) {
	brand := args.String("brand")
	phones := t.Catalog.ByBrand(brand, args.Int("max_price"), args.Limit("limit", 10))
	if len(phones) == 0 {
		return fmt.Sprintf("No phones found for brand '%s'. Available brands: %s.",
			brand, strings.Join(t.Catalog.Brands(), ", ")), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Phones\n\n", phones[0].Brand)
	for _, p := range phones {
		b.WriteString(catalog.FormatSummary(p))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func budgetSuffix(maxPrice *int) string {
	if maxPrice == nil {
		return ""
	}
	return " under " + catalog.FormatPrice(*maxPrice)
}
