package tools

import "github.com/richinex/phonewise/catalog"

// CardsFor re-runs the query side of a tool call and projects the matching
// phones into UI cards. The routing mirrors each tool's handler so the cards
// always agree with the text the model saw.
func CardsFor(cat *catalog.Catalog, toolName string, args Args) []catalog.Card {
	var phones []catalog.Phone

	switch toolName {
	case "search_phones":
		phones = cat.Search(catalog.SearchFilter{
			Query:      args.String("query"),
			Brand:      args.String("brand"),
			MinPrice:   args.Int("min_price"),
			MaxPrice:   args.Int("max_price"),
			MinRAM:     args.Int("min_ram"),
			Has5G:      args.Bool("has_5g"),
			MinBattery: args.Int("min_battery"),
			Limit:      args.Limit("limit", 5),
		})
	case "get_phone_details":
		name := args.String("phone_name")
		phone, ok := cat.ByID(name)
		if !ok {
			phone, ok = cat.ByName(name)
		}
		if ok {
			phones = []catalog.Phone{phone}
		}
	case "compare_phones":
		phones = cat.Resolve(splitNames(args.String("phone_names")))
	case "get_best_camera_phones":
		phones = cat.BestCamera(args.Int("max_price"), args.Limit("limit", 5))
	case "get_best_battery_phones":
		phones = cat.BestBattery(args.Int("max_price"), args.Limit("limit", 5))
	case "get_gaming_phones":
		phones = cat.Gaming(args.Int("max_price"), args.Limit("limit", 5))
	case "get_compact_phones":
		phones = cat.Compact(args.Int("min_price"), args.Int("max_price"), args.Int("min_ram"), args.Limit("limit", 5))
	case "get_phones_by_brand":
		phones = cat.ByBrand(args.String("brand"), args.Int("max_price"), args.Limit("limit", 10))
	default:
		return nil
	}

	cards := make([]catalog.Card, 0, len(phones))
	for _, p := range phones {
		cards = append(cards, catalog.CardFor(p))
	}
	return cards
}
