package catalog

import (
	"fmt"
	"strings"
)

// FormatPrice renders a rupee amount with Indian digit grouping,
// e.g. 129999 -> "₹1,29,999".
func FormatPrice(price int) string {
	s := fmt.Sprintf("%d", price)
	if len(s) <= 3 {
		return "₹" + s
	}

	// Last three digits form one group; the rest group in pairs.
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return "₹" + strings.Join(groups, ",") + "," + tail
}

// FormatSummary renders a phone as a short markdown summary block.
func FormatSummary(p Phone) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** by %s\n", p.Name, p.Brand)
	fmt.Fprintf(&b, "- **Price:** %s\n", FormatPrice(p.Price))
	fmt.Fprintf(&b, "- **Display:** %.4g\" %s @ %dHz\n", p.Display.Size, p.Display.Type, p.Display.RefreshRate)
	fmt.Fprintf(&b, "- **Processor:** %s\n", p.Processor)
	fmt.Fprintf(&b, "- **RAM:** %dGB\n", p.RAM)
	fmt.Fprintf(&b, "- **Camera:** %s main\n", p.Camera.Main)
	fmt.Fprintf(&b, "- **Battery:** %dmAh, %s\n", p.Battery.Capacity, p.Battery.Charging)
	fmt.Fprintf(&b, "- **5G:** %s\n", yesNo(p.Has5G))
	if len(p.Highlights) > 0 {
		fmt.Fprintf(&b, "- **Highlights:** %s\n", strings.Join(p.Highlights, ", "))
	}
	fmt.Fprintf(&b, "- **Rating:** %.1f/5\n", p.Rating)
	return b.String()
}

// FormatDetails renders the full spec sheet for one phone as markdown.
func FormatDetails(p Phone) string {
	camera := fmt.Sprintf("Main: %s", p.Camera.Main)
	if p.Camera.Ultrawide != "" {
		camera += fmt.Sprintf(" | Ultrawide: %s", p.Camera.Ultrawide)
	}
	if p.Camera.Telephoto != "" {
		camera += fmt.Sprintf(" | Telephoto: %s", p.Camera.Telephoto)
	}
	camera += fmt.Sprintf(" | Front: %s", p.Camera.Front)

	storage := make([]string, len(p.Storage))
	for i, s := range p.Storage {
		storage[i] = fmt.Sprintf("%dGB", s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "## Basic Info\n")
	fmt.Fprintf(&b, "- **Brand:** %s\n", p.Brand)
	fmt.Fprintf(&b, "- **Price:** %s\n", FormatPrice(p.Price))
	if p.ReleaseDate != "" {
		fmt.Fprintf(&b, "- **Release Date:** %s\n", p.ReleaseDate)
	}
	fmt.Fprintf(&b, "- **Rating:** %.1f/5\n", p.Rating)
	if len(p.Colors) > 0 {
		fmt.Fprintf(&b, "- **Colors:** %s\n", strings.Join(p.Colors, ", "))
	}
	fmt.Fprintf(&b, "\n## Display\n")
	fmt.Fprintf(&b, "- **Size:** %.4g inches\n", p.Display.Size)
	fmt.Fprintf(&b, "- **Type:** %s\n", p.Display.Type)
	fmt.Fprintf(&b, "- **Resolution:** %s\n", p.Display.Resolution)
	fmt.Fprintf(&b, "- **Refresh Rate:** %dHz\n", p.Display.RefreshRate)
	fmt.Fprintf(&b, "\n## Performance\n")
	fmt.Fprintf(&b, "- **Processor:** %s\n", p.Processor)
	fmt.Fprintf(&b, "- **RAM:** %dGB\n", p.RAM)
	fmt.Fprintf(&b, "- **Storage Options:** %s\n", strings.Join(storage, ", "))
	fmt.Fprintf(&b, "\n## Camera\n")
	fmt.Fprintf(&b, "- **Setup:** %s\n", camera)
	if len(p.Camera.Features) > 0 {
		fmt.Fprintf(&b, "- **Features:** %s\n", strings.Join(p.Camera.Features, ", "))
	}
	fmt.Fprintf(&b, "\n## Battery\n")
	fmt.Fprintf(&b, "- **Capacity:** %dmAh\n", p.Battery.Capacity)
	fmt.Fprintf(&b, "- **Charging:** %s\n", p.Battery.Charging)
	fmt.Fprintf(&b, "\n## Connectivity & Features\n")
	fmt.Fprintf(&b, "- **5G:** %s\n", yesNo(p.Has5G))
	fmt.Fprintf(&b, "- **NFC:** %s\n", yesNo(p.NFC))
	fmt.Fprintf(&b, "- **Water Resistance:** %s\n", orNone(p.WaterResistance))
	if p.Weight > 0 {
		fmt.Fprintf(&b, "- **Weight:** %dg\n", p.Weight)
	}
	if len(p.Highlights) > 0 {
		fmt.Fprintf(&b, "\n## Highlights\n")
		for _, h := range p.Highlights {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	return b.String()
}

// FormatComparisonTable renders a side-by-side markdown table for the
// given phones. The row-separator line ("| --- | ...") doubles as the
// marker the loop uses to detect tabular tool output.
func FormatComparisonTable(phones []Phone) string {
	if len(phones) == 0 {
		return "No phones to compare."
	}

	headers := make([]string, 0, len(phones)+1)
	headers = append(headers, "Feature")
	for _, p := range phones {
		headers = append(headers, p.Name)
	}

	rows := [][]string{
		row("Price", phones, func(p Phone) string { return FormatPrice(p.Price) }),
		row("Display", phones, func(p Phone) string {
			return fmt.Sprintf("%.4g\" %dHz", p.Display.Size, p.Display.RefreshRate)
		}),
		row("Processor", phones, func(p Phone) string { return p.Processor }),
		row("RAM", phones, func(p Phone) string { return fmt.Sprintf("%dGB", p.RAM) }),
		row("Main Camera", phones, func(p Phone) string { return p.Camera.Main }),
		row("Battery", phones, func(p Phone) string { return fmt.Sprintf("%dmAh", p.Battery.Capacity) }),
		row("Charging", phones, func(p Phone) string {
			return strings.SplitN(p.Battery.Charging, ",", 2)[0]
		}),
		row("5G", phones, func(p Phone) string { return yesNo(p.Has5G) }),
		row("Water Resistance", phones, func(p Phone) string { return orNone(p.WaterResistance) }),
		row("Rating", phones, func(p Phone) string { return fmt.Sprintf("%.1f/5", p.Rating) }),
	}

	var b strings.Builder
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("| " + strings.Join(repeat("---", len(headers)), " | ") + " |\n")
	for _, r := range rows {
		b.WriteString("| " + strings.Join(r, " | ") + " |\n")
	}
	return b.String()
}

func row(label string, phones []Phone, cell func(Phone) string) []string {
	out := make([]string, 0, len(phones)+1)
	out = append(out, label)
	for _, p := range phones {
		out = append(out, cell(p))
	}
	return out
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
