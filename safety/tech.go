package safety

import "strings"

// techTerms lists the terms the assistant can explain without a model
// round trip, in the order they are matched against the message.
var techTerms = []string{"ois", "eis", "amoled", "ltpo", "refresh rate", "5g", "ip68", "periscope", "tensor"}

var techExplanations = map[string]string{
	"ois": `**OIS (Optical Image Stabilization)**
OIS uses tiny motors to physically move the camera lens to counteract hand shake. This results in sharper photos and smoother videos, especially in low light or while moving.

**vs EIS (Electronic Image Stabilization)**
EIS uses software to stabilize footage by cropping and shifting the image digitally. It's cheaper but can reduce image quality and doesn't help with photos.

**Verdict**: OIS is better for photos and video quality, EIS is a budget alternative.`,

	"eis": `**EIS (Electronic Image Stabilization)**
EIS uses software algorithms to stabilize video by analyzing frame-to-frame movement and digitally correcting it. It crops the image slightly to have room for corrections.

**Pros**: Cheaper, no moving parts
**Cons**: Reduces resolution, doesn't help still photos, less effective than OIS

OIS (Optical Image Stabilization) is the premium alternative that physically moves the lens.`,

	"amoled": `**AMOLED (Active Matrix Organic Light Emitting Diode)**
Each pixel produces its own light, so blacks are truly black (pixels just turn off). This gives:
- Perfect contrast ratios
- Vibrant colors
- Lower power consumption for dark content
- Thinner displays

**vs LCD**: LCD uses a backlight behind all pixels, so blacks appear grayish and power use is constant.`,

	"ltpo": `**LTPO (Low-Temperature Polycrystalline Oxide)**
LTPO is an advanced display technology that allows variable refresh rates (e.g., 1Hz to 120Hz).

**Benefits**:
- Saves battery by lowering refresh rate when content is static
- Smooth 120Hz when needed (scrolling, gaming)
- Best of both worlds: battery life + smoothness

Phones without LTPO are stuck at one refresh rate or switch between fixed options (60/120Hz).`,

	"refresh_rate": `**Refresh Rate (Hz)**
How many times per second the screen updates its image.
- **60Hz**: Standard, adequate for most use
- **90Hz**: Noticeably smoother scrolling
- **120Hz**: Very smooth, great for gaming and scrolling
- **144Hz/165Hz**: Gaming-focused, diminishing returns

**Higher = smoother but uses more battery**. LTPO displays can vary the rate to save power.`,

	"5g": `**5G (Fifth Generation Mobile Network)**
The latest wireless technology offering:
- **Faster speeds**: Up to 10x faster than 4G
- **Lower latency**: Better for gaming and video calls
- **More capacity**: Handles more devices in crowded areas

**Do you need it?** If 5G is available in your area and you stream/download a lot, yes. Otherwise, 4G is still plenty fast for most uses.`,

	"ip68": `**IP68 Water & Dust Resistance Rating**
- **IP** = Ingress Protection
- **6** = Dust-tight (complete protection)
- **8** = Water resistant (submersion beyond 1 meter)

Typically means the phone can survive 1.5m underwater for 30 minutes.

**Note**: This is tested in fresh water. Saltwater, chlorine, or drops can still damage the phone. Warranty often doesn't cover water damage.`,

	"periscope": `**Periscope Zoom Lens**
A camera lens that uses mirrors/prisms to fold the light path horizontally inside the phone. This allows for much higher optical zoom (3x-10x) without making the phone thick.

**vs Regular Telephoto**: Standard telephoto gives 2-3x zoom. Periscope can achieve 5x-10x true optical zoom.

**Optical vs Digital Zoom**: Optical maintains quality, digital just crops and enlarges (loses detail).`,

	"tensor": `**Google Tensor Chip**
Google's custom-designed processor for Pixel phones, focused on:
- **AI & ML performance**: Powers features like Magic Eraser, Photo Unblur, Live Translate
- **Computational photography**: Exceptional photo processing
- **On-device AI**: Privacy-focused, processes data locally

**vs Snapdragon**: Snapdragon may win in raw benchmarks, but Tensor excels at AI tasks and photo processing.`,
}

// Explanation returns the canned explanation for a technical term,
// or "" when the term is unknown.
func Explanation(term string) string {
	key := strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(term), " ", "_"), "-", "_")
	return techExplanations[key]
}

// MatchExplanation scans a user message for an explanation request
// ("explain X", "what is X", "what's X") and returns the matching
// explanation, or "" when the message asks for nothing we can answer
// directly.
func MatchExplanation(message string) string {
	lower := strings.ToLower(message)
	for _, term := range techTerms {
		if containsPhrase(lower, "explain "+term) ||
			containsPhrase(lower, "what is "+term) ||
			containsPhrase(lower, "what's "+term) {
			if e := Explanation(term); e != "" {
				return e
			}
		}
	}
	return ""
}

// containsPhrase reports whether phrase occurs in s ending on a word
// boundary, so "what is ois" does not match "what is oisin".
func containsPhrase(s, phrase string) bool {
	for from := 0; ; {
		idx := strings.Index(s[from:], phrase)
		if idx < 0 {
			return false
		}
		end := from + idx + len(phrase)
		if end == len(s) || !isWordChar(s[end]) {
			return true
		}
		from += idx + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
