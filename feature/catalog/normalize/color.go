package normalize

import "strings"

// placeholderHex is the neutral display color for unknown names.
const placeholderHex = "#CCCCCC"

// colorHex maps lowercase color names to display hex values.
var colorHex = map[string]string{
	"black":          "#000000",
	"white":          "#FFFFFF",
	"gray":           "#808080",
	"grey":           "#808080",
	"heather gray":   "#9AA0A6",
	"heather grey":   "#9AA0A6",
	"charcoal":       "#36454F",
	"silver":         "#C0C0C0",
	"cream":          "#FFFDD0",
	"ivory":          "#FFFFF0",
	"beige":          "#F5F5DC",
	"navy":           "#000080",
	"blue":           "#0000FF",
	"royal blue":     "#4169E1",
	"sky blue":       "#87CEEB",
	"light blue":     "#ADD8E6",
	"teal":           "#008080",
	"turquoise":      "#40E0D0",
	"aqua":           "#00FFFF",
	"red":            "#FF0000",
	"dark red":       "#8B0000",
	"burgundy":       "#800020",
	"maroon":         "#800000",
	"crimson":        "#DC143C",
	"pink":           "#FFC0CB",
	"hot pink":       "#FF69B4",
	"rose":           "#FF007F",
	"green":          "#008000",
	"dark green":     "#006400",
	"forest green":   "#228B22",
	"olive":          "#808000",
	"lime":           "#00FF00",
	"mint":           "#98FF98",
	"kelly green":    "#4CBB17",
	"yellow":         "#FFFF00",
	"gold":           "#FFD700",
	"mustard":        "#FFDB58",
	"purple":         "#800080",
	"violet":         "#8F00FF",
	"lavender":       "#E6E6FA",
	"plum":           "#8E4585",
	"orange":         "#FFA500",
	"coral":          "#FF7F50",
	"peach":          "#FFE5B4",
	"brown":          "#A52A2A",
	"tan":            "#D2B48C",
	"khaki":          "#C3B091",
	"chocolate":      "#7B3F00",
	"sand":           "#C2B280",
}

// Color family tags.
const (
	FamilyNeutral = "neutral"
	FamilyBlue    = "blue"
	FamilyRed     = "red"
	FamilyGreen   = "green"
	FamilyYellow  = "yellow"
	FamilyPurple  = "purple"
	FamilyOrange  = "orange"
	FamilyBrown   = "brown"
	FamilyOther   = "other"
)

// familyOrder fixes first-match-wins iteration over the membership tables.
var familyOrder = []string{
	FamilyNeutral, FamilyBlue, FamilyRed, FamilyGreen,
	FamilyYellow, FamilyPurple, FamilyOrange, FamilyBrown,
}

// colorFamilies lists the member names of each coarse family.
var colorFamilies = map[string][]string{
	FamilyNeutral: {"black", "white", "gray", "grey", "heather gray", "heather grey", "charcoal", "silver", "cream", "ivory", "beige"},
	FamilyBlue:    {"navy", "blue", "royal blue", "sky blue", "light blue", "teal", "turquoise", "aqua"},
	FamilyRed:     {"red", "dark red", "burgundy", "maroon", "crimson", "pink", "hot pink", "rose"},
	FamilyGreen:   {"green", "dark green", "forest green", "olive", "lime", "mint", "kelly green"},
	FamilyYellow:  {"yellow", "gold", "mustard"},
	FamilyPurple:  {"purple", "violet", "lavender", "plum"},
	FamilyOrange:  {"orange", "coral", "peach"},
	FamilyBrown:   {"brown", "tan", "khaki", "chocolate", "sand"},
}

// ResolveColor maps a color name (case-insensitive) to its display hex and
// coarse family. An explicit upstream hex code always wins over the lookup
// table; unknown names get the neutral placeholder hex and family "other".
func ResolveColor(name, code string) (hex, family string) {
	key := strings.ToLower(strings.TrimSpace(name))

	hex = placeholderHex
	if known, ok := colorHex[key]; ok {
		hex = known
	}
	if code = strings.TrimSpace(code); code != "" {
		if !strings.HasPrefix(code, "#") {
			code = "#" + code
		}
		hex = strings.ToUpper(code)
	}

	family = FamilyOther
	for _, fam := range familyOrder {
		for _, member := range colorFamilies[fam] {
			if member == key {
				return hex, fam
			}
		}
	}
	return hex, family
}

// FamilyRank returns the display position of a color family. Unknown families
// (including "other") sort after every known one.
func FamilyRank(family string) int {
	for i, fam := range familyOrder {
		if fam == family {
			return i
		}
	}
	return len(familyOrder)
}
