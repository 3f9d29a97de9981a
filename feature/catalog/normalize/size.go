package normalize

import (
	"regexp"
	"strings"

	"catalog-sync/feature/catalog/models"
)

// sizeDisplay maps lowercase size tokens to their display labels.
var sizeDisplay = map[string]string{
	"xxs":  "2XS",
	"2xs":  "2XS",
	"xs":   "XS",
	"s":    "S",
	"m":    "M",
	"l":    "L",
	"xl":   "XL",
	"xxl":  "2XL",
	"2xl":  "2XL",
	"xxxl": "3XL",
	"3xl":  "3XL",
	"4xl":  "4XL",
	"5xl":  "5XL",
}

// sizeOrder assigns the sort key for known alpha sizes. Aliases share a slot.
var sizeOrder = map[string]int{
	"xxs":  0,
	"2xs":  0,
	"xs":   1,
	"s":    2,
	"m":    3,
	"l":    4,
	"xl":   5,
	"xxl":  6,
	"2xl":  6,
	"xxxl": 7,
	"3xl":  7,
	"4xl":  8,
	"5xl":  9,
}

// unknownSizeOrder is where unknown sizes start; they keep insertion order
// after every known size.
const unknownSizeOrder = 100

// universalSizes are one-size variants.
var universalSizes = map[string]struct{}{
	"one size":  {},
	"one_size":  {},
	"onesize":   {},
	"os":        {},
	"universal": {},
	"free size": {},
}

// measurementRe matches a numeric value followed by a unit token.
var measurementRe = regexp.MustCompile(`^\d+(\.\d+)?\s*(mm|cm|m|in|inch|inches|ft|oz|fl oz|ml|cl|l|g|kg|lb|lbs)$`)

// ResolvedSize is the normalized form of one size token.
type ResolvedSize struct {
	DisplayName string
	Category    string
	Order       int
	Known       bool
}

// ResolveSize maps a size token (case-insensitive) to its display label,
// category, and sort order. Unknown sizes report Known=false and are ordered
// last by insertion (the caller offsets from unknownSizeOrder).
func ResolveSize(token string) ResolvedSize {
	key := strings.ToLower(strings.TrimSpace(token))

	if display, ok := sizeDisplay[key]; ok {
		return ResolvedSize{
			DisplayName: display,
			Category:    models.SizeCategoryClothing,
			Order:       sizeOrder[key],
			Known:       true,
		}
	}

	if _, ok := universalSizes[key]; ok {
		return ResolvedSize{
			DisplayName: "One Size",
			Category:    models.SizeCategoryUniversal,
			Order:       unknownSizeOrder,
		}
	}

	if measurementRe.MatchString(key) {
		return ResolvedSize{
			DisplayName: strings.ToUpper(key),
			Category:    models.SizeCategoryMeasurement,
			Order:       unknownSizeOrder,
			Known:       false,
		}
	}

	return ResolvedSize{
		DisplayName: strings.TrimSpace(token),
		Category:    models.SizeCategoryOther,
		Order:       unknownSizeOrder,
		Known:       false,
	}
}

// UnknownSizeOrder returns the sort key for the nth unknown size seen.
func UnknownSizeOrder(insertionIndex int) int {
	return unknownSizeOrder + insertionIndex
}
