package normalize

import (
	"testing"

	"catalog-sync/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveSize(t *testing.T) {
	tests := []struct {
		name             string
		token            string
		expectedDisplay  string
		expectedCategory string
		expectedKnown    bool
	}{
		{"small", "S", "S", models.SizeCategoryClothing, true},
		{"lowercase", "xl", "XL", models.SizeCategoryClothing, true},
		{"alias 2xl", "XXL", "2XL", models.SizeCategoryClothing, true},
		{"one size", "One Size", "One Size", models.SizeCategoryUniversal, false},
		{"os token", "OS", "One Size", models.SizeCategoryUniversal, false},
		{"measurement cm", "30 cm", "30 CM", models.SizeCategoryMeasurement, false},
		{"measurement oz", "12oz", "12OZ", models.SizeCategoryMeasurement, false},
		{"measurement decimal", "11.5 in", "11.5 IN", models.SizeCategoryMeasurement, false},
		{"unknown", "Youth Medium", "Youth Medium", models.SizeCategoryOther, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveSize(tt.token)
			assert.Equal(t, tt.expectedDisplay, resolved.DisplayName)
			assert.Equal(t, tt.expectedCategory, resolved.Category)
			assert.Equal(t, tt.expectedKnown, resolved.Known)
		})
	}
}

func TestResolveSize_AlphaOrdering(t *testing.T) {
	order := func(token string) int { return ResolveSize(token).Order }
	assert.Less(t, order("XS"), order("S"))
	assert.Less(t, order("S"), order("M"))
	assert.Less(t, order("M"), order("L"))
	assert.Less(t, order("L"), order("XL"))
	assert.Less(t, order("XL"), order("2XL"))
	assert.Less(t, order("2XL"), order("3XL"))

	// Aliases share a slot
	assert.Equal(t, order("XXL"), order("2XL"))
}

func TestUnknownSizeOrder_SortsAfterKnownSizes(t *testing.T) {
	assert.Greater(t, UnknownSizeOrder(0), ResolveSize("5XL").Order)
	assert.Less(t, UnknownSizeOrder(0), UnknownSizeOrder(1))
}
