package normalize

import (
	"testing"

	"catalog-sync/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func TestExtractMaterials(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    []models.MaterialShare
	}{
		{
			name:        "single match",
			description: "Unisex tee, 100% Cotton, preshrunk",
			expected:    []models.MaterialShare{{Name: "Cotton", Percentage: 100}},
		},
		{
			name:        "single match with odd literal is forced to 100",
			description: "Made of 80% Cotton, preshrunk for comfort",
			expected:    []models.MaterialShare{{Name: "Cotton", Percentage: 100}},
		},
		{
			name:        "two shares already summing to 100 are unchanged",
			description: "50% Cotton, 50% Polyester",
			expected: []models.MaterialShare{
				{Name: "Cotton", Percentage: 50},
				{Name: "Polyester", Percentage: 50},
			},
		},
		{
			name:        "shares summing below 100 are rescaled proportionally",
			description: "30% Cotton, 30% Wool",
			expected: []models.MaterialShare{
				{Name: "Cotton", Percentage: 50},
				{Name: "Wool", Percentage: 50},
			},
		},
		{
			name:        "shares summing above 100 are rescaled down",
			description: "60% Cotton, 60% Polyester",
			expected: []models.MaterialShare{
				{Name: "Cotton", Percentage: 50},
				{Name: "Polyester", Percentage: 50},
			},
		},
		{
			name:        "compound material names survive cleaning",
			description: "52% Airlume cotton, 48% poly fleece",
			expected: []models.MaterialShare{
				{Name: "Airlume Cotton", Percentage: 52},
				{Name: "Poly Fleece", Percentage: 48},
			},
		},
		{
			name:        "vocabulary fallback",
			description: "Soft polyester shell with a smooth finish",
			expected:    []models.MaterialShare{{Name: "Polyester", Percentage: 100}},
		},
		{
			name:        "vocabulary is first-hit-wins",
			description: "Wool and cotton mix", // cotton precedes wool in the vocabulary
			expected:    []models.MaterialShare{{Name: "Cotton", Percentage: 100}},
		},
		{
			name:        "suffix words are stripped",
			description: "100% Cotton blend",
			expected:    []models.MaterialShare{{Name: "Cotton", Percentage: 100}},
		},
		{
			name:        "no material information",
			description: "A very nice product",
			expected:    nil,
		},
		{
			name:        "empty description",
			description: "",
			expected:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMaterials(tt.description))
		})
	}
}

func TestExtractMaterials_RoundingCanDriftFromExactly100(t *testing.T) {
	// 33+33+33 rescales to 33+33+33 = 99; the residual is accepted.
	shares := ExtractMaterials("33% Cotton, 33% Wool, 33% Silk")
	sum := 0
	for _, s := range shares {
		sum += s.Percentage
	}
	assert.InDelta(t, 100, sum, 1)
}

func TestCleanMaterialName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"cotton blend", "Cotton"},
		{"Poly fleece fabric", "Poly Fleece"},
		{"recycled polyester.", "Recycled Polyester"},
		{"ring-spun cotton", "Ring-Spun Cotton"},
		{"fabric", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, cleanMaterialName(tt.in), "input %q", tt.in)
	}
}
