package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"catalog-sync/feature/catalog/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// percentRe matches "<integer>% <words>" composition patterns.
var percentRe = regexp.MustCompile(`(\d{1,3})\s*%\s*([A-Za-z][A-Za-z\- ]*[A-Za-z]|[A-Za-z])`)

// materialVocab is the fallback vocabulary scanned when no percentage
// pattern matches. Order matters: first hit wins.
var materialVocab = []string{
	"cotton", "polyester", "wool", "linen", "silk", "leather", "nylon",
	"spandex", "elastane", "viscose", "rayon", "acrylic", "bamboo",
	"cashmere", "denim", "fleece", "hemp", "modal", "lyocell", "suede",
	"canvas", "polyurethane", "rubber", "latex",
}

// materialSuffixes are generic words stripped from captured material names.
var materialSuffixes = map[string]struct{}{
	"blend":    {},
	"blends":   {},
	"fabric":   {},
	"fabrics":  {},
	"material": {},
	"fiber":    {},
	"fibers":   {},
	"fibre":    {},
	"fibres":   {},
}

var titleCaser = cases.Title(language.English)

// ExtractMaterials derives the material composition from a free-text
// description.
//
// Priority: percentage patterns first. A single match is always forced to
// 100% regardless of the captured number (single-material garments are 100%
// that material). Multiple matches whose sum is positive but not exactly 100
// are rescaled proportionally via round(value/total*100); independent
// rounding may leave the result a point off 100, which is accepted. With no
// percentage match, the first vocabulary keyword found yields a single 100%
// share.
func ExtractMaterials(description string) []models.MaterialShare {
	matches := percentRe.FindAllStringSubmatch(description, -1)

	if len(matches) == 1 {
		name := cleanMaterialName(matches[0][2])
		if name == "" {
			return scanVocabulary(description)
		}
		return []models.MaterialShare{{Name: name, Percentage: 100}}
	}

	if len(matches) > 1 {
		shares := make([]models.MaterialShare, 0, len(matches))
		total := 0
		for _, m := range matches {
			pct, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			name := cleanMaterialName(m[2])
			if name == "" {
				continue
			}
			shares = append(shares, models.MaterialShare{Name: name, Percentage: pct})
			total += pct
		}
		if len(shares) == 1 {
			shares[0].Percentage = 100
			return shares
		}
		if total != 100 && total > 0 {
			for i := range shares {
				shares[i].Percentage = int(math.Round(float64(shares[i].Percentage) / float64(total) * 100))
			}
		}
		if len(shares) > 0 {
			return shares
		}
	}

	return scanVocabulary(description)
}

// scanVocabulary returns a single 100% share for the first known material
// keyword in the description, or nil when none is present.
func scanVocabulary(description string) []models.MaterialShare {
	lower := strings.ToLower(description)
	for _, keyword := range materialVocab {
		if containsWord(lower, keyword) {
			return []models.MaterialShare{{Name: titleCaser.String(keyword), Percentage: 100}}
		}
	}
	return nil
}

// containsWord reports whether s contains keyword on word boundaries.
func containsWord(s, keyword string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], keyword)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isLetter(s[i-1])
		afterIdx := i + len(keyword)
		after := afterIdx >= len(s) || !isLetter(s[afterIdx])
		if before && after {
			return true
		}
		idx = i + len(keyword)
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// cleanMaterialName strips generic suffix words and punctuation other than
// hyphens, then title-cases the remainder.
func cleanMaterialName(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))

	var cleaned strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r == '-', r == ' ':
			cleaned.WriteRune(r)
		}
	}

	words := strings.Fields(cleaned.String())
	kept := words[:0]
	for _, w := range words {
		if _, generic := materialSuffixes[w]; generic {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return ""
	}
	return titleCaser.String(strings.Join(kept, " "))
}
