package models

import "time"

// CatalogItem is the canonical persisted product record.
//
// SyncID is the merge key: it is the upstream platform's stable identity and
// must be unique within the store. RecordID is generated locally on first
// creation and never changes on update.
type CatalogItem struct {
	SyncID        string          `json:"sync_id"`
	RecordID      string          `json:"record_id"`
	ExternalID    string          `json:"external_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Currency      string          `json:"currency"`
	ImageURL      string          `json:"image_url"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	OriginCountry string          `json:"origin_country"`
	Type          string          `json:"type"`
	Materials     []MaterialShare `json:"materials"`
	Price         string          `json:"price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Variants      []Variant       `json:"variants"`
	Colors        []ColorFacet    `json:"colors"`
	Sizes         []SizeFacet     `json:"sizes"`
}

// Variant is one sellable variation of a catalog item.
type Variant struct {
	ID           string `json:"id"`
	ExternalID   string `json:"external_id"`
	Name         string `json:"name"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	Price        string `json:"price"`
	ImageURL     string `json:"image_url"`
	SKU          string `json:"sku"`
	Availability string `json:"availability"`
	InStock      bool   `json:"in_stock"`
}

// ColorFacet is a deduplicated color attribute derived from the variants.
// Name is unique within a product (first-seen wins).
type ColorFacet struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Hex    string `json:"hex"`
	Family string `json:"family"`
}

// SizeFacet is a deduplicated size attribute derived from the variants.
// Name is unique within a product (first-seen wins); Order is the sort key.
type SizeFacet struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
}

// Size categories.
const (
	SizeCategoryClothing    = "clothing"
	SizeCategoryMeasurement = "measurement"
	SizeCategoryUniversal   = "universal"
	SizeCategoryOther       = "other"
)

// MaterialShare is one component of a material composition. When a product
// has more than one share, percentages are normalized to sum to 100.
type MaterialShare struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}
