package store

import (
	"strings"
	"time"

	"catalog-sync/feature/catalog/models"
)

// Document is the persisted store content: metadata plus the ordered product
// collection. Merge lookups key on SyncID.
type Document struct {
	Metadata Metadata             `json:"metadata"`
	Products []models.CatalogItem `json:"products"`
}

// Metadata describes the store document.
type Metadata struct {
	Version  string    `json:"version"`
	LastSync time.Time `json:"last_sync"`
	Count    int       `json:"count"`
}

const documentVersion = "1"

// NewDocument returns an empty store document.
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{Version: documentVersion},
		Products: []models.CatalogItem{},
	}
}

// Find returns the item with the given sync identifier.
func (d *Document) Find(syncID string) (*models.CatalogItem, bool) {
	for i := range d.Products {
		if d.Products[i].SyncID == syncID {
			return &d.Products[i], true
		}
	}
	return nil, false
}

// Upsert merges item into the collection keyed by SyncID. An existing entry
// keeps its RecordID and original creation timestamp; the incoming item
// replaces it in place. A new item is appended. Returns true when the item
// was created rather than updated.
func (d *Document) Upsert(item models.CatalogItem) bool {
	for i := range d.Products {
		if d.Products[i].SyncID == item.SyncID {
			item.RecordID = d.Products[i].RecordID
			item.CreatedAt = d.Products[i].CreatedAt
			d.Products[i] = item
			return false
		}
	}
	d.Products = append(d.Products, item)
	return true
}

// Remove deletes the item with the given sync identifier and returns it.
func (d *Document) Remove(syncID string) (models.CatalogItem, bool) {
	for i := range d.Products {
		if d.Products[i].SyncID == syncID {
			removed := d.Products[i]
			d.Products = append(d.Products[:i], d.Products[i+1:]...)
			return removed, true
		}
	}
	return models.CatalogItem{}, false
}

// Search filters the collection by a case-insensitive name substring and an
// optional exact (case-insensitive) category name.
func (d *Document) Search(name, category string) []models.CatalogItem {
	matches := []models.CatalogItem{}
	name = strings.ToLower(name)
	for _, item := range d.Products {
		if name != "" && !strings.Contains(strings.ToLower(item.Name), name) {
			continue
		}
		if category != "" && !strings.EqualFold(item.CategoryName, category) {
			continue
		}
		matches = append(matches, item)
	}
	return matches
}
