package transform

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"catalog-sync/core/fetch"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/normalize"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Error reports a missing or invalid upstream shape. It is terminal for the
// item and is not retried at this layer.
type Error struct {
	SyncID string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("transform %s: %s", e.SyncID, e.Reason)
}

// Transformer builds one canonical catalog item from one upstream sync
// identifier. Missing optional sections (extended detail, category) degrade
// to empty fields plus a warning instead of failing the item.
type Transformer struct {
	catalog fetch.Catalog
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// New creates a transformer over the given catalog client.
func New(catalog fetch.Catalog, logger *zap.Logger) *Transformer {
	return &Transformer{
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Transform fetches, normalizes, and combines the upstream records for
// syncID into a CatalogItem. The returned warnings describe optional
// sections that could not be resolved. The RecordID on the result is freshly
// generated; the merge engine decides later whether to keep it.
func (t *Transformer) Transform(ctx context.Context, syncID string) (*models.CatalogItem, []string, error) {
	var warnings []string

	sync, err := t.catalog.GetSyncProduct(ctx, syncID)
	if err != nil {
		return nil, nil, err
	}
	if sync == nil || sync.SyncProduct.ID == 0 {
		return nil, nil, &Error{SyncID: syncID, Reason: "sync product section missing"}
	}
	if len(sync.SyncVariants) == 0 {
		return nil, nil, &Error{SyncID: syncID, Reason: "variant list is empty"}
	}

	// The canonical upstream product identifier comes from the first
	// variant when present; otherwise the sync identifier itself.
	productID := syncID
	if pid := sync.SyncVariants[0].Product.ProductID; pid != 0 {
		productID = strconv.FormatInt(pid, 10)
	}

	detail := &fetch.ProductDetail{}
	if d, err := t.catalog.GetProductDetail(ctx, productID); err != nil {
		warnings = append(warnings, fmt.Sprintf("product detail %s unavailable: %v", productID, err))
		t.logger.Warn("product detail unavailable, continuing with empty fields",
			zap.String("sync_id", syncID),
			zap.String("product_id", productID),
			zap.Error(err),
		)
	} else {
		detail = d
	}

	categoryID, categoryName := "", ""
	if detail.MainCategoryID != 0 {
		categoryID = strconv.FormatInt(detail.MainCategoryID, 10)
		if cat, err := t.catalog.GetCategory(ctx, categoryID); err != nil {
			warnings = append(warnings, fmt.Sprintf("category %s unavailable: %v", categoryID, err))
			t.logger.Warn("category unavailable, continuing without a name",
				zap.String("sync_id", syncID),
				zap.String("category_id", categoryID),
				zap.Error(err),
			)
		} else {
			categoryName = normalize.CleanText(cat.Title)
		}
	}

	first := sync.SyncVariants[0]
	now := t.now()

	item := &models.CatalogItem{
		SyncID:        syncID,
		RecordID:      t.newID(),
		ExternalID:    sync.SyncProduct.ExternalID,
		Name:          normalize.CleanText(sync.SyncProduct.Name),
		Description:   normalize.CleanText(detail.Description),
		Brand:         normalize.CleanText(detail.Brand),
		Model:         normalize.CleanText(detail.Model),
		Currency:      firstNonEmpty(first.Currency, detail.Currency),
		ImageURL:      firstNonEmpty(normalize.ValidateImageURL(sync.SyncProduct.ThumbnailURL), normalize.ValidateImageURL(detail.Image)),
		CategoryID:    categoryID,
		CategoryName:  categoryName,
		OriginCountry: detail.OriginCountry,
		Type:          firstNonEmpty(detail.Type, detail.TypeName),
		Materials:     normalize.ExtractMaterials(detail.Description),
		Price:         normalize.NormalizePrice(first.RetailPrice),
		CreatedAt:     now,
		UpdatedAt:     now,
		Variants:      buildVariants(sync.SyncVariants),
		Colors:        buildColorFacets(sync.SyncVariants),
		Sizes:         buildSizeFacets(sync.SyncVariants),
	}
	if item.Materials == nil {
		item.Materials = []models.MaterialShare{}
	}

	return item, warnings, nil
}

func buildVariants(variants []fetch.SyncVariant) []models.Variant {
	out := make([]models.Variant, 0, len(variants))
	for _, v := range variants {
		image := normalize.ValidateImageURL(v.Product.Image)
		if image == "" {
			for _, f := range v.Files {
				if candidate := normalize.ValidateImageURL(f.PreviewURL); candidate != "" {
					image = candidate
					break
				}
			}
		}
		out = append(out, models.Variant{
			ID:           strconv.FormatInt(v.ID, 10),
			ExternalID:   v.ExternalID,
			Name:         normalize.CleanText(v.Name),
			Size:         v.Size,
			Color:        v.Color,
			Price:        normalize.NormalizePrice(v.RetailPrice),
			ImageURL:     image,
			SKU:          v.SKU,
			Availability: v.AvailabilityStatus,
			InStock:      normalize.IsInStock(v.AvailabilityStatus),
		})
	}
	return out
}

// buildColorFacets deduplicates variant colors by name (first-seen wins) and
// orders the result by family, then name.
func buildColorFacets(variants []fetch.SyncVariant) []models.ColorFacet {
	seen := map[string]struct{}{}
	facets := []models.ColorFacet{}
	for _, v := range variants {
		name := normalize.CleanText(v.Color)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		hex, family := normalize.ResolveColor(name, v.ColorCode)
		facets = append(facets, models.ColorFacet{
			Name:   name,
			Code:   v.ColorCode,
			Hex:    hex,
			Family: family,
		})
	}
	sort.SliceStable(facets, func(i, j int) bool {
		ri, rj := normalize.FamilyRank(facets[i].Family), normalize.FamilyRank(facets[j].Family)
		if ri != rj {
			return ri < rj
		}
		return facets[i].Name < facets[j].Name
	})
	return facets
}

// buildSizeFacets deduplicates variant sizes by name (first-seen wins).
// Known alpha sizes keep their static order; everything else sorts after
// them in insertion order.
func buildSizeFacets(variants []fetch.SyncVariant) []models.SizeFacet {
	seen := map[string]struct{}{}
	facets := []models.SizeFacet{}
	unknownCount := 0
	for _, v := range variants {
		name := strings.TrimSpace(v.Size)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		resolved := normalize.ResolveSize(name)
		order := resolved.Order
		if !resolved.Known {
			order = normalize.UnknownSizeOrder(unknownCount)
			unknownCount++
		}
		facets = append(facets, models.SizeFacet{
			Name:        name,
			DisplayName: resolved.DisplayName,
			Category:    resolved.Category,
			Order:       order,
		})
	}
	sort.SliceStable(facets, func(i, j int) bool {
		return facets[i].Order < facets[j].Order
	})
	return facets
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
