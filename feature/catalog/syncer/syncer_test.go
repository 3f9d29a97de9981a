package syncer

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"catalog-sync/core/fetch"
	"catalog-sync/core/store"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/transform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCatalog serves a deterministic listing; products listed in failing
// return an empty variant list and fail transformation.
type fakeCatalog struct {
	listing []fetch.SyncProductSummary
	failing map[string]bool
	listErr error
}

func (f *fakeCatalog) ListSyncProducts(ctx context.Context) ([]fetch.SyncProductSummary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listing, nil
}

func (f *fakeCatalog) GetSyncProduct(ctx context.Context, syncID string) (*fetch.SyncProduct, error) {
	for _, p := range f.listing {
		if fmt.Sprintf("%d", p.ID) != syncID {
			continue
		}
		sp := &fetch.SyncProduct{SyncProduct: p}
		if !f.failing[syncID] {
			sp.SyncVariants = []fetch.SyncVariant{{
				ID: p.ID * 10, Name: p.Name + " / M", Size: "M", Color: "Black",
				RetailPrice: "25.00", Currency: "EUR", AvailabilityStatus: "active",
			}}
		}
		return sp, nil
	}
	return nil, &fetch.Error{Message: "not found", Terminal: true}
}

func (f *fakeCatalog) GetProductDetail(ctx context.Context, productID string) (*fetch.ProductDetail, error) {
	return &fetch.ProductDetail{ID: 1, Description: "100% Cotton"}, nil
}

func (f *fakeCatalog) GetCategory(ctx context.Context, categoryID string) (*fetch.Category, error) {
	return &fetch.Category{Title: "T-Shirts"}, nil
}

func newFakeCatalog(count int, failing ...string) *fakeCatalog {
	f := &fakeCatalog{failing: map[string]bool{}}
	for _, id := range failing {
		f.failing[id] = true
	}
	for i := 1; i <= count; i++ {
		f.listing = append(f.listing, fetch.SyncProductSummary{
			ID:   int64(i),
			Name: fmt.Sprintf("Product %d", i),
		})
	}
	return f
}

func testCatalogItem(syncID, name string) models.CatalogItem {
	return models.CatalogItem{SyncID: syncID, RecordID: "r-" + syncID, Name: name}
}

func newTestSyncer(t *testing.T, catalog fetch.Catalog) (*Syncer, *store.Store) {
	t.Helper()
	logger := zap.NewNop()
	st := store.New(store.Config{
		Path:        filepath.Join(t.TempDir(), "products.json"),
		BackupCount: 5,
	}, nil, logger)
	tr := transform.New(catalog, logger)
	s := New(catalog, tr, st, logger, WithBatchPause(0), WithWorkers(2))
	return s, st
}

func TestSyncAll_PartialFailureDoesNotAbortBatch(t *testing.T) {
	s, st := newTestSyncer(t, newFakeCatalog(5, "2"))

	result, err := s.SyncAll(context.Background(), 2, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "2", result.Errors[0].ID)
	assert.Contains(t, result.Errors[0].Error, "variant list is empty")

	doc, err := st.Load()
	require.NoError(t, err)
	require.Len(t, doc.Products, 4)
	for _, item := range doc.Products {
		assert.NotEqual(t, "2", item.SyncID)
	}
}

func TestSyncAll_PreservesListingOrder(t *testing.T) {
	s, st := newTestSyncer(t, newFakeCatalog(5))

	result, err := s.SyncAll(context.Background(), 2, nil)
	require.NoError(t, err)
	require.Equal(t, 5, result.SuccessCount)

	doc, err := st.Load()
	require.NoError(t, err)
	for i, item := range doc.Products {
		assert.Equal(t, fmt.Sprintf("%d", i+1), item.SyncID)
	}
}

func TestSyncAll_ReportsProgressPerBatch(t *testing.T) {
	s, _ := newTestSyncer(t, newFakeCatalog(5))

	var progress [][2]int
	_, err := s.SyncAll(context.Background(), 2, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{2, 5}, {4, 5}, {5, 5}}, progress)
}

func TestSyncAll_ReplacesStoreWholesale(t *testing.T) {
	s, st := newTestSyncer(t, newFakeCatalog(2))

	// Preexisting item that the upstream no longer lists
	doc := store.NewDocument()
	doc.Upsert(testCatalogItem("999", "stale"))
	require.NoError(t, st.Save(doc))

	_, err := s.SyncAll(context.Background(), 10, nil)
	require.NoError(t, err)

	loaded, err := st.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Products, 2)
	_, found := loaded.Find("999")
	assert.False(t, found)
}

func TestSyncAll_ListingFailureAbortsRun(t *testing.T) {
	catalog := newFakeCatalog(3)
	catalog.listErr = &fetch.Error{Message: "listing down", Terminal: true}
	s, _ := newTestSyncer(t, catalog)

	_, err := s.SyncAll(context.Background(), 2, nil)
	require.Error(t, err)
	assert.True(t, fetch.IsTerminal(err))
}

func TestSyncOne_UpsertsIntoStore(t *testing.T) {
	s, st := newTestSyncer(t, newFakeCatalog(3))

	item, err := s.SyncOne(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", item.SyncID)
	firstRecordID := item.RecordID

	// Second sync of the same product keeps the record identity
	again, err := s.SyncOne(context.Background(), "1")
	require.NoError(t, err)
	assert.NotEqual(t, firstRecordID, again.RecordID) // fresh id pre-merge

	doc, err := st.Load()
	require.NoError(t, err)
	require.Len(t, doc.Products, 1)
	assert.Equal(t, firstRecordID, doc.Products[0].RecordID)
}

func TestSyncOne_TerminalErrorPropagates(t *testing.T) {
	s, _ := newTestSyncer(t, newFakeCatalog(1))

	_, err := s.SyncOne(context.Background(), "404")
	require.Error(t, err)
	assert.True(t, fetch.IsTerminal(err))
}

func TestSyncMany_AggregatesOutcomes(t *testing.T) {
	s, st := newTestSyncer(t, newFakeCatalog(3, "2"))

	result, err := s.SyncMany(context.Background(), []string{"1", "2", "3"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, "2", result.Errors[0].ID)

	doc, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Products, 2)
}

func TestDelete_RemovesFromStore(t *testing.T) {
	s, st := newTestSyncer(t, newFakeCatalog(1))

	_, err := s.SyncOne(context.Background(), "1")
	require.NoError(t, err)

	removed, err := s.Delete(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, removed)

	doc, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Products)
}
