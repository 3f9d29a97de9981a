package syncer

import (
	"context"
	"strconv"
	"sync"
	"time"

	"catalog-sync/core/fetch"
	"catalog-sync/core/store"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/transform"

	"go.uber.org/zap"
)

// ItemError is one per-item failure inside a batch.
type ItemError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// Result aggregates the outcome of a batch operation. A single item's
// failure never aborts its siblings; both sides are always reported.
type Result struct {
	Items        []models.CatalogItem `json:"items"`
	SuccessCount int                  `json:"success_count"`
	ErrorCount   int                  `json:"error_count"`
	Errors       []ItemError          `json:"errors"`
}

// Progress is invoked after each completed item with (done, total).
type Progress func(done, total int)

// Syncer drives full, single, and bulk syncs against the store.
type Syncer struct {
	catalog     fetch.Catalog
	transformer *transform.Transformer
	store       *store.Store
	logger      *zap.Logger

	// Workers bounds concurrent transforms within a batch.
	workers int
	// batchPause separates batches to stay under upstream rate limits.
	batchPause time.Duration
	sleep      func(time.Duration)
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithWorkers sets the bounded worker count for batch transforms.
func WithWorkers(n int) Option {
	return func(s *Syncer) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithBatchPause sets the pause inserted between batches.
func WithBatchPause(d time.Duration) Option {
	return func(s *Syncer) { s.batchPause = d }
}

// New creates a syncer.
func New(catalog fetch.Catalog, transformer *transform.Transformer, st *store.Store, logger *zap.Logger, opts ...Option) *Syncer {
	s := &Syncer{
		catalog:     catalog,
		transformer: transformer,
		store:       st,
		logger:      logger,
		workers:     4,
		batchPause:  2 * time.Second,
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SyncAll lists every upstream sync identifier, transforms them in batches,
// and replaces the whole store with the successful set. Per-item failures are
// collected into the result and written to a dated error record; they never
// abort the run. Run-level failures (listing, store I/O) do.
func (s *Syncer) SyncAll(ctx context.Context, batchSize int, onProgress Progress) (*Result, error) {
	if batchSize <= 0 {
		batchSize = 20
	}

	listing, err := s.catalog.ListSyncProducts(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(listing))
	for i, p := range listing {
		ids[i] = strconv.FormatInt(p.ID, 10)
	}
	total := len(ids)
	s.logger.Info("starting full sync", zap.Int("products", total), zap.Int("batch_size", batchSize))

	result := &Result{Items: []models.CatalogItem{}, Errors: []ItemError{}}
	done := 0

	for start := 0; start < total; start += batchSize {
		end := min(start+batchSize, total)
		items, errs := s.transformBatch(ctx, ids[start:end])

		result.Items = append(result.Items, items...)
		result.Errors = append(result.Errors, errs...)
		done = end
		if onProgress != nil {
			onProgress(done, total)
		}

		if end < total && s.batchPause > 0 {
			s.sleep(s.batchPause)
		}
	}
	result.SuccessCount = len(result.Items)
	result.ErrorCount = len(result.Errors)

	// Full sync replaces the store wholesale rather than merging.
	doc := store.NewDocument()
	doc.Products = result.Items
	doc.Metadata.LastSync = time.Now()
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}

	if len(result.Errors) > 0 {
		if path, err := s.store.WriteErrorBatch(result.Errors); err != nil {
			s.logger.Warn("failed to write sync error record", zap.Error(err))
		} else {
			s.logger.Warn("sync completed with failures",
				zap.Int("errors", result.ErrorCount),
				zap.String("error_record", path),
			)
		}
	}
	s.logger.Info("full sync finished",
		zap.Int("success", result.SuccessCount),
		zap.Int("errors", result.ErrorCount),
	)
	return result, nil
}

// transformBatch transforms one batch with bounded concurrency. The store is
// never touched here; workers only produce items. Listing order is preserved.
func (s *Syncer) transformBatch(ctx context.Context, ids []string) ([]models.CatalogItem, []ItemError) {
	type slot struct {
		item *models.CatalogItem
		err  error
	}
	slots := make([]slot, len(ids))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, id string) {
			defer wg.Done()
			defer func() { <-sem }()
			item, warnings, err := s.transformer.Transform(ctx, id)
			for _, w := range warnings {
				s.logger.Warn("transform warning", zap.String("sync_id", id), zap.String("warning", w))
			}
			slots[i] = slot{item: item, err: err}
		}(i, id)
	}
	wg.Wait()

	items := []models.CatalogItem{}
	errs := []ItemError{}
	for i, sl := range slots {
		if sl.err != nil {
			errs = append(errs, ItemError{ID: ids[i], Error: sl.err.Error()})
			continue
		}
		items = append(items, *sl.item)
	}
	return items, errs
}

// SyncOne transforms a single sync identifier and upserts it into the store.
// Retries are already applied inside the fetch layer; once they are
// exhausted the terminal error propagates to the caller.
func (s *Syncer) SyncOne(ctx context.Context, syncID string) (*models.CatalogItem, error) {
	item, warnings, err := s.transformer.Transform(ctx, syncID)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		s.logger.Warn("transform warning", zap.String("sync_id", syncID), zap.String("warning", w))
	}

	created, err := s.store.Upsert(*item)
	if err != nil {
		return nil, err
	}
	s.logger.Info("synced product",
		zap.String("sync_id", syncID),
		zap.Bool("created", created),
	)
	return item, nil
}

// SyncMany runs SyncOne sequentially for each identifier, aggregating
// outcomes; one failure does not stop the remaining items.
func (s *Syncer) SyncMany(ctx context.Context, syncIDs []string, onProgress Progress) (*Result, error) {
	result := &Result{Items: []models.CatalogItem{}, Errors: []ItemError{}}
	for i, id := range syncIDs {
		item, err := s.SyncOne(ctx, id)
		if err != nil {
			result.Errors = append(result.Errors, ItemError{ID: id, Error: err.Error()})
		} else {
			result.Items = append(result.Items, *item)
		}
		if onProgress != nil {
			onProgress(i+1, len(syncIDs))
		}
	}
	result.SuccessCount = len(result.Items)
	result.ErrorCount = len(result.Errors)
	return result, nil
}

// Delete removes a product from the store by sync identifier.
func (s *Syncer) Delete(ctx context.Context, syncID string) (*models.CatalogItem, error) {
	return s.store.Delete(syncID)
}
