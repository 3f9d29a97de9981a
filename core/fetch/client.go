package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"catalog-sync/core/cache"

	"golang.org/x/sync/singleflight"
)

// Catalog is the consumed surface of the upstream catalog API.
type Catalog interface {
	// ListSyncProducts returns every sync-level product, following paging.
	ListSyncProducts(ctx context.Context) ([]SyncProductSummary, error)
	// GetSyncProduct returns one sync product with its variants.
	GetSyncProduct(ctx context.Context, syncID string) (*SyncProduct, error)
	// GetProductDetail returns the extended catalog product record.
	GetProductDetail(ctx context.Context, productID string) (*ProductDetail, error)
	// GetCategory returns one taxonomy node.
	GetCategory(ctx context.Context, categoryID string) (*Category, error)
}

const listPageSize = 100

// Client implements Catalog on top of the retrying Fetcher, with a TTL cache
// in front of every lookup. Concurrent cache misses for the same key collapse
// into a single upstream call via singleflight, so a batch of transforms does
// not stampede the category endpoints.
type Client struct {
	fetcher *Fetcher
	cache   *cache.Cache
	sf      singleflight.Group
}

// NewClient creates a cached catalog client.
func NewClient(fetcher *Fetcher, c *cache.Cache) *Client {
	return &Client{fetcher: fetcher, cache: c}
}

func (c *Client) ListSyncProducts(ctx context.Context) ([]SyncProductSummary, error) {
	raw, err := c.cached(ctx, "sync_products:list", cache.TTLListing, func() (json.RawMessage, error) {
		return c.listAllPages(ctx)
	})
	if err != nil {
		return nil, err
	}
	var products []SyncProductSummary
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to decode sync product listing: %w", err)
	}
	return products, nil
}

func (c *Client) GetSyncProduct(ctx context.Context, syncID string) (*SyncProduct, error) {
	raw, err := c.cached(ctx, "sync_product:"+syncID, cache.TTLDetail, func() (json.RawMessage, error) {
		return c.fetcher.Do(ctx, Request{Path: "store/products/" + syncID})
	})
	if err != nil {
		return nil, err
	}
	var product SyncProduct
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, fmt.Errorf("failed to decode sync product %s: %w", syncID, err)
	}
	return &product, nil
}

func (c *Client) GetProductDetail(ctx context.Context, productID string) (*ProductDetail, error) {
	raw, err := c.cached(ctx, "product_detail:"+productID, cache.TTLDetail, func() (json.RawMessage, error) {
		return c.fetcher.Do(ctx, Request{Path: "products/" + productID})
	})
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Product ProductDetail `json:"product"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode product detail %s: %w", productID, err)
	}
	return &wrapper.Product, nil
}

func (c *Client) GetCategory(ctx context.Context, categoryID string) (*Category, error) {
	raw, err := c.cached(ctx, "category:"+categoryID, cache.TTLReference, func() (json.RawMessage, error) {
		return c.fetcher.Do(ctx, Request{Path: "categories/" + categoryID})
	})
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Category Category `json:"category"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode category %s: %w", categoryID, err)
	}
	return &wrapper.Category, nil
}

// cached returns the cached payload for key, or loads it once and stores it
// with the given TTL on a miss.
func (c *Client) cached(ctx context.Context, key string, ttl time.Duration, load func() (json.RawMessage, error)) (json.RawMessage, error) {
	if value, ok, err := c.cache.Get(key); err != nil {
		return nil, err
	} else if ok {
		return value, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the singleflight lock.
		if value, ok, err := c.cache.Get(key); err != nil {
			return nil, err
		} else if ok {
			return value, nil
		}

		value, err := load()
		if err != nil {
			return nil, err
		}
		if err := c.cache.Put(key, value, ttl); err != nil {
			return nil, err
		}
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(json.RawMessage), nil
}

// listAllPages walks the listing endpoint until every page is collected and
// returns the combined result as a single JSON array.
func (c *Client) listAllPages(ctx context.Context) (json.RawMessage, error) {
	var all []SyncProductSummary
	offset := 0
	for {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(listPageSize))
		query.Set("offset", strconv.Itoa(offset))

		raw, pg, err := c.fetcher.do(ctx, Request{Path: "store/products", Query: query})
		if err != nil {
			return nil, err
		}

		var page []SyncProductSummary
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("failed to decode sync product page: %w", err)
		}
		all = append(all, page...)

		if pg == nil || len(page) == 0 || len(all) >= pg.Total {
			break
		}
		offset += pg.Limit
		if pg.Limit <= 0 {
			break
		}
	}

	combined, err := json.Marshal(all)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sync product listing: %w", err)
	}
	return combined, nil
}
