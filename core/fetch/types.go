package fetch

// SyncProductSummary is the sync-level product row returned by the listing
// endpoint and embedded in the single-product response.
type SyncProductSummary struct {
	ID           int64  `json:"id"`
	ExternalID   string `json:"external_id"`
	Name         string `json:"name"`
	Variants     int    `json:"variants"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// SyncProduct is one sync-level product together with its variant list.
type SyncProduct struct {
	SyncProduct  SyncProductSummary `json:"sync_product"`
	SyncVariants []SyncVariant      `json:"sync_variants"`
}

// SyncVariant is one sellable variant of a sync product.
type SyncVariant struct {
	ID                 int64          `json:"id"`
	ExternalID         string         `json:"external_id"`
	SyncProductID      int64          `json:"sync_product_id"`
	Name               string         `json:"name"`
	Size               string         `json:"size"`
	Color              string         `json:"color"`
	ColorCode          string         `json:"color_code"`
	RetailPrice        string         `json:"retail_price"`
	Currency           string         `json:"currency"`
	SKU                string         `json:"sku"`
	AvailabilityStatus string         `json:"availability_status"`
	Product            VariantSource  `json:"product"`
	Files              []VariantFile  `json:"files"`
}

// VariantSource links a sync variant back to the canonical catalog product.
type VariantSource struct {
	VariantID int64  `json:"variant_id"`
	ProductID int64  `json:"product_id"`
	Image     string `json:"image"`
	Name      string `json:"name"`
}

// VariantFile is an uploaded or generated file attached to a variant.
type VariantFile struct {
	Type       string `json:"type"`
	PreviewURL string `json:"preview_url"`
}

// ProductDetail is the extended catalog product record.
type ProductDetail struct {
	ID             int64  `json:"id"`
	Type           string `json:"type"`
	TypeName       string `json:"type_name"`
	Title          string `json:"title"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Image          string `json:"image"`
	Description    string `json:"description"`
	MainCategoryID int64  `json:"main_category_id"`
	OriginCountry  string `json:"origin_country"`
	Currency       string `json:"currency"`
}

// Category is one taxonomy node.
type Category struct {
	ID       int64  `json:"id"`
	ParentID int64  `json:"parent_id"`
	Title    string `json:"title"`
}
