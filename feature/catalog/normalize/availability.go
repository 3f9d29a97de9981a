package normalize

import "strings"

// inStockStatuses are the availability tokens that mean purchasable now.
var inStockStatuses = map[string]struct{}{
	"in_stock":  {},
	"available": {},
	"active":    {},
}

// IsInStock maps a free-form availability status to a stock flag. Anything
// outside the known set is treated as out of stock.
func IsInStock(status string) bool {
	_, ok := inStockStatuses[strings.ToLower(strings.TrimSpace(status))]
	return ok
}
