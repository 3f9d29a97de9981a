// Package webhook receives change notifications from the upstream platform
// and translates them into single-item sync or delete operations.
package webhook
