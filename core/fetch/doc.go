// Package fetch provides the cached, retrying client for the upstream
// catalog API.
//
// It has two layers:
//
// 1. Fetcher: one authorized JSON call with retry and backoff. Rate-limited
// responses (HTTP 429) wait base * 2^attempt before the next try; other
// transient failures (non-200 statuses, undecodable bodies) wait
// base * attempt. An application error carried inside a 200 body is surfaced
// immediately and never retried. After the final attempt the last transient
// error is surfaced as terminal.
//
// 2. Client: typed endpoint helpers (listing, sync product, product detail,
// category) with a file-backed TTL cache in front of every lookup and
// singleflight collapse of concurrent misses.
package fetch
