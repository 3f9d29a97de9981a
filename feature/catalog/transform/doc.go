// Package transform orchestrates the fetch layer and the normalizer to build
// one canonical catalog item from one upstream sync identifier.
//
// Required sections (the sync product and its variant list) fail the item
// with a transform Error. Optional sections (extended product detail, the
// category node) degrade to empty fields plus a returned warning so a batch
// can keep moving.
package transform
