// Package normalize turns raw upstream catalog fields into canonical shapes.
//
// Everything here is pure and deterministic: no I/O, no clocks, no
// randomness. The lookup tables (colors, families, sizes, material
// vocabulary) are immutable data loaded once; matching is case-insensitive
// with first-match-wins ordering where an order exists.
package normalize
