// Package cart contains the shopping cart aggregate and its line items.
//
// The Cart aggregate owns an ordered collection of LineItem entities and
// enforces the storefront's aggregation rules: entries are identified by a
// composite (product, variant) key, adding an existing key merges quantities
// instead of duplicating, quantity adjustments clamp at 1 (removal is a
// separate explicit action), and the total is always the exact sum of the
// per-line subtotals.
//
// Line items carry an add-time snapshot of the catalog entry (unit price,
// display name, image reference); the cart never re-fetches prices.
package cart
