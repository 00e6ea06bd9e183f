// Package kernel contains the shared value objects of the storefront domain:
// UUID identities for carts, the LineItemKey composite identity that decides
// when two cart entries are the same line item, and Price, the integer
// minor-unit money representation used for all cart arithmetic.
//
// All value objects in this package are immutable and must be created via
// their constructor functions; zero values fail Validate.
package kernel
