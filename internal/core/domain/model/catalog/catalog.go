// Package catalog defines the read models for the external catalog lookup:
// products with their variant lists and the artist roster. The catalog is an
// external collaborator consumed through ports.CatalogProvider; the cart
// snapshots what it needs from these records at add time and never reads
// them again.
package catalog

import "storefront/internal/core/domain/model/kernel"

// DefaultVariant is the sentinel variant assigned to products that have no
// variant options.
const DefaultVariant = "Standard"

// Product is a catalog record as served to the presentation layer and used
// by the cart when adding an item.
type Product struct {
	ID          string
	Name        string
	Price       kernel.Price
	Description string
	Image       string
	Variants    []string
}

// PickVariant resolves the variant to use for an add operation: the explicit
// requested variant when given, otherwise the first listed variant, otherwise
// DefaultVariant.
func (p Product) PickVariant(requested string) string {
	if requested != "" {
		return requested
	}
	if len(p.Variants) > 0 {
		return p.Variants[0]
	}
	return DefaultVariant
}

// Artist is a roster record shown on the storefront's artists section.
type Artist struct {
	Name  string
	Role  string
	Bio   string
	Image string
}
