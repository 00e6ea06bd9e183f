// Package filecatalog implements ports.CatalogProvider over JSON files in a
// data directory. The files are read per call so catalog edits show up
// without a restart; the listing order in the files is preserved.
package filecatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const (
	productsFile = "products.json"
	artistsFile  = "artists.json"
)

// Provider serves catalog reads from JSON files under a data directory.
type Provider struct {
	dataDir string
}

// NewProvider creates a catalog provider rooted at the given data directory.
func NewProvider(dataDir string) *Provider {
	return &Provider{dataDir: dataDir}
}

// productRecord is the stored JSON form of one product. Variant options are
// stored under "shades", the field name the catalog files have always used.
type productRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Shades      []string `json:"shades"`
}

type artistRecord struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// Products returns the full product listing in file order.
func (p *Provider) Products(_ context.Context) ([]catalog.Product, error) {
	records, err := readRecords[productRecord](filepath.Join(p.dataDir, productsFile))
	if err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(records))
	for _, record := range records {
		product, recordErr := toProduct(record)
		if recordErr != nil {
			return nil, recordErr
		}
		products = append(products, product)
	}

	return products, nil
}

// ProductByID returns a single product record.
// Returns errs.ObjectNotFoundError when the identifier is unknown.
func (p *Provider) ProductByID(ctx context.Context, id string) (catalog.Product, error) {
	products, err := p.Products(ctx)
	if err != nil {
		return catalog.Product{}, err
	}

	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}

	return catalog.Product{}, errs.NewObjectNotFoundError("productId", id)
}

// Artists returns the artist roster in file order.
func (p *Provider) Artists(_ context.Context) ([]catalog.Artist, error) {
	records, err := readRecords[artistRecord](filepath.Join(p.dataDir, artistsFile))
	if err != nil {
		return nil, err
	}

	artists := make([]catalog.Artist, 0, len(records))
	for _, record := range records {
		artists = append(artists, catalog.Artist{
			Name:  record.Name,
			Role:  record.Role,
			Bio:   record.Bio,
			Image: record.Image,
		})
	}

	return artists, nil
}

func toProduct(record productRecord) (catalog.Product, error) {
	price, err := kernel.NewPriceFromFloat(record.Price)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("product %q: %w", record.ID, err)
	}

	return catalog.Product{
		ID:          record.ID,
		Name:        record.Name,
		Price:       price,
		Description: record.Description,
		Image:       record.Image,
		Variants:    record.Shades,
	}, nil
}

func readRecords[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var records []T
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", filepath.Base(path), err)
	}

	return records, nil
}
