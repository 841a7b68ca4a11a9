package memory

import (
	"github.com/vsinha/catalog/pkg/domain/entities"
	"github.com/vsinha/catalog/pkg/domain/repositories"
)

// ProductRepository provides in-memory product storage
type ProductRepository struct {
	store *orderedStore[entities.ProductID, entities.Product]
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(expectedProducts int) *ProductRepository {
	return &ProductRepository{
		store: newOrderedStore(expectedProducts,
			func(p *entities.Product) entities.ProductID { return p.ID },
			func(p *entities.Product) string { return p.Name },
		),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// AddProduct appends a product to the repository
func (r *ProductRepository) AddProduct(product *entities.Product) {
	r.store.add(product)
}

// LookupProduct returns the first product with the given id
func (r *ProductRepository) LookupProduct(id entities.ProductID) (*entities.Product, bool) {
	return r.store.lookup(id)
}

// LookupProductsByName returns every product whose name contains substring
func (r *ProductRepository) LookupProductsByName(substring string) []*entities.Product {
	return r.store.lookupByName(substring)
}

// UpdateProduct replaces the product with the given id at the same position
func (r *ProductRepository) UpdateProduct(id entities.ProductID, product *entities.Product) bool {
	return r.store.replace(id, product)
}

// DeleteProduct removes the given product reference. It does not look at
// the product's associations.
func (r *ProductRepository) DeleteProduct(product *entities.Product) bool {
	return r.store.remove(product)
}

// AllProducts returns a snapshot of all products in insertion order
func (r *ProductRepository) AllProducts() []*entities.Product {
	return r.store.snapshot()
}

// CountProducts returns the number of stored products
func (r *ProductRepository) CountProducts() int {
	return r.store.len()
}
