package repositories

import "github.com/vsinha/catalog/pkg/domain/entities"

// ProductRepository provides access to the product collection.
// DeleteProduct is unconditional; the association guard lives in the
// catalog service.
type ProductRepository interface {
	AddProduct(product *entities.Product)
	LookupProduct(id entities.ProductID) (*entities.Product, bool)
	LookupProductsByName(substring string) []*entities.Product
	UpdateProduct(id entities.ProductID, product *entities.Product) bool
	DeleteProduct(product *entities.Product) bool
	AllProducts() []*entities.Product
	CountProducts() int
}
