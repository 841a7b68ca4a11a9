package entities

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ProductID identifies a product within the product collection
type ProductID int

// Product represents a sellable item composed of zero or more parts.
// Associated parts are held by reference; the same part may appear more
// than once and may be shared with other products.
type Product struct {
	ID    ProductID
	Name  string
	Price decimal.Decimal
	Stock int
	Min   int
	Max   int

	associated []*Part
}

// NewProduct creates a validated Product with an empty association list
func NewProduct(id ProductID, name string, price decimal.Decimal, stock, min, max int) (*Product, error) {
	if err := checkCommon(name, price, stock, min, max); err != nil {
		return nil, err
	}

	return &Product{
		ID:         id,
		Name:       name,
		Price:      price,
		Stock:      stock,
		Min:        min,
		Max:        max,
		associated: make([]*Part, 0),
	}, nil
}

// AddAssociatedPart appends a part reference. Duplicates are allowed and the
// part is not checked against the catalog.
func (p *Product) AddAssociatedPart(part *Part) {
	p.associated = append(p.associated, part)
}

// DeleteAssociatedPart removes the first occurrence of the given reference
// and reports whether anything was removed
func (p *Product) DeleteAssociatedPart(part *Part) bool {
	i := lo.IndexOf(p.associated, part)
	if i < 0 {
		return false
	}
	p.associated = append(p.associated[:i], p.associated[i+1:]...)
	return true
}

// AssociatedParts returns a snapshot of the association list in insertion order
func (p *Product) AssociatedParts() []*Part {
	out := make([]*Part, len(p.associated))
	copy(out, p.associated)
	return out
}

// AssociationCount returns the number of associated references
func (p *Product) AssociationCount() int {
	return len(p.associated)
}

// HasAssociations reports whether the product still references any part
func (p *Product) HasAssociations() bool {
	return len(p.associated) > 0
}

// References reports whether the product holds the given part reference
func (p *Product) References(part *Part) bool {
	return lo.Contains(p.associated, part)
}
