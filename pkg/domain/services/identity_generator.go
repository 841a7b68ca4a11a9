package services

import "github.com/vsinha/catalog/pkg/domain/entities"

// IdentityGenerator issues increasing identifiers, one counter per entity
// kind. Ids are never reused; deleting an entity leaves a gap.
type IdentityGenerator struct {
	partSeq    int
	productSeq int
}

// NewIdentityGenerator creates a generator whose first id for each kind is 1
func NewIdentityGenerator() *IdentityGenerator {
	return &IdentityGenerator{}
}

// NextPartID returns the next part identifier
func (g *IdentityGenerator) NextPartID() entities.PartID {
	g.partSeq++
	return entities.PartID(g.partSeq)
}

// NextProductID returns the next product identifier
func (g *IdentityGenerator) NextProductID() entities.ProductID {
	g.productSeq++
	return entities.ProductID(g.productSeq)
}
