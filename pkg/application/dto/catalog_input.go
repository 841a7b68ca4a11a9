package dto

import "github.com/vsinha/catalog/pkg/domain/entities"

// PartInput carries the raw strings a user entered for a part.
// Label is the machine id for in-house parts and the company name for
// outsourced ones.
type PartInput struct {
	Kind  entities.PartKind
	Name  string
	Price string
	Stock string
	Min   string
	Max   string
	Label string
}

// ProductInput carries the raw strings a user entered for a product
type ProductInput struct {
	Name  string
	Price string
	Stock string
	Min   string
	Max   string
}

// PartSeed is one part row of a seed. Ref is the key product seeds use to
// point at it; an empty Ref means the row's 1-based position. A Detached
// part is built only so products can reference it and is never stored.
type PartSeed struct {
	Part     PartInput
	Ref      string
	Detached bool
}

// ProductSeed pairs a product input with the refs of the parts to
// associate with it, in order
type ProductSeed struct {
	Product ProductInput
	Parts   []string
}
