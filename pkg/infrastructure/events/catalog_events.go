package events

import (
	"fmt"

	"github.com/vsinha/catalog/pkg/domain/entities"
)

const (
	PartAddedEvent   = "part.added"
	PartUpdatedEvent = "part.updated"
	PartDeletedEvent = "part.deleted"

	ProductAddedEvent   = "product.added"
	ProductUpdatedEvent = "product.updated"
	ProductDeletedEvent = "product.deleted"

	PartAssociatedEvent  = "product.part_associated"
	PartDissociatedEvent = "product.part_dissociated"
)

type PartAdded struct {
	Part *entities.Part `json:"part"`
}

type PartUpdated struct {
	OldPart *entities.Part `json:"old_part"`
	NewPart *entities.Part `json:"new_part"`
}

type PartDeleted struct {
	Part *entities.Part `json:"part"`
	// ReferencedBy lists products that still hold the deleted part
	ReferencedBy []entities.ProductID `json:"referenced_by,omitempty"`
}

type ProductAdded struct {
	Product *entities.Product `json:"product"`
}

type ProductUpdated struct {
	OldProduct *entities.Product `json:"old_product"`
	NewProduct *entities.Product `json:"new_product"`
}

type ProductDeleted struct {
	Product *entities.Product `json:"product"`
}

type PartAssociated struct {
	ProductID entities.ProductID `json:"product_id"`
	Part      *entities.Part     `json:"part"`
}

type PartDissociated struct {
	ProductID entities.ProductID `json:"product_id"`
	Part      *entities.Part     `json:"part"`
}

// PartStream names the event stream of a part
func PartStream(id entities.PartID) string {
	return fmt.Sprintf("part-%d", id)
}

// ProductStream names the event stream of a product
func ProductStream(id entities.ProductID) string {
	return fmt.Sprintf("product-%d", id)
}

func (e PartAdded) Summary() string {
	return describePart(e.Part)
}

func (e PartUpdated) Summary() string {
	if e.OldPart != nil && e.NewPart != nil && e.OldPart.Name != e.NewPart.Name {
		return fmt.Sprintf("%q renamed to %q", e.OldPart.Name, e.NewPart.Name)
	}
	return describePart(e.NewPart)
}

func (e PartDeleted) Summary() string {
	if len(e.ReferencedBy) > 0 {
		return fmt.Sprintf("%s, still used by %d product(s)", describePart(e.Part), len(e.ReferencedBy))
	}
	return describePart(e.Part)
}

func (e ProductAdded) Summary() string {
	return describeProduct(e.Product)
}

func (e ProductUpdated) Summary() string {
	return describeProduct(e.NewProduct)
}

func (e ProductDeleted) Summary() string {
	return describeProduct(e.Product)
}

func (e PartAssociated) Summary() string {
	return "+" + describePart(e.Part)
}

func (e PartDissociated) Summary() string {
	return "-" + describePart(e.Part)
}

func describePart(p *entities.Part) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("part %d %q", p.ID, p.Name)
}

func describeProduct(p *entities.Product) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("product %d %q", p.ID, p.Name)
}
