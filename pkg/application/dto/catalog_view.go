package dto

import (
	"github.com/samber/lo"

	"github.com/vsinha/catalog/pkg/domain/entities"
)

// PartView is the render-ready form of a part
type PartView struct {
	ID          int    `json:"id" yaml:"id"`
	Kind        string `json:"kind" yaml:"kind"`
	Name        string `json:"name" yaml:"name"`
	Price       string `json:"price" yaml:"price"`
	Stock       int    `json:"stock" yaml:"stock"`
	Min         int    `json:"min" yaml:"min"`
	Max         int    `json:"max" yaml:"max"`
	MachineID   *int   `json:"machine_id,omitempty" yaml:"machine_id,omitempty"`
	CompanyName string `json:"company_name,omitempty" yaml:"company_name,omitempty"`
}

// ProductView is the render-ready form of a product
type ProductView struct {
	ID              int        `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	Price           string     `json:"price" yaml:"price"`
	Stock           int        `json:"stock" yaml:"stock"`
	Min             int        `json:"min" yaml:"min"`
	Max             int        `json:"max" yaml:"max"`
	AssociatedParts []PartView `json:"associated_parts" yaml:"associated_parts"`
}

// NewPartView converts a part for rendering
func NewPartView(p *entities.Part) PartView {
	v := PartView{
		ID:    int(p.ID),
		Kind:  p.Kind().String(),
		Name:  p.Name,
		Price: p.Price.String(),
		Stock: p.Stock,
		Min:   p.Min,
		Max:   p.Max,
	}
	switch o := p.Origin.(type) {
	case entities.InHouse:
		v.MachineID = lo.ToPtr(o.MachineID)
	case entities.Outsourced:
		v.CompanyName = o.CompanyName
	}
	return v
}

// NewPartViews converts parts for rendering, preserving order
func NewPartViews(parts []*entities.Part) []PartView {
	return lo.Map(parts, func(p *entities.Part, _ int) PartView { return NewPartView(p) })
}

// NewProductView converts a product and its associated parts for rendering
func NewProductView(p *entities.Product) ProductView {
	return ProductView{
		ID:              int(p.ID),
		Name:            p.Name,
		Price:           p.Price.String(),
		Stock:           p.Stock,
		Min:             p.Min,
		Max:             p.Max,
		AssociatedParts: NewPartViews(p.AssociatedParts()),
	}
}

// NewProductViews converts products for rendering, preserving order
func NewProductViews(products []*entities.Product) []ProductView {
	return lo.Map(products, func(p *entities.Product, _ int) ProductView { return NewProductView(p) })
}
