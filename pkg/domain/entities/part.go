package entities

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// PartID identifies a part within the part collection
type PartID int

// PartKind discriminates the part variants
type PartKind int

const (
	KindInHouse PartKind = iota
	KindOutsourced
)

// String method for PartKind enum
func (k PartKind) String() string {
	switch k {
	case KindInHouse:
		return "InHouse"
	case KindOutsourced:
		return "Outsourced"
	default:
		return "Unknown"
	}
}

// ParsePartKind accepts the enum name or its short forms, case-insensitively
func ParsePartKind(s string) (PartKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inhouse", "in-house", "in_house", "in":
		return KindInHouse, nil
	case "outsourced", "out":
		return KindOutsourced, nil
	default:
		return 0, NewValidationError(FieldKind, "unknown part kind %q", s)
	}
}

// Origin is the variant-specific half of a Part. The set of implementations
// is closed: InHouse and Outsourced.
type Origin interface {
	Kind() PartKind
	isOrigin()
}

// InHouse marks a part produced on an internal machine
type InHouse struct {
	MachineID int
}

func (InHouse) Kind() PartKind { return KindInHouse }
func (InHouse) isOrigin()      {}

// Outsourced marks a part bought from a supplier
type Outsourced struct {
	CompanyName string
}

func (Outsourced) Kind() PartKind { return KindOutsourced }
func (Outsourced) isOrigin()      {}

// Part represents a catalog component
type Part struct {
	ID     PartID
	Name   string
	Price  decimal.Decimal
	Stock  int
	Min    int
	Max    int
	Origin Origin
}

// NewPart creates a validated Part
func NewPart(id PartID, name string, price decimal.Decimal, stock, min, max int, origin Origin) (*Part, error) {
	if err := checkCommon(name, price, stock, min, max); err != nil {
		return nil, err
	}

	switch o := origin.(type) {
	case InHouse:
	case Outsourced:
		if strings.TrimSpace(o.CompanyName) == "" {
			return nil, NewValidationError(FieldCompanyName, "Company Name cannot be blank.")
		}
	default:
		return nil, NewValidationError(FieldKind, "part origin must be InHouse or Outsourced")
	}

	return &Part{
		ID:     id,
		Name:   name,
		Price:  price,
		Stock:  stock,
		Min:    min,
		Max:    max,
		Origin: origin,
	}, nil
}

// Kind returns the variant of the part
func (p *Part) Kind() PartKind {
	return p.Origin.Kind()
}

// Label renders the variant field: the machine id or the company name
func (p *Part) Label() string {
	switch o := p.Origin.(type) {
	case InHouse:
		return strconv.Itoa(o.MachineID)
	case Outsourced:
		return o.CompanyName
	default:
		return ""
	}
}

// MachineID returns the machine id of an in-house part
func (p *Part) MachineID() (int, bool) {
	o, ok := p.Origin.(InHouse)
	return o.MachineID, ok
}

// CompanyName returns the supplier of an outsourced part
func (p *Part) CompanyName() (string, bool) {
	o, ok := p.Origin.(Outsourced)
	return o.CompanyName, ok
}
