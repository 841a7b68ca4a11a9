package services

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/catalog/pkg/domain/entities"
)

// RawFields holds the user-entered strings shared by parts and products
type RawFields struct {
	Name  string
	Price string
	Stock string
	Min   string
	Max   string
}

// Fields is the parsed form of RawFields
type Fields struct {
	Name  string
	Price decimal.Decimal
	Stock int
	Min   int
	Max   int
}

// InputValidator applies the catalog input rules in a fixed order and stops
// at the first violation
type InputValidator struct{}

// NewInputValidator creates a new input validator
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// ValidateFields checks price, stock, min, max, name and the stock levels,
// in that order
func (v *InputValidator) ValidateFields(raw RawFields) (Fields, error) {
	var f Fields

	price, err := decimal.NewFromString(strings.TrimSpace(raw.Price))
	if err != nil || price.IsNegative() {
		return f, invalidValue(entities.FieldPrice, "Price")
	}

	stock, err := parseInt32(raw.Stock)
	if err != nil {
		return f, invalidValue(entities.FieldStock, "Inventory")
	}
	min, err := parseInt32(raw.Min)
	if err != nil {
		return f, invalidValue(entities.FieldMin, "Min")
	}
	max, err := parseInt32(raw.Max)
	if err != nil {
		return f, invalidValue(entities.FieldMax, "Max")
	}

	if strings.TrimSpace(raw.Name) == "" {
		return f, entities.NewValidationError(entities.FieldName, "Name cannot be blank.")
	}

	if err := entities.CheckLevels(stock, min, max); err != nil {
		return f, err
	}

	return Fields{
		Name:  raw.Name,
		Price: price,
		Stock: stock,
		Min:   min,
		Max:   max,
	}, nil
}

// ValidateOrigin checks the variant label: a machine id for in-house parts,
// a company name for outsourced ones
func (v *InputValidator) ValidateOrigin(kind entities.PartKind, label string) (entities.Origin, error) {
	switch kind {
	case entities.KindInHouse:
		machineID, err := parseInt32(label)
		if err != nil {
			return nil, entities.NewValidationError(entities.FieldMachineID,
				"Machine ID should be a number and must be a valid value and cannot be blank.")
		}
		return entities.InHouse{MachineID: machineID}, nil
	case entities.KindOutsourced:
		if strings.TrimSpace(label) == "" {
			return nil, entities.NewValidationError(entities.FieldCompanyName, "Company Name cannot be blank.")
		}
		return entities.Outsourced{CompanyName: label}, nil
	default:
		return nil, entities.NewValidationError(entities.FieldKind, "unknown part kind %d", kind)
	}
}

// ValidatePart runs the shared rules followed by the variant rule
func (v *InputValidator) ValidatePart(raw RawFields, kind entities.PartKind, label string) (Fields, entities.Origin, error) {
	f, err := v.ValidateFields(raw)
	if err != nil {
		return Fields{}, nil, err
	}
	origin, err := v.ValidateOrigin(kind, label)
	if err != nil {
		return Fields{}, nil, err
	}
	return f, origin, nil
}

func invalidValue(field entities.Field, label string) error {
	return entities.NewValidationError(field, "%s must be a valid value and cannot be blank.", label)
}

// parseInt32 mirrors a strict 32-bit integer parse: no surrounding
// whitespace, optional sign, decimal digits only.
func parseInt32(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
