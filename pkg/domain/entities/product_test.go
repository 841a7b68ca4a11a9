package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestPart(t *testing.T, id PartID, name string) *Part {
	t.Helper()
	part, err := NewPart(id, name, decimal.NewFromInt(1), 1, 0, 10, InHouse{MachineID: int(id)})
	if err != nil {
		t.Fatalf("Failed to create part %s: %v", name, err)
	}
	return part
}

func TestProduct_Validation(t *testing.T) {
	tool, err := NewProduct(1, "tool", decimal.NewFromInt(99), 3, 2, 4)
	if err != nil {
		t.Fatalf("Expected valid product creation to succeed: %v", err)
	}
	if tool.HasAssociations() {
		t.Error("Expected new product to have no associations")
	}

	_, err = NewProduct(2, "", decimal.NewFromInt(1), 1, 0, 2)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for blank name, got %v", err)
	}

	_, err = NewProduct(2, "phone", decimal.NewFromInt(1), 5, 0, 2)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != FieldLevels {
		t.Errorf("Expected levels validation error, got %v", err)
	}
}

func TestProduct_Associations(t *testing.T) {
	product, err := NewProduct(1, "tool", decimal.NewFromInt(99), 3, 2, 4)
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	bolt := newTestPart(t, 1, "bolt")
	nail := newTestPart(t, 2, "nail")

	product.AddAssociatedPart(bolt)
	product.AddAssociatedPart(nail)
	product.AddAssociatedPart(bolt)

	if product.AssociationCount() != 3 {
		t.Fatalf("Expected 3 associations (duplicates allowed), got %d", product.AssociationCount())
	}

	if !product.DeleteAssociatedPart(bolt) {
		t.Error("Expected removal of present part to report true")
	}

	parts := product.AssociatedParts()
	if len(parts) != 2 || parts[0] != nail || parts[1] != bolt {
		t.Errorf("Expected [nail bolt] after removing first bolt, got %v", parts)
	}

	stranger := newTestPart(t, 3, "bolt")
	if product.DeleteAssociatedPart(stranger) {
		t.Error("Expected removal of an absent reference to report false")
	}
	if product.AssociationCount() != 2 {
		t.Errorf("Expected association list unchanged, got %d", product.AssociationCount())
	}
}

func TestProduct_AssociatedPartsIsSnapshot(t *testing.T) {
	product, err := NewProduct(1, "tool", decimal.NewFromInt(99), 3, 2, 4)
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	product.AddAssociatedPart(newTestPart(t, 1, "bolt"))

	snapshot := product.AssociatedParts()
	snapshot[0] = nil

	if product.AssociatedParts()[0] == nil {
		t.Error("Expected mutation of snapshot not to affect the product")
	}
}
