package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPart_Validation(t *testing.T) {
	bolt, err := NewPart(1, "bolt", decimal.RequireFromString("2.99"), 5, 2, 300, InHouse{MachineID: 4})
	if err != nil {
		t.Fatalf("Expected valid part creation to succeed: %v", err)
	}
	if bolt.Kind() != KindInHouse {
		t.Errorf("Expected kind InHouse, got %s", bolt.Kind())
	}
	if bolt.Label() != "4" {
		t.Errorf("Expected label 4, got %s", bolt.Label())
	}

	testCases := []struct {
		name        string
		partName    string
		price       string
		stock       int
		min         int
		max         int
		origin      Origin
		expectField Field
		expectError string
	}{
		{"blank name", "   ", "1", 1, 0, 2, InHouse{1}, FieldName, "name: Name cannot be blank."},
		{"negative price", "bolt", "-0.01", 1, 0, 2, InHouse{1}, FieldPrice, "price: price cannot be negative, got -0.01"},
		{"stock below min", "bolt", "1", 1, 2, 5, InHouse{1}, FieldLevels, "levels: " + levelsMessage},
		{"stock above max", "bolt", "1", 6, 2, 5, InHouse{1}, FieldLevels, "levels: " + levelsMessage},
		{"blank company", "nail", "1", 3, 1, 5, Outsourced{CompanyName: " "}, FieldCompanyName, "company_name: Company Name cannot be blank."},
		{"missing origin", "nail", "1", 3, 1, 5, nil, FieldKind, "kind: part origin must be InHouse or Outsourced"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPart(1, tc.partName, decimal.RequireFromString(tc.price), tc.stock, tc.min, tc.max, tc.origin)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected validation error, got %T", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tc.expectField {
				t.Errorf("Expected field %s, got %v", tc.expectField, err)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestPart_EqualBoundsAccepted(t *testing.T) {
	if _, err := NewPart(1, "washer", decimal.Zero, 3, 3, 3, Outsourced{CompanyName: "Acme"}); err != nil {
		t.Fatalf("Expected min == stock == max to be valid: %v", err)
	}
}

func TestPart_VariantAccessors(t *testing.T) {
	nail, err := NewPart(2, "nail", decimal.RequireFromString("0.75"), 50, 3, 500, Outsourced{CompanyName: "Nail Co"})
	if err != nil {
		t.Fatalf("Failed to create part: %v", err)
	}

	if _, ok := nail.MachineID(); ok {
		t.Error("Expected outsourced part to have no machine id")
	}
	company, ok := nail.CompanyName()
	if !ok || company != "Nail Co" {
		t.Errorf("Expected company Nail Co, got %q (ok=%v)", company, ok)
	}
	if nail.Label() != "Nail Co" {
		t.Errorf("Expected label Nail Co, got %s", nail.Label())
	}
}

func TestParsePartKind(t *testing.T) {
	for input, want := range map[string]PartKind{
		"inhouse":    KindInHouse,
		"In-House":   KindInHouse,
		"outsourced": KindOutsourced,
		" OUT ":      KindOutsourced,
	} {
		got, err := ParsePartKind(input)
		if err != nil {
			t.Errorf("ParsePartKind(%q) returned error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePartKind(%q) = %s, want %s", input, got, want)
		}
	}

	if _, err := ParsePartKind("bought"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for unknown kind, got %v", err)
	}
}
