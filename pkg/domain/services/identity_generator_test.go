package services

import (
	"testing"

	"github.com/vsinha/catalog/pkg/domain/entities"
)

func TestIdentityGenerator_PartIDsStartAtOneAndIncrease(t *testing.T) {
	gen := NewIdentityGenerator()

	var last entities.PartID
	for i := 1; i <= 10; i++ {
		id := gen.NextPartID()
		if int(id) != i {
			t.Fatalf("Expected part id %d, got %d", i, id)
		}
		if id <= last {
			t.Fatalf("Expected strictly increasing ids, got %d after %d", id, last)
		}
		last = id
	}
}

func TestIdentityGenerator_CountersAreIndependent(t *testing.T) {
	gen := NewIdentityGenerator()

	gen.NextPartID()
	gen.NextPartID()
	if id := gen.NextProductID(); id != 1 {
		t.Errorf("Expected first product id 1, got %d", id)
	}
	if id := gen.NextPartID(); id != 3 {
		t.Errorf("Expected third part id 3, got %d", id)
	}
	if id := gen.NextProductID(); id != 2 {
		t.Errorf("Expected second product id 2, got %d", id)
	}
}

func TestIdentityGenerator_InstancesDoNotShareState(t *testing.T) {
	a := NewIdentityGenerator()
	b := NewIdentityGenerator()

	a.NextPartID()
	a.NextPartID()

	if id := b.NextPartID(); id != 1 {
		t.Errorf("Expected a fresh generator to start at 1, got %d", id)
	}
}
