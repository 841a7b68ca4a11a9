package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/catalog/pkg/domain/entities"
)

func mustPart(t *testing.T, id entities.PartID, name string) *entities.Part {
	t.Helper()
	part, err := entities.NewPart(id, name, decimal.RequireFromString("1.50"), 5, 1, 10, entities.InHouse{MachineID: 7})
	if err != nil {
		t.Fatalf("Failed to create part %s: %v", name, err)
	}
	return part
}

func TestPartRepository_AddAndLookup(t *testing.T) {
	repo := NewPartRepository(10)

	bolt := mustPart(t, 1, "bolt")
	repo.AddPart(bolt)

	retrieved, ok := repo.LookupPart(1)
	if !ok {
		t.Fatal("Expected part 1 to be found")
	}
	if retrieved != bolt {
		t.Errorf("Expected the stored reference back, got %+v", retrieved)
	}

	if _, ok := repo.LookupPart(2); ok {
		t.Error("Expected unknown id to report not found")
	}
}

func addParts(repo *PartRepository, parts []*entities.Part) {
	for _, part := range parts {
		repo.AddPart(part)
	}
}

func TestPartRepository_LookupByName(t *testing.T) {
	repo := NewPartRepository(10)
	addParts(repo, []*entities.Part{
		mustPart(t, 1, "bolt"),
		mustPart(t, 2, "Bolt cutter"),
		mustPart(t, 3, "nail"),
	})

	testCases := []struct {
		substring string
		expected  []entities.PartID
	}{
		{"bolt", []entities.PartID{1}},
		{"Bolt", []entities.PartID{2}},
		{"ol", []entities.PartID{1, 2}},
		{"", []entities.PartID{1, 2, 3}},
		{" bolt", nil},
		{"screw", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.substring, func(t *testing.T) {
			found := repo.LookupPartsByName(tc.substring)
			if found == nil {
				t.Fatal("Expected an empty slice, never nil")
			}
			if len(found) != len(tc.expected) {
				t.Fatalf("Expected %d matches, got %d", len(tc.expected), len(found))
			}
			for i, id := range tc.expected {
				if found[i].ID != id {
					t.Errorf("Expected match %d to be part %d, got %d", i, id, found[i].ID)
				}
			}
		})
	}
}

func TestPartRepository_UpdateKeepsPosition(t *testing.T) {
	repo := NewPartRepository(10)
	addParts(repo, []*entities.Part{
		mustPart(t, 1, "bolt"),
		mustPart(t, 2, "nail"),
		mustPart(t, 3, "screw"),
	})

	replacement := mustPart(t, 2, "rivet")
	if !repo.UpdatePart(2, replacement) {
		t.Fatal("Expected update of existing id to report a replacement")
	}

	all := repo.AllParts()
	if all[1] != replacement {
		t.Errorf("Expected replacement at index 1, got %s", all[1].Name)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 parts after update, got %d", len(all))
	}
}

func TestPartRepository_UpdateUnknownIsNoOp(t *testing.T) {
	repo := NewPartRepository(10)
	bolt := mustPart(t, 1, "bolt")
	repo.AddPart(bolt)

	if repo.UpdatePart(99, mustPart(t, 99, "ghost")) {
		t.Error("Expected update of unknown id to report no replacement")
	}
	if repo.CountParts() != 1 || repo.AllParts()[0] != bolt {
		t.Error("Expected repository to be unchanged")
	}
}

func TestPartRepository_DeleteByReference(t *testing.T) {
	repo := NewPartRepository(10)
	bolt := mustPart(t, 1, "bolt")
	twin := mustPart(t, 1, "bolt")
	repo.AddPart(bolt)

	if repo.DeletePart(twin) {
		t.Error("Expected deletion of an equal but distinct reference to fail")
	}
	if !repo.DeletePart(bolt) {
		t.Error("Expected deletion of stored reference to succeed")
	}
	if repo.DeletePart(bolt) {
		t.Error("Expected second deletion to report false")
	}
	if _, ok := repo.LookupPart(1); ok {
		t.Error("Expected deleted part to be gone")
	}
}

func TestPartRepository_AllPartsIsSnapshot(t *testing.T) {
	repo := NewPartRepository(10)
	repo.AddPart(mustPart(t, 1, "bolt"))

	snapshot := repo.AllParts()
	repo.AddPart(mustPart(t, 2, "nail"))
	snapshot[0] = nil

	if len(snapshot) != 1 {
		t.Errorf("Expected snapshot length to stay 1, got %d", len(snapshot))
	}
	if repo.AllParts()[0] == nil {
		t.Error("Expected writes to the snapshot not to reach the repository")
	}
}
