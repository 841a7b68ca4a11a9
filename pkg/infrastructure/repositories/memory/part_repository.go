package memory

import (
	"github.com/vsinha/catalog/pkg/domain/entities"
	"github.com/vsinha/catalog/pkg/domain/repositories"
)

// PartRepository provides in-memory part storage
type PartRepository struct {
	store *orderedStore[entities.PartID, entities.Part]
}

// NewPartRepository creates a new in-memory part repository
func NewPartRepository(expectedParts int) *PartRepository {
	return &PartRepository{
		store: newOrderedStore(expectedParts,
			func(p *entities.Part) entities.PartID { return p.ID },
			func(p *entities.Part) string { return p.Name },
		),
	}
}

// Verify interface compliance
var _ repositories.PartRepository = (*PartRepository)(nil)

// AddPart appends a part to the repository
func (r *PartRepository) AddPart(part *entities.Part) {
	r.store.add(part)
}

// LookupPart returns the first part with the given id
func (r *PartRepository) LookupPart(id entities.PartID) (*entities.Part, bool) {
	return r.store.lookup(id)
}

// LookupPartsByName returns every part whose name contains substring
func (r *PartRepository) LookupPartsByName(substring string) []*entities.Part {
	return r.store.lookupByName(substring)
}

// UpdatePart replaces the part with the given id at the same position
func (r *PartRepository) UpdatePart(id entities.PartID, part *entities.Part) bool {
	return r.store.replace(id, part)
}

// DeletePart removes the given part reference
func (r *PartRepository) DeletePart(part *entities.Part) bool {
	return r.store.remove(part)
}

// AllParts returns a snapshot of all parts in insertion order
func (r *PartRepository) AllParts() []*entities.Part {
	return r.store.snapshot()
}

// CountParts returns the number of stored parts
func (r *PartRepository) CountParts() int {
	return r.store.len()
}
