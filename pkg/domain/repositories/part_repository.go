package repositories

import "github.com/vsinha/catalog/pkg/domain/entities"

// PartRepository provides access to the part collection.
// Entries keep insertion order; lookups scan linearly.
type PartRepository interface {
	AddPart(part *entities.Part)
	LookupPart(id entities.PartID) (*entities.Part, bool)
	LookupPartsByName(substring string) []*entities.Part
	// UpdatePart replaces the entry with the given id in place. An unknown
	// id is a silent no-op; the result only reports whether a swap happened.
	UpdatePart(id entities.PartID, part *entities.Part) bool
	DeletePart(part *entities.Part) bool
	AllParts() []*entities.Part
	CountParts() int
}
