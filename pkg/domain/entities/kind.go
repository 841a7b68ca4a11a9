package entities

// EntityKind selects one of the two catalog collections
type EntityKind int

const (
	PartEntity EntityKind = iota
	ProductEntity
)

// String method for EntityKind enum
func (k EntityKind) String() string {
	switch k {
	case PartEntity:
		return "part"
	case ProductEntity:
		return "product"
	default:
		return "unknown"
	}
}
