package entities

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Field names the input that failed validation
type Field string

const (
	FieldPrice       Field = "price"
	FieldStock       Field = "stock"
	FieldMin         Field = "min"
	FieldMax         Field = "max"
	FieldName        Field = "name"
	FieldLevels      Field = "levels"
	FieldMachineID   Field = "machine_id"
	FieldCompanyName Field = "company_name"
	FieldKind        Field = "kind"
	FieldRef         Field = "ref"
)

// ValidationError reports malformed or out-of-range input for a single field
type ValidationError struct {
	Field   Field
	Message string
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field Field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is match any ValidationError against ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConflictError reports a product that cannot be removed while it still
// references parts
type ConflictError struct {
	ProductID    ProductID
	Associations int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("product %d has %d associated part(s) and cannot be deleted", e.ProductID, e.Associations)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// LookupError reports a combined name-or-id search that found nothing.
// ByID is set when the text was a valid id but no record carries it.
type LookupError struct {
	Entity EntityKind
	ByID   bool
}

func (e *LookupError) Error() string {
	subject := "Part"
	if e.Entity == ProductEntity {
		subject = "Product"
	}
	if e.ByID {
		return subject + " ID not found."
	}
	return subject + " name not found."
}

func (e *LookupError) Is(target error) bool {
	return target == ErrNotFound
}
