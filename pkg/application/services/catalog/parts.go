package catalog

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/vsinha/catalog/pkg/application/dto"
	"github.com/vsinha/catalog/pkg/domain/entities"
	"github.com/vsinha/catalog/pkg/domain/services"
	"github.com/vsinha/catalog/pkg/infrastructure/events"
	"github.com/vsinha/catalog/pkg/infrastructure/logger"
)

const partEntity = "part"

// CreatePart validates the input, assigns the next part id and stores the
// part. Nothing is stored and no id is consumed when validation fails.
func (s *Service) CreatePart(ctx context.Context, in dto.PartInput) (*entities.Part, error) {
	const op = "catalog.CreatePart"

	part, err := s.buildPart(in, func() entities.PartID { return s.ids.NextPartID() })
	s.metrics.Operation(partEntity, "create", resultOf(err))
	if err != nil {
		logger.Warn(ctx, "part rejected", validationFields(err)...)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.parts.AddPart(part)
	s.refreshGauges()
	logger.Info(ctx, "part created",
		logger.Int("part_id", int(part.ID)),
		logger.String("name", part.Name),
		logger.Stringer("kind", part.Kind()),
	)
	s.publish(ctx, events.PartStream(part.ID), events.PartAddedEvent, events.PartAdded{Part: part})

	return part, nil
}

// ModifyPart replaces the part with the given id by a new record built from
// the input. The id is kept; the variant may change.
//
// Products that reference the old record keep referencing it.
func (s *Service) ModifyPart(ctx context.Context, id entities.PartID, in dto.PartInput) (*entities.Part, error) {
	const op = "catalog.ModifyPart"
	log := logger.With(logger.Int("part_id", int(id)))

	old, ok := s.parts.LookupPart(id)
	if !ok {
		s.metrics.Operation(partEntity, "modify", resultOf(entities.ErrNotFound))
		log.Warn(ctx, "modify of unknown part")
		return nil, fmt.Errorf("%s: part %d: %w", op, id, unknownPart())
	}

	part, err := s.buildPart(in, func() entities.PartID { return id })
	s.metrics.Operation(partEntity, "modify", resultOf(err))
	if err != nil {
		log.Warn(ctx, "part update rejected", validationFields(err)...)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.parts.UpdatePart(id, part)
	log.Info(ctx, "part updated", logger.String("name", part.Name))
	s.publish(ctx, events.PartStream(id), events.PartUpdatedEvent, events.PartUpdated{OldPart: old, NewPart: part})

	return part, nil
}

func (s *Service) buildPart(in dto.PartInput, nextID func() entities.PartID) (*entities.Part, error) {
	f, origin, err := s.validator.ValidatePart(services.RawFields{
		Name:  in.Name,
		Price: in.Price,
		Stock: in.Stock,
		Min:   in.Min,
		Max:   in.Max,
	}, in.Kind, in.Label)
	if err != nil {
		return nil, err
	}
	return entities.NewPart(nextID(), f.Name, f.Price, f.Stock, f.Min, f.Max, origin)
}

// FindPartByID returns the part with the given id
func (s *Service) FindPartByID(ctx context.Context, id entities.PartID) (*entities.Part, bool) {
	part, ok := s.parts.LookupPart(id)
	s.metrics.Lookup(partEntity, lo.Ternary(ok, 1, 0))
	return part, ok
}

// FindPartsByName returns every part whose name contains substring. The
// result is empty, never nil, when nothing matches.
func (s *Service) FindPartsByName(ctx context.Context, substring string) []*entities.Part {
	found := s.parts.LookupPartsByName(substring)
	s.metrics.Lookup(partEntity, len(found))
	return found
}

// LookupParts searches by name first and, when that finds nothing, treats
// the text as a part id
func (s *Service) LookupParts(ctx context.Context, text string) ([]*entities.Part, error) {
	const op = "catalog.LookupParts"

	if found := s.FindPartsByName(ctx, text); len(found) > 0 {
		return found, nil
	}

	id, ok := parseID(text)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, &entities.LookupError{Entity: entities.PartEntity})
	}
	part, ok := s.FindPartByID(ctx, entities.PartID(id))
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, &entities.LookupError{Entity: entities.PartEntity, ByID: true})
	}
	return []*entities.Part{part}, nil
}

// RemovePart deletes the given part reference. Products that still
// reference it are left untouched.
func (s *Service) RemovePart(ctx context.Context, part *entities.Part) bool {
	if part == nil || !s.parts.DeletePart(part) {
		s.metrics.Operation(partEntity, "remove", resultOf(entities.ErrNotFound))
		return false
	}
	s.metrics.Operation(partEntity, "remove", resultOf(nil))
	s.refreshGauges()

	referencedBy := s.referencingProducts(part)
	log := logger.With(logger.Int("part_id", int(part.ID)))
	if len(referencedBy) > 0 {
		log.Warn(ctx, "deleted part is still associated with products",
			logger.Any("product_ids", referencedBy))
	}
	log.Info(ctx, "part deleted")
	s.publish(ctx, events.PartStream(part.ID), events.PartDeletedEvent,
		events.PartDeleted{Part: part, ReferencedBy: referencedBy})

	return true
}

// RemovePartByID looks the part up and deletes it
func (s *Service) RemovePartByID(ctx context.Context, id entities.PartID) error {
	part, ok := s.parts.LookupPart(id)
	if !ok {
		s.metrics.Operation(partEntity, "remove", resultOf(entities.ErrNotFound))
		return fmt.Errorf("catalog.RemovePartByID: part %d: %w", id, unknownPart())
	}
	s.RemovePart(ctx, part)
	return nil
}

func (s *Service) referencingProducts(part *entities.Part) []entities.ProductID {
	return lo.FilterMap(s.products.AllProducts(), func(p *entities.Product, _ int) (entities.ProductID, bool) {
		return p.ID, p.References(part)
	})
}
