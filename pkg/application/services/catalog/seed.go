package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vsinha/catalog/pkg/application/dto"
	"github.com/vsinha/catalog/pkg/domain/entities"
	"github.com/vsinha/catalog/pkg/infrastructure/logger"
)

// DefaultParts is the demo data a fresh session starts with
var DefaultParts = []dto.PartInput{
	{Kind: entities.KindInHouse, Name: "bolt", Price: "2.99", Stock: "5", Min: "2", Max: "300", Label: "4"},
	{Kind: entities.KindOutsourced, Name: "nail", Price: "0.75", Stock: "50", Min: "3", Max: "500", Label: "Nail Co"},
}

// DefaultProducts is the demo data a fresh session starts with
var DefaultProducts = []dto.ProductInput{
	{Name: "tool", Price: "99", Stock: "3", Min: "2", Max: "4"},
	{Name: "phone", Price: "99", Stock: "3", Min: "2", Max: "4"},
}

// Seed creates the given parts in order, then the products. Product part
// refs resolve against the refs of this seed's parts only, so duplicate
// names and parts no longer in the catalog survive a reload.
func (s *Service) Seed(ctx context.Context, parts []dto.PartSeed, products []dto.ProductSeed) error {
	const op = "catalog.Seed"

	byRef := make(map[string]*entities.Part, len(parts))
	for i, seed := range parts {
		ref := seed.Ref
		if ref == "" {
			ref = strconv.Itoa(i + 1)
		}
		if _, dup := byRef[ref]; dup {
			return fmt.Errorf("%s: part %d: %w", op, i+1,
				entities.NewValidationError(entities.FieldRef, "duplicate part ref %q", ref))
		}

		var (
			part *entities.Part
			err  error
		)
		if seed.Detached {
			part, err = s.detachedPart(ctx, seed.Part)
		} else {
			part, err = s.CreatePart(ctx, seed.Part)
		}
		if err != nil {
			return fmt.Errorf("%s: part %d (%q): %w", op, i+1, seed.Part.Name, err)
		}
		byRef[ref] = part
	}

	for i, seed := range products {
		associations := make([]*entities.Part, 0, len(seed.Parts))
		for _, ref := range seed.Parts {
			part, ok := byRef[ref]
			if !ok {
				return fmt.Errorf("%s: product %d (%q): part ref %q: %w", op, i+1, seed.Product.Name, ref, entities.ErrNotFound)
			}
			associations = append(associations, part)
		}
		if _, err := s.CreateProduct(ctx, seed.Product, associations); err != nil {
			return fmt.Errorf("%s: product %d (%q): %w", op, i+1, seed.Product.Name, err)
		}
	}

	return nil
}

// SeedDefaults loads the built-in demo catalog
func (s *Service) SeedDefaults(ctx context.Context) error {
	parts := make([]dto.PartSeed, 0, len(DefaultParts))
	for _, p := range DefaultParts {
		parts = append(parts, dto.PartSeed{Part: p})
	}
	products := make([]dto.ProductSeed, 0, len(DefaultProducts))
	for _, p := range DefaultProducts {
		products = append(products, dto.ProductSeed{Product: p})
	}
	return s.Seed(ctx, parts, products)
}

// detachedPart validates and builds a part that products reference after it
// left the catalog. It takes an id like any other part but is not stored.
func (s *Service) detachedPart(ctx context.Context, in dto.PartInput) (*entities.Part, error) {
	part, err := s.buildPart(in, func() entities.PartID { return s.ids.NextPartID() })
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "detached part restored",
		logger.Int("part_id", int(part.ID)),
		logger.String("name", part.Name),
	)
	return part, nil
}
