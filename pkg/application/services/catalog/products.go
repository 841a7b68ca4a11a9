package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/vsinha/catalog/pkg/application/dto"
	"github.com/vsinha/catalog/pkg/domain/entities"
	"github.com/vsinha/catalog/pkg/domain/services"
	"github.com/vsinha/catalog/pkg/infrastructure/events"
	"github.com/vsinha/catalog/pkg/infrastructure/logger"
)

const productEntity = "product"

// CreateProduct validates the input, assigns the next product id and stores
// the product with the given initial associations
func (s *Service) CreateProduct(ctx context.Context, in dto.ProductInput, associations []*entities.Part) (*entities.Product, error) {
	const op = "catalog.CreateProduct"

	product, err := s.buildProduct(in, associations, func() entities.ProductID { return s.ids.NextProductID() })
	s.metrics.Operation(productEntity, "create", resultOf(err))
	if err != nil {
		logger.Warn(ctx, "product rejected", validationFields(err)...)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.products.AddProduct(product)
	s.refreshGauges()
	logger.Info(ctx, "product created",
		logger.Int("product_id", int(product.ID)),
		logger.String("name", product.Name),
		logger.Int("associations", product.AssociationCount()),
	)
	s.publish(ctx, events.ProductStream(product.ID), events.ProductAddedEvent, events.ProductAdded{Product: product})

	return product, nil
}

// ModifyProduct replaces the product with the given id. The new record
// carries exactly the supplied associations.
func (s *Service) ModifyProduct(ctx context.Context, id entities.ProductID, in dto.ProductInput, associations []*entities.Part) (*entities.Product, error) {
	const op = "catalog.ModifyProduct"
	log := logger.With(logger.Int("product_id", int(id)))

	old, ok := s.products.LookupProduct(id)
	if !ok {
		s.metrics.Operation(productEntity, "modify", resultOf(entities.ErrNotFound))
		log.Warn(ctx, "modify of unknown product")
		return nil, fmt.Errorf("%s: product %d: %w", op, id, unknownProduct())
	}

	product, err := s.buildProduct(in, associations, func() entities.ProductID { return id })
	s.metrics.Operation(productEntity, "modify", resultOf(err))
	if err != nil {
		log.Warn(ctx, "product update rejected", validationFields(err)...)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.products.UpdateProduct(id, product)
	log.Info(ctx, "product updated",
		logger.String("name", product.Name),
		logger.Int("associations", product.AssociationCount()),
	)
	s.publish(ctx, events.ProductStream(id), events.ProductUpdatedEvent,
		events.ProductUpdated{OldProduct: old, NewProduct: product})

	return product, nil
}

func (s *Service) buildProduct(in dto.ProductInput, associations []*entities.Part, nextID func() entities.ProductID) (*entities.Product, error) {
	f, err := s.validator.ValidateFields(services.RawFields{
		Name:  in.Name,
		Price: in.Price,
		Stock: in.Stock,
		Min:   in.Min,
		Max:   in.Max,
	})
	if err != nil {
		return nil, err
	}

	product, err := entities.NewProduct(nextID(), f.Name, f.Price, f.Stock, f.Min, f.Max)
	if err != nil {
		return nil, err
	}
	for _, part := range associations {
		if part != nil {
			product.AddAssociatedPart(part)
		}
	}
	return product, nil
}

// FindProductByID returns the product with the given id
func (s *Service) FindProductByID(ctx context.Context, id entities.ProductID) (*entities.Product, bool) {
	product, ok := s.products.LookupProduct(id)
	s.metrics.Lookup(productEntity, lo.Ternary(ok, 1, 0))
	return product, ok
}

// FindProductsByName returns every product whose name contains substring
func (s *Service) FindProductsByName(ctx context.Context, substring string) []*entities.Product {
	found := s.products.LookupProductsByName(substring)
	s.metrics.Lookup(productEntity, len(found))
	return found
}

// LookupProducts searches by name first and falls back to the text as a
// product id
func (s *Service) LookupProducts(ctx context.Context, text string) ([]*entities.Product, error) {
	const op = "catalog.LookupProducts"

	if found := s.FindProductsByName(ctx, text); len(found) > 0 {
		return found, nil
	}

	id, ok := parseID(text)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, &entities.LookupError{Entity: entities.ProductEntity})
	}
	product, ok := s.FindProductByID(ctx, entities.ProductID(id))
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, &entities.LookupError{Entity: entities.ProductEntity, ByID: true})
	}
	return []*entities.Product{product}, nil
}

// RemoveProduct deletes the product unless it still has associated parts,
// in which case a *entities.ConflictError is returned and the product stays.
func (s *Service) RemoveProduct(ctx context.Context, product *entities.Product) (bool, error) {
	const op = "catalog.RemoveProduct"

	if product == nil {
		s.metrics.Operation(productEntity, "remove", resultOf(entities.ErrNotFound))
		return false, nil
	}
	log := logger.With(logger.Int("product_id", int(product.ID)))

	if product.HasAssociations() {
		err := &entities.ConflictError{ProductID: product.ID, Associations: product.AssociationCount()}
		s.metrics.Operation(productEntity, "remove", resultOf(err))
		log.Warn(ctx, "product deletion refused", logger.Int("associations", err.Associations))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if !s.products.DeleteProduct(product) {
		s.metrics.Operation(productEntity, "remove", resultOf(entities.ErrNotFound))
		return false, nil
	}
	s.metrics.Operation(productEntity, "remove", resultOf(nil))
	s.refreshGauges()
	log.Info(ctx, "product deleted")
	s.publish(ctx, events.ProductStream(product.ID), events.ProductDeletedEvent, events.ProductDeleted{Product: product})

	return true, nil
}

// RemoveProductByID looks the product up and applies RemoveProduct
func (s *Service) RemoveProductByID(ctx context.Context, id entities.ProductID) error {
	product, ok := s.products.LookupProduct(id)
	if !ok {
		s.metrics.Operation(productEntity, "remove", resultOf(entities.ErrNotFound))
		return fmt.Errorf("catalog.RemoveProductByID: product %d: %w", id, unknownProduct())
	}
	_, err := s.RemoveProduct(ctx, product)
	return err
}

// AssociatePart adds the catalog part with partID to the product
func (s *Service) AssociatePart(ctx context.Context, productID entities.ProductID, partID entities.PartID) error {
	const op = "catalog.AssociatePart"

	product, ok := s.products.LookupProduct(productID)
	if !ok {
		return fmt.Errorf("%s: product %d: %w", op, productID, unknownProduct())
	}
	part, ok := s.parts.LookupPart(partID)
	if !ok {
		return fmt.Errorf("%s: part %d: %w", op, partID, unknownPart())
	}

	product.AddAssociatedPart(part)
	s.metrics.Operation(productEntity, "associate", resultOf(nil))
	logger.Info(ctx, "part associated",
		logger.Int("product_id", int(productID)),
		logger.Int("part_id", int(partID)),
	)
	s.publish(ctx, events.ProductStream(productID), events.PartAssociatedEvent,
		events.PartAssociated{ProductID: productID, Part: part})
	return nil
}

// DissociatePart removes the first associated part with partID from the
// product. The part is matched within the product's own list, so references
// to parts already deleted from the catalog can still be removed.
func (s *Service) DissociatePart(ctx context.Context, productID entities.ProductID, partID entities.PartID) (bool, error) {
	const op = "catalog.DissociatePart"

	product, ok := s.products.LookupProduct(productID)
	if !ok {
		return false, fmt.Errorf("%s: product %d: %w", op, productID, unknownProduct())
	}

	part, ok := lo.Find(product.AssociatedParts(), func(p *entities.Part) bool { return p.ID == partID })
	if !ok {
		s.metrics.Operation(productEntity, "dissociate", resultOf(entities.ErrNotFound))
		return false, nil
	}

	removed := product.DeleteAssociatedPart(part)
	s.metrics.Operation(productEntity, "dissociate", resultOf(nil))
	logger.Info(ctx, "part dissociated",
		logger.Int("product_id", int(productID)),
		logger.Int("part_id", int(partID)),
	)
	s.publish(ctx, events.ProductStream(productID), events.PartDissociatedEvent,
		events.PartDissociated{ProductID: productID, Part: part})
	return removed, nil
}

// parseID parses lookup text as a 32-bit decimal id
func parseID(text string) (int, bool) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
