package catalog

import (
	"context"
	"errors"

	"github.com/vsinha/catalog/pkg/domain/entities"
	"github.com/vsinha/catalog/pkg/domain/repositories"
	"github.com/vsinha/catalog/pkg/domain/services"
	"github.com/vsinha/catalog/pkg/infrastructure/events"
	"github.com/vsinha/catalog/pkg/infrastructure/logger"
	"github.com/vsinha/catalog/pkg/infrastructure/metrics"
)

// Recorder receives operation metrics
type Recorder interface {
	Operation(entity, operation, result string)
	Entities(entity string, count int)
	Lookup(entity string, results int)
}

// Service is the call surface presentation uses: it validates raw input,
// builds entities, assigns ids and stores the result. It assumes a single
// writer; the repositories guard their own slices.
type Service struct {
	parts     repositories.PartRepository
	products  repositories.ProductRepository
	ids       *services.IdentityGenerator
	validator *services.InputValidator
	events    events.Store
	metrics   Recorder
}

// Option configures a Service
type Option func(*Service)

// WithEventStore publishes catalog changes to the given store
func WithEventStore(store events.Store) Option {
	return func(s *Service) { s.events = store }
}

// WithRecorder records operation metrics
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.metrics = r }
}

// WithIdentityGenerator shares an existing generator
func WithIdentityGenerator(g *services.IdentityGenerator) Option {
	return func(s *Service) { s.ids = g }
}

// NewService creates a catalog service over the given repositories. Each
// service owns its identity generator unless one is supplied.
func NewService(parts repositories.PartRepository, products repositories.ProductRepository, opts ...Option) *Service {
	s := &Service{
		parts:     parts,
		products:  products,
		ids:       services.NewIdentityGenerator(),
		validator: services.NewInputValidator(),
		events:    events.NewInMemoryEventStore(),
		metrics:   metrics.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parts returns a snapshot of every part in insertion order
func (s *Service) Parts() []*entities.Part {
	return s.parts.AllParts()
}

// Products returns a snapshot of every product in insertion order
func (s *Service) Products() []*entities.Product {
	return s.products.AllProducts()
}

// Subscribe registers a handler for catalog changes.
// Use events.AllEventTypes to receive everything.
func (s *Service) Subscribe(changeTypes []string, handler events.Handler) error {
	return s.events.Subscribe(changeTypes, handler)
}

// Events returns the catalog change log after the given position
func (s *Service) Events(fromPosition int) ([]events.Change, error) {
	return s.events.Since(fromPosition)
}

// EventCount returns how many changes have been recorded
func (s *Service) EventCount() int {
	return s.events.Position()
}

// PartHistory returns every change recorded for the part id, including
// changes made before the part was deleted
func (s *Service) PartHistory(id entities.PartID) ([]events.Change, error) {
	return s.events.Stream(events.PartStream(id), 1)
}

// ProductHistory returns every change recorded for the product id
func (s *Service) ProductHistory(id entities.ProductID) ([]events.Change, error) {
	return s.events.Stream(events.ProductStream(id), 1)
}

func (s *Service) publish(ctx context.Context, stream, changeType string, payload any) {
	if _, err := s.events.Append(stream, changeType, payload); err != nil {
		logger.Warn(ctx, "catalog event handler failed",
			logger.String("event", changeType),
			logger.ErrorF(err),
		)
	}
}

func (s *Service) refreshGauges() {
	s.metrics.Entities(entities.PartEntity.String(), s.parts.CountParts())
	s.metrics.Entities(entities.ProductEntity.String(), s.products.CountProducts())
}

func unknownPart() error {
	return &entities.LookupError{Entity: entities.PartEntity, ByID: true}
}

func unknownProduct() error {
	return &entities.LookupError{Entity: entities.ProductEntity, ByID: true}
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, entities.ErrValidation):
		return metrics.ResultInvalid
	case errors.Is(err, entities.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, entities.ErrConflict):
		return metrics.ResultConflict
	default:
		return "error"
	}
}

func validationFields(err error) []logger.Field {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return []logger.Field{logger.String("field", string(verr.Field)), logger.String("reason", verr.Message)}
	}
	return []logger.Field{logger.ErrorF(err)}
}
