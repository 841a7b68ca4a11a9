package testing

import (
	"github.com/vsinha/catalog/pkg/application/dto"
	"github.com/vsinha/catalog/pkg/domain/entities"
)

// WorkshopPartCount is the number of parts BuildWorkshopScenario seeds
const WorkshopPartCount = 5

// WorkshopProductCount is the number of products BuildWorkshopScenario seeds
const WorkshopProductCount = 3

// BuildWorkshopScenario returns a bicycle workshop catalog: five parts of
// both kinds and three products, one of which uses a part twice. Parts are
// keyed by name-like refs.
func BuildWorkshopScenario() ([]dto.PartSeed, []dto.ProductSeed) {
	parts := []dto.PartSeed{
		{Ref: "frame", Part: dto.PartInput{Kind: entities.KindInHouse, Name: "frame", Price: "149.00", Stock: "12", Min: "2", Max: "40", Label: "1"}},
		{Ref: "fork", Part: dto.PartInput{Kind: entities.KindInHouse, Name: "fork", Price: "59.50", Stock: "8", Min: "2", Max: "30", Label: "2"}},
		{Ref: "wheel", Part: dto.PartInput{Kind: entities.KindOutsourced, Name: "wheel", Price: "35.25", Stock: "40", Min: "8", Max: "120", Label: "Rim & Spoke Ltd"}},
		{Ref: "chain", Part: dto.PartInput{Kind: entities.KindOutsourced, Name: "chain", Price: "12.99", Stock: "25", Min: "5", Max: "100", Label: "Link Works"}},
		{Ref: "pad", Part: dto.PartInput{Kind: entities.KindOutsourced, Name: "brake pad", Price: "4.75", Stock: "60", Min: "10", Max: "200", Label: "StopCo"}},
	}

	products := []dto.ProductSeed{
		{
			Product: dto.ProductInput{Name: "road bike", Price: "899.99", Stock: "4", Min: "1", Max: "10"},
			Parts:   []string{"frame", "fork", "wheel", "wheel", "chain"},
		},
		{
			Product: dto.ProductInput{Name: "repair kit", Price: "24.99", Stock: "15", Min: "5", Max: "50"},
			Parts:   []string{"chain", "pad"},
		},
		{
			Product: dto.ProductInput{Name: "gift card", Price: "50", Stock: "100", Min: "0", Max: "500"},
		},
	}

	return parts, products
}
