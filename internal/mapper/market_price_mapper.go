package mapper

import (
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/model"
)

type MarketPriceMapper struct{}

func NewMarketPriceMapper() *MarketPriceMapper {
	return &MarketPriceMapper{}
}

func (m *MarketPriceMapper) ToEntity(p *model.MarketPrice) *entity.MarketPrice {
	if p == nil {
		return nil
	}

	return &entity.MarketPrice{
		Id:         p.Id,
		CropName:   p.CropName,
		Region:     p.Region,
		PricePerKg: p.PricePerKg,
		MandiName:  p.MandiName,
		RecordedAt: p.RecordedAt,
	}
}

func (m *MarketPriceMapper) ToModel(p *entity.MarketPrice) *model.MarketPrice {
	if p == nil {
		return nil
	}

	return &model.MarketPrice{
		Id:         p.Id,
		CropName:   p.CropName,
		Region:     p.Region,
		PricePerKg: p.PricePerKg,
		MandiName:  p.MandiName,
		RecordedAt: p.RecordedAt,
	}
}

func (m *MarketPriceMapper) ToEntities(prices []*model.MarketPrice) []*entity.MarketPrice {
	entities := make([]*entity.MarketPrice, len(prices))
	for i, p := range prices {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
