package service

import (
	"context"
	"testing"
	"time"

	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/repository/specification"
	"kisaan-academy-be/pkg/commodity"

	"github.com/google/uuid"
)

func priceRow(price float64, daysAgo int) *entity.MarketPrice {
	return &entity.MarketPrice{
		Id:         uuid.New(),
		CropName:   "گندم",
		Region:     "Punjab",
		PricePerKg: price,
		MandiName:  "Lahore Mandi",
		RecordedAt: time.Now().AddDate(0, 0, -daysAgo),
	}
}

func TestForecastInsufficientData(t *testing.T) {
	factory, uow := newFakeFactory()
	uow.marketPrices.rows = []*entity.MarketPrice{priceRow(4500, 0)}

	svc := NewMarketService(factory, nil, nopLogger{})
	res, err := svc.Forecast(context.Background(), "گندم", "")
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}

	if res.Forecast != "Insufficient data" {
		t.Errorf("Forecast = %v, want Insufficient data", res.Forecast)
	}
	if res.Trend != "neutral" {
		t.Errorf("Trend = %q, want neutral", res.Trend)
	}
	if res.CurrentPrice != nil {
		t.Error("CurrentPrice should be unset for insufficient data")
	}
}

func TestForecastTrends(t *testing.T) {
	tests := []struct {
		name         string
		prices       []float64 // newest first
		wantTrend    string
		wantForecast float64
	}{
		{
			name:         "increasing",
			prices:       []float64{100, 100, 90, 90},
			wantTrend:    "increasing",
			wantForecast: 105,
		},
		{
			name:         "decreasing",
			prices:       []float64{90, 90, 100, 100},
			wantTrend:    "decreasing",
			wantForecast: 85.5,
		},
		{
			name:         "stable",
			prices:       []float64{100, 100, 100, 100},
			wantTrend:    "stable",
			wantForecast: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, uow := newFakeFactory()
			rows := make([]*entity.MarketPrice, 0, len(tt.prices))
			for i, price := range tt.prices {
				rows = append(rows, priceRow(price, i))
			}
			uow.marketPrices.rows = rows

			svc := NewMarketService(factory, nil, nopLogger{})
			res, err := svc.Forecast(context.Background(), "گندم", "Punjab")
			if err != nil {
				t.Fatalf("Forecast: %v", err)
			}

			if res.Trend != tt.wantTrend {
				t.Errorf("Trend = %q, want %q", res.Trend, tt.wantTrend)
			}
			forecast, ok := res.Forecast.(float64)
			if !ok {
				t.Fatalf("Forecast is %T, want float64", res.Forecast)
			}
			if forecast != tt.wantForecast {
				t.Errorf("Forecast = %v, want %v", forecast, tt.wantForecast)
			}
			if res.CurrentPrice == nil || *res.CurrentPrice != tt.prices[0] {
				t.Errorf("CurrentPrice = %v, want %v", res.CurrentPrice, tt.prices[0])
			}
			if res.Region != "Punjab" {
				t.Errorf("Region = %q", res.Region)
			}
			if res.Confidence != "medium" {
				t.Errorf("Confidence = %q, want medium", res.Confidence)
			}
		})
	}
}

func TestForecastRegionDefaultsToAll(t *testing.T) {
	factory, uow := newFakeFactory()
	uow.marketPrices.rows = []*entity.MarketPrice{priceRow(100, 0), priceRow(90, 1)}

	svc := NewMarketService(factory, nil, nopLogger{})
	res, err := svc.Forecast(context.Background(), "گندم", "")
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if res.Region != "All" {
		t.Errorf("Region = %q, want All", res.Region)
	}
}

type stubQuoteFetcher struct {
	quotes []*commodity.Quote
}

func (s *stubQuoteFetcher) FetchAll(context.Context) ([]*commodity.Quote, error) {
	return s.quotes, nil
}

// dedupPriceCount answers refresh dedup lookups from the rows the fake
// has stored, honoring the crop_name, region and cutoff in the specs.
func dedupPriceCount(repo *fakeMarketPriceRepo) func(specs []specification.Specification) int64 {
	return func(specs []specification.Specification) int64 {
		var cropName, region string
		var cutoff time.Time
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.FilterBy:
				if s.Field == "crop_name" {
					cropName = s.Value.(string)
				}
				if s.Field == "region" {
					region = s.Value.(string)
				}
			case specification.RecordedSince:
				cutoff = s.Cutoff
			}
		}
		var n int64
		for _, row := range repo.created {
			if row.CropName == cropName && row.Region == region && row.RecordedAt.After(cutoff) {
				n++
			}
		}
		return n
	}
}

func TestUpdatePricesDeduplicatesWithinWindow(t *testing.T) {
	factory, uow := newFakeFactory()
	uow.marketPrices.countFn = dedupPriceCount(uow.marketPrices)

	fetcher := &stubQuoteFetcher{quotes: []*commodity.Quote{
		{Slug: "wheat", Name: "Wheat", Price: 255.5},
	}}
	svc := NewMarketService(factory, fetcher, nopLogger{})

	res, err := svc.UpdatePrices(context.Background())
	if err != nil {
		t.Fatalf("first UpdatePrices: %v", err)
	}
	if res.Count != 1 {
		t.Errorf("Count = %d, want 1", res.Count)
	}
	if len(uow.marketPrices.created) != 1 {
		t.Fatalf("got %d stored rows after first update, want 1", len(uow.marketPrices.created))
	}
	// The stored row carries the localized crop name
	if uow.marketPrices.created[0].CropName != "گندم" {
		t.Errorf("CropName = %q, want گندم", uow.marketPrices.created[0].CropName)
	}

	// Same crop again inside the day: no second row
	if _, err := svc.UpdatePrices(context.Background()); err != nil {
		t.Fatalf("second UpdatePrices: %v", err)
	}
	if len(uow.marketPrices.created) != 1 {
		t.Errorf("got %d stored rows after duplicate update, want 1", len(uow.marketPrices.created))
	}

	// Once the stored row ages out of the window, the quote stores again
	uow.marketPrices.created[0].RecordedAt = time.Now().Add(-25 * time.Hour)
	if _, err := svc.UpdatePrices(context.Background()); err != nil {
		t.Fatalf("third UpdatePrices: %v", err)
	}
	if len(uow.marketPrices.created) != 2 {
		t.Errorf("got %d stored rows after window elapsed, want 2", len(uow.marketPrices.created))
	}
}

func TestListMapsRows(t *testing.T) {
	factory, uow := newFakeFactory()
	uow.marketPrices.rows = []*entity.MarketPrice{priceRow(4500, 0), priceRow(4400, 1)}

	svc := NewMarketService(factory, nil, nopLogger{})
	res, err := svc.List(context.Background(), "", "", false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(res) != 2 {
		t.Fatalf("got %d rows, want 2", len(res))
	}
	if res[0].CropName != "گندم" || res[0].PricePerKg != 4500 {
		t.Errorf("unexpected first row: %+v", res[0])
	}
}
