package facts

import (
	"context"
	"fmt"
	"math"
	"strings"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/pkg/logger"
	"kisaan-academy-be/internal/repository/specification"
	"kisaan-academy-be/internal/repository/unitofwork"
	"kisaan-academy-be/pkg/assistant/intent"
	"kisaan-academy-be/pkg/commodity"
)

// PriceProvider answers market price questions: live commodity API for a
// named crop, then stored prices, then the static unavailable notice.
type PriceProvider struct {
	client *commodity.Client
	repos  unitofwork.RepositoryFactory
	log    logger.ILogger
}

func NewPriceProvider(client *commodity.Client, repos unitofwork.RepositoryFactory, log logger.ILogger) *PriceProvider {
	return &PriceProvider{
		client: client,
		repos:  repos,
		log:    log,
	}
}

// FormatQuote renders a live commodity quote the way the chat surfaces
// prices: two decimals, PKR per kg, optional change line.
func FormatQuote(quote *commodity.Quote, language string) string {
	if quote == nil {
		if language == constant.LanguageUrdu {
			return priceUnavailableUr
		}
		return priceUnavailableEn
	}

	priceStr := fmt.Sprintf("%.2f", quote.Price)

	var b strings.Builder
	if language == constant.LanguageUrdu {
		fmt.Fprintf(&b, "%s کی موجودہ قیمت: %s روپے فی کلوگرام (PKR/kg)", quote.Name, priceStr)
		if quote.Change != nil && *quote.Change != 0 {
			changeType := "کمی"
			if *quote.Change > 0 {
				changeType = "اضافہ"
			}
			fmt.Fprintf(&b, "\n%s: %g روپے", changeType, math.Abs(*quote.Change))
		}
	} else {
		fmt.Fprintf(&b, "Current price of %s: %s PKR per kg", quote.Name, priceStr)
		if quote.Change != nil && *quote.Change != 0 {
			changeType := "decreased"
			if *quote.Change > 0 {
				changeType = "increased"
			}
			fmt.Fprintf(&b, "\n%s: %g PKR", changeType, math.Abs(*quote.Change))
		}
	}
	return b.String()
}

func formatStoredPrice(row *entity.MarketPrice, language string) string {
	priceStr := fmt.Sprintf("%.2f", row.PricePerKg)
	if language == constant.LanguageUrdu {
		return fmt.Sprintf("%s کی موجودہ قیمت: %s روپے فی کلوگرام (PKR/kg) - %s", row.CropName, priceStr, row.Region)
	}
	return fmt.Sprintf("Current price of %s: %s PKR per kg - %s", row.CropName, priceStr, row.Region)
}

func (p *PriceProvider) unavailable(language string) string {
	if language == constant.LanguageUrdu {
		return priceUnavailableUr
	}
	return priceUnavailableEn
}

func (p *PriceProvider) liveQuote(ctx context.Context, crop, language string) string {
	if crop == "" || !p.client.Available() {
		return ""
	}
	quote, err := p.client.Fetch(ctx, crop)
	if err != nil {
		p.log.Warn("PriceProvider", "live commodity fetch failed", map[string]interface{}{
			"crop":  crop,
			"error": err.Error(),
		})
		return ""
	}
	return FormatQuote(quote, language)
}

func (p *PriceProvider) storedSingle(ctx context.Context, crop, language string) string {
	repo := p.repos.NewUnitOfWork(ctx).MarketPriceRepository()
	row, err := repo.FindOne(ctx,
		specification.CropNameLike{Name: intent.UrduCropPriceName(crop)},
		specification.OrderBy{Field: "recorded_at", Desc: true},
	)
	if err != nil {
		p.log.Warn("PriceProvider", "stored price lookup failed", map[string]interface{}{
			"crop":  crop,
			"error": err.Error(),
		})
		return ""
	}
	if row == nil {
		return ""
	}
	return formatStoredPrice(row, language)
}

func (p *PriceProvider) storedRecent(ctx context.Context, limit int, language string, contextStyle bool) string {
	repo := p.repos.NewUnitOfWork(ctx).MarketPriceRepository()
	rows, err := repo.FindAll(ctx,
		specification.OrderBy{Field: "recorded_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		p.log.Warn("PriceProvider", "recent prices lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	if language == constant.LanguageUrdu {
		if contextStyle {
			b.WriteString("[موجودہ مارکیٹ قیمتیں - PKR/kg]\n")
		} else {
			b.WriteString("موجودہ مارکیٹ قیمتیں (PKR/kg):\n")
		}
		for _, row := range rows {
			fmt.Fprintf(&b, "%s: %.2f روپے/کلوگرام (%s)\n", row.CropName, row.PricePerKg, row.Region)
		}
	} else {
		if contextStyle {
			b.WriteString("[Current Market Prices - PKR/kg]\n")
		} else {
			b.WriteString("Current market prices (PKR/kg):\n")
		}
		for _, row := range rows {
			fmt.Fprintf(&b, "%s: %.2f PKR/kg (%s)\n", row.CropName, row.PricePerKg, row.Region)
		}
	}
	return b.String()
}

func (p *PriceProvider) ContextBlock(ctx context.Context, q Query) Block {
	block := Block{Domain: intent.KindPrice, Language: q.Language}

	if q.Entity != "" {
		if text := p.liveQuote(ctx, q.Entity, q.Language); text != "" {
			block.Text = text
			return block
		}
		if text := p.storedSingle(ctx, q.Entity, q.Language); text != "" {
			block.Text = text
			return block
		}
		block.Text = p.unavailable(q.Language)
		return block
	}

	if text := p.storedRecent(ctx, 5, q.Language, true); text != "" {
		block.Text = text
		return block
	}
	block.Text = p.unavailable(q.Language)
	return block
}

func (p *PriceProvider) FallbackAnswer(ctx context.Context, q Query) Block {
	block := Block{Domain: intent.KindPrice, Language: q.Language}

	if q.Entity != "" {
		if text := p.liveQuote(ctx, q.Entity, q.Language); text != "" {
			block.Text = text
			return block
		}
		if text := p.storedSingle(ctx, q.Entity, q.Language); text != "" {
			block.Text = text
			return block
		}
		block.Text = p.unavailable(q.Language)
		return block
	}

	if text := p.storedRecent(ctx, 3, q.Language, false); text != "" {
		block.Text = text
		return block
	}
	block.Text = p.unavailable(q.Language)
	return block
}
