package facts

import (
	"context"
	"fmt"
	"strings"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/pkg/logger"
	"kisaan-academy-be/internal/repository/specification"
	"kisaan-academy-be/internal/repository/unitofwork"
	"kisaan-academy-be/pkg/assistant/intent"
)

// PestProvider answers pest and disease questions from stored records.
// There is no live pest feed, so the chain is store then empty; an empty
// block lets the composer keep degrading.
type PestProvider struct {
	repos unitofwork.RepositoryFactory
	log   logger.ILogger
}

func NewPestProvider(repos unitofwork.RepositoryFactory, log logger.ILogger) *PestProvider {
	return &PestProvider{
		repos: repos,
		log:   log,
	}
}

// lookup resolves pest rows by priority: named pest, then crop named in
// the question, then most recent records.
func (p *PestProvider) lookup(ctx context.Context, q Query, limit int) []*entity.PestAlert {
	repo := p.repos.NewUnitOfWork(ctx).PestAlertRepository()
	order := specification.OrderBy{Field: "created_at", Desc: true}
	page := specification.Pagination{Limit: limit}

	var rows []*entity.PestAlert
	var err error
	if q.Entity != "" {
		rows, err = repo.FindAll(ctx, specification.PestNameLike{Name: q.Entity}, order, specification.Pagination{Limit: 1})
	} else if crop := intent.DetectCrop(q.Question); crop != "" {
		rows, err = repo.FindAll(ctx, specification.CropAffectedLike{Crop: intent.UrduPestCropName(crop)}, order, page)
	} else {
		rows, err = repo.FindAll(ctx, order, page)
	}

	if err != nil {
		p.log.Warn("PestProvider", "pest lookup failed", map[string]interface{}{
			"pest":  q.Entity,
			"error": err.Error(),
		})
		return nil
	}
	return rows
}

func (p *PestProvider) ContextBlock(ctx context.Context, q Query) Block {
	block := Block{Domain: intent.KindPest, Language: q.Language}

	rows := p.lookup(ctx, q, 3)
	if len(rows) == 0 {
		return block
	}

	var b strings.Builder
	if q.Language == constant.LanguageUrdu {
		b.WriteString("[کیڑوں کی تفصیلات]\n\n")
		for _, pest := range rows {
			fmt.Fprintf(&b, "**%s** (%s)\n", pest.PestNameUr, pest.CropAffected)
			fmt.Fprintf(&b, "خطہ: %s\n", pest.Region)
			fmt.Fprintf(&b, "شدت: %s\n", pest.Severity)
			if pest.SymptomsUr != "" {
				fmt.Fprintf(&b, "علامات: %s\n", pest.SymptomsUr)
			}
			if pest.PreventionUr != "" {
				fmt.Fprintf(&b, "بچاؤ: %s\n", pest.PreventionUr)
			}
			if pest.TreatmentUr != "" {
				fmt.Fprintf(&b, "علاج: %s\n", pest.TreatmentUr)
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("[Pest Information]\n\n")
		for _, pest := range rows {
			fmt.Fprintf(&b, "**%s** (%s)\n", pest.PestNameEn, pest.CropAffected)
			fmt.Fprintf(&b, "Region: %s\n", pest.Region)
			fmt.Fprintf(&b, "Severity: %s\n", pest.Severity)
			if pest.SymptomsEn != "" {
				fmt.Fprintf(&b, "Symptoms: %s\n", pest.SymptomsEn)
			}
			if pest.PreventionEn != "" {
				fmt.Fprintf(&b, "Prevention: %s\n", pest.PreventionEn)
			}
			if pest.TreatmentEn != "" {
				fmt.Fprintf(&b, "Treatment: %s\n", pest.TreatmentEn)
			}
			b.WriteString("\n")
		}
	}

	block.Text = b.String()
	return block
}

func (p *PestProvider) FallbackAnswer(ctx context.Context, q Query) Block {
	block := Block{Domain: intent.KindPest, Language: q.Language}

	rows := p.lookup(ctx, q, 1)
	if len(rows) == 0 {
		return block
	}
	pest := rows[0]

	var b strings.Builder
	if q.Language == constant.LanguageUrdu {
		fmt.Fprintf(&b, "**%s**\n", pest.PestNameUr)
		fmt.Fprintf(&b, "فصل: %s\n", pest.CropAffected)
		fmt.Fprintf(&b, "خطہ: %s\n", pest.Region)
		fmt.Fprintf(&b, "شدت: %s\n\n", pest.Severity)
		if pest.SymptomsUr != "" {
			fmt.Fprintf(&b, "**علامات:**\n%s\n\n", pest.SymptomsUr)
		}
		if pest.PreventionUr != "" {
			fmt.Fprintf(&b, "**بچاؤ کے طریقے:**\n%s\n\n", pest.PreventionUr)
		}
		if pest.TreatmentUr != "" {
			fmt.Fprintf(&b, "**علاج:**\n%s", pest.TreatmentUr)
		}
	} else {
		fmt.Fprintf(&b, "**%s**\n", pest.PestNameEn)
		fmt.Fprintf(&b, "Crop: %s\n", pest.CropAffected)
		fmt.Fprintf(&b, "Region: %s\n", pest.Region)
		fmt.Fprintf(&b, "Severity: %s\n\n", pest.Severity)
		if pest.SymptomsEn != "" {
			fmt.Fprintf(&b, "**Symptoms:**\n%s\n\n", pest.SymptomsEn)
		}
		if pest.PreventionEn != "" {
			fmt.Fprintf(&b, "**Prevention:**\n%s\n\n", pest.PreventionEn)
		}
		if pest.TreatmentEn != "" {
			fmt.Fprintf(&b, "**Treatment:**\n%s", pest.TreatmentEn)
		}
	}

	block.Text = strings.TrimRight(b.String(), "\n")
	return block
}
