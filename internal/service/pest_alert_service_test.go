package service

import (
	"context"
	"testing"

	"kisaan-academy-be/internal/entity"

	"github.com/google/uuid"
)

func seededWhitefly() *entity.PestAlert {
	return &entity.PestAlert{
		Id:           uuid.New(),
		Region:       "Sindh",
		PestNameUr:   "سفید مکھی",
		PestNameEn:   "Whitefly",
		CropAffected: "کپاس",
		Severity:     "high",
		SymptomsUr:   "پتوں کا پیلا پن",
		SymptomsEn:   "Yellowing foliage",
		PreventionUr: "پیلے چپکنے والے کارڈ لگائیں۔",
		PreventionEn: "Install yellow sticky traps.",
		TreatmentUr:  "نیم کے تیل کا سپرے کریں۔",
		TreatmentEn:  "Spray neem oil.",
	}
}

func TestPestListPicksLanguageFields(t *testing.T) {
	tests := []struct {
		language       string
		wantName       string
		wantSymptoms   string
		wantPrevention string
		wantTreatment  string
	}{
		{
			language:       "ur",
			wantName:       "سفید مکھی",
			wantSymptoms:   "پتوں کا پیلا پن",
			wantPrevention: "پیلے چپکنے والے کارڈ لگائیں۔",
			wantTreatment:  "نیم کے تیل کا سپرے کریں۔",
		},
		{
			language:       "en",
			wantName:       "Whitefly",
			wantSymptoms:   "Yellowing foliage",
			wantPrevention: "Install yellow sticky traps.",
			wantTreatment:  "Spray neem oil.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			factory, uow := newFakeFactory()
			uow.pestAlerts.rows = []*entity.PestAlert{seededWhitefly()}

			svc := NewPestAlertService(factory)
			res, err := svc.List(context.Background(), "Sindh", "", tt.language)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(res) != 1 {
				t.Fatalf("got %d rows, want 1", len(res))
			}

			row := res[0]
			if row.PestName != tt.wantName {
				t.Errorf("PestName = %q, want %q", row.PestName, tt.wantName)
			}
			if row.Symptoms != tt.wantSymptoms {
				t.Errorf("Symptoms = %q, want %q", row.Symptoms, tt.wantSymptoms)
			}
			if row.Prevention != tt.wantPrevention {
				t.Errorf("Prevention = %q, want %q", row.Prevention, tt.wantPrevention)
			}
			if row.Treatment != tt.wantTreatment {
				t.Errorf("Treatment = %q, want %q", row.Treatment, tt.wantTreatment)
			}
			// Both scripts ride along regardless of the picked language
			if row.PestNameUr != "سفید مکھی" || row.PestNameEn != "Whitefly" {
				t.Errorf("unexpected name columns: %+v", row)
			}
		})
	}
}

func TestPestShowNotFound(t *testing.T) {
	factory, _ := newFakeFactory()

	svc := NewPestAlertService(factory)
	res, err := svc.Show(context.Background(), uuid.New(), "ur")
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	if res != nil {
		t.Errorf("Show = %+v, want nil for missing record", res)
	}
}
