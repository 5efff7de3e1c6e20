package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"
	mock_interfaces "home_estimate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const (
	baseCabinet = entities.ServiceID("kitchen-cabinets-1")
	hardware    = entities.ServiceID("kitchen-cabinets-3")
)

func TestPricingUseCase_Recalculate_LocationGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := newMemSessions()
	gateway := mock_interfaces.NewMockIPricingGateway(ctrl)
	uc := NewPricingUseCase(repo, catalog.Default(), gateway, 2)

	id := seedSession(t, repo, baseCabinet)
	repo.edit(t, id, func(s *entities.Session) { s.Location.PostalCode = "9720A" })

	s, err := uc.Recalculate(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Warnings[entities.WarningLocation] == "" {
		t.Fatalf("expected location warning")
	}
	if _, ok := s.Calculations[baseCabinet]; ok {
		t.Fatalf("no calculation expected without a supported location")
	}
}

func TestPricingUseCase_Recalculate_ResolvesBeforePricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := newMemSessions()
	gateway := mock_interfaces.NewMockIPricingGateway(ctrl)
	uc := NewPricingUseCase(repo, catalog.Default(), gateway, 2)

	id := seedSession(t, repo, hardware)

	gomock.InOrder(
		gateway.EXPECT().ResolveFinishingMaterials(gomock.Any(), hardware).Return(hardwareGroups(), nil),
		gateway.EXPECT().Calculate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.PricingRequest) (entities.CalculationResult, error) {
				if req.ServiceID != hardware || req.ZipCode != "97201" || req.UnitOfMeasurement != "each" || req.Quantity != 1 {
					t.Fatalf("unexpected request: %+v", req)
				}
				if !reflect.DeepEqual(req.FinishingMaterials, []string{"h-brass", "g-soft"}) {
					t.Fatalf("expected default picks, got %v", req.FinishingMaterials)
				}
				return *priced(8, 9, entities.MaterialLine{Name: "Brass handle", ExternalID: "h-brass", UnitCost: 6, Quantity: 1, LineCost: 6}), nil
			},
		),
	)

	s, err := uc.Recalculate(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry := s.Calculations[hardware]
	if entry.Fetched == nil || entry.Fetched.Total() != 17 {
		t.Fatalf("expected fetched result, got %+v", entry)
	}
	if entry.Token == "" || entry.PricedAt.IsZero() {
		t.Fatalf("expected token and priced_at to be set: %+v", entry)
	}
	if got := s.Finishing[hardware].Current(); !reflect.DeepEqual(got, []string{"h-brass", "g-soft"}) {
		t.Fatalf("expected finishing defaults to be stored, got %v", got)
	}
	if len(s.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", s.Warnings)
	}
}

func TestPricingUseCase_Recalculate_FailureKeepsPreviousResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := newMemSessions()
	gateway := mock_interfaces.NewMockIPricingGateway(ctrl)
	uc := NewPricingUseCase(repo, catalog.Default(), gateway, 2)

	id := seedSession(t, repo, baseCabinet)
	repo.edit(t, id, func(s *entities.Session) {
		s.Calculations[baseCabinet] = entities.CalculationEntry{Fetched: priced(100, 50)}
	})

	gateway.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(entities.CalculationResult{}, errors.New("503"))

	s, err := uc.Recalculate(context.Background(), id, baseCabinet)
	if err != nil {
		t.Fatalf("remote failures must not surface as errors: %v", err)
	}
	if got := s.Calculations[baseCabinet].Fetched; got == nil || got.LaborCost != 100 || got.MaterialCost != 50 {
		t.Fatalf("expected previous result to be kept, got %+v", got)
	}
	if w := s.Warnings[entities.WarningPricing]; !strings.Contains(w, "Install base cabinet") {
		t.Fatalf("expected pricing warning naming the service, got %q", w)
	}

	// the next success clears the warning
	gateway.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(*priced(110, 50), nil)
	s, err = uc.Recalculate(context.Background(), id, baseCabinet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Warnings[entities.WarningPricing]; ok {
		t.Fatalf("expected pricing warning to be cleared")
	}
	if s.Calculations[baseCabinet].Fetched.LaborCost != 110 {
		t.Fatalf("expected new result to be applied")
	}
}

func TestPricingUseCase_Recalculate_DiscardsStaleResults(t *testing.T) {
	t.Run("service deselected while in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newMemSessions()
		gateway := mock_interfaces.NewMockIPricingGateway(ctrl)
		uc := NewPricingUseCase(repo, catalog.Default(), gateway, 1)
		id := seedSession(t, repo, baseCabinet)

		gateway.EXPECT().Calculate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.PricingRequest) (entities.CalculationResult, error) {
				repo.edit(t, id, func(s *entities.Session) { s.Remove(baseCabinet) })
				return *priced(100, 50), nil
			},
		)

		s, err := uc.Recalculate(context.Background(), id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := s.Calculations[baseCabinet]; ok {
			t.Fatalf("stale result must not be reinserted")
		}
		if s.IsSelected(baseCabinet) {
			t.Fatalf("service must stay deselected")
		}
	})

	t.Run("superseded by a newer request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newMemSessions()
		gateway := mock_interfaces.NewMockIPricingGateway(ctrl)
		uc := NewPricingUseCase(repo, catalog.Default(), gateway, 1)
		id := seedSession(t, repo, baseCabinet)

		gateway.EXPECT().Calculate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.PricingRequest) (entities.CalculationResult, error) {
				repo.edit(t, id, func(s *entities.Session) {
					s.Calculations[baseCabinet] = entities.CalculationEntry{Fetched: priced(200, 0), Token: "newer"}
				})
				return *priced(100, 50), nil
			},
		)

		s, err := uc.Recalculate(context.Background(), id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entry := s.Calculations[baseCabinet]
		if entry.Token != "newer" || entry.Fetched.LaborCost != 200 {
			t.Fatalf("expected newer result to win, got %+v", entry)
		}
	})
}

func TestPricingUseCase_Recalculate_ResolveFailureSkipsPricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := newMemSessions()
	gateway := mock_interfaces.NewMockIPricingGateway(ctrl)
	uc := NewPricingUseCase(repo, catalog.Default(), gateway, 1)
	id := seedSession(t, repo, hardware)

	gateway.EXPECT().ResolveFinishingMaterials(gomock.Any(), hardware).Return(nil, errors.New("timeout"))

	s, err := uc.Recalculate(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Finishing[hardware]; ok {
		t.Fatalf("finishing selection must not be stored on failure")
	}
	if s.Warnings[entities.WarningPricing] == "" {
		t.Fatalf("expected pricing warning")
	}
}

func TestPricingUseCase_RemoveFinishingMaterials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := newMemSessions()
	gateway := mock_interfaces.NewMockIPricingGateway(ctrl)
	uc := NewPricingUseCase(repo, catalog.Default(), gateway, 1)
	id := seedSession(t, repo, baseCabinet)
	ctx := context.Background()

	if _, err := uc.RemoveFinishingMaterials(ctx, id, baseCabinet); !errors.Is(err, ErrServiceNotPriced) {
		t.Fatalf("expected ErrServiceNotPriced, got %v", err)
	}
	if _, err := uc.RemoveFinishingMaterials(ctx, id, hardware); !errors.Is(err, ErrServiceNotSelected) {
		t.Fatalf("expected ErrServiceNotSelected, got %v", err)
	}

	repo.edit(t, id, func(s *entities.Session) {
		s.Calculations[baseCabinet] = entities.CalculationEntry{Fetched: priced(100, 50)}
	})

	var results []entities.CalculationResult
	for i := 0; i < 2; i++ {
		s, err := uc.RemoveFinishingMaterials(ctx, id, baseCabinet)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		results = append(results, s.EffectiveResults()[baseCabinet])
	}
	if !reflect.DeepEqual(results[0], results[1]) {
		t.Fatalf("removal must be idempotent: %+v vs %+v", results[0], results[1])
	}
	if results[0].MaterialCost != 0 || results[0].Total() != 100 || len(results[0].MaterialLines) != 0 {
		t.Fatalf("unexpected effective result: %+v", results[0])
	}

	// a fresh price keeps the override
	gateway.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(*priced(120, 60), nil)
	s, err := uc.Recalculate(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r := s.EffectiveResults()[baseCabinet]; r.Total() != 120 {
		t.Fatalf("expected override to survive recalculation, got %+v", r)
	}
	if s.Calculations[baseCabinet].Fetched.MaterialCost != 60 {
		t.Fatalf("fetched result must stay untouched")
	}

	s, err = uc.RestoreFinishingMaterials(ctx, id, baseCabinet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r := s.EffectiveResults()[baseCabinet]; r.Total() != 180 {
		t.Fatalf("expected restored materials, got %+v", r)
	}
}

func TestPricingUseCase_Recalculate_FansOutAllSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := newMemSessions()
	gateway := mock_interfaces.NewMockIPricingGateway(ctrl)
	uc := NewPricingUseCase(repo, catalog.Default(), gateway, 3)

	ids := []entities.ServiceID{"kitchen-cabinets-1", "kitchen-cabinets-2", "bathroom-fixtures-3", "electrical-lighting-2"}
	id := seedSession(t, repo, ids...)

	gateway.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(*priced(10, 5), nil).Times(len(ids))

	s, err := uc.Recalculate(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(s.EffectiveResults()); got != len(ids) {
		t.Fatalf("expected %d results, got %d", len(ids), got)
	}
}
