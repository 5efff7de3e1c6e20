package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"
	mock_interfaces "home_estimate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newFinishingFixture(t *testing.T) (*FinishingUseCase, *memSessions, *mock_interfaces.MockIPricingGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := newMemSessions()
	gateway := mock_interfaces.NewMockIPricingGateway(ctrl)
	ix := catalog.Default()
	pricing := NewPricingUseCase(repo, ix, gateway, 2)
	return NewFinishingUseCase(repo, ix, gateway, pricing), repo, gateway
}

func TestFinishingUseCase_EnsureLoaded(t *testing.T) {
	uc, repo, gateway := newFinishingFixture(t)
	ctx := context.Background()
	id := seedSession(t, repo, hardware, baseCabinet)

	gateway.EXPECT().ResolveFinishingMaterials(gomock.Any(), hardware).Return(hardwareGroups(), nil).Times(1)

	fs, err := uc.EnsureLoaded(ctx, id, hardware)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(fs.Current(), []string{"h-brass", "g-soft"}) {
		t.Fatalf("expected first option of every group, got %v", fs.Current())
	}

	// second call is served from the session
	current, err := uc.CurrentSelection(ctx, id, hardware)
	if err != nil || len(current) != 2 {
		t.Fatalf("unexpected current selection err=%v current=%v", err, current)
	}

	// services without finishing materials never reach the gateway
	fs, err = uc.EnsureLoaded(ctx, id, baseCabinet)
	if err != nil || len(fs.Groups) != 0 {
		t.Fatalf("expected empty selection, err=%v fs=%+v", err, fs)
	}

	if _, err := uc.EnsureLoaded(ctx, id, "bathroom-fixtures-1"); !errors.Is(err, ErrServiceNotSelected) {
		t.Fatalf("expected ErrServiceNotSelected, got %v", err)
	}
}

func TestFinishingUseCase_EnsureLoaded_GatewayError(t *testing.T) {
	uc, repo, gateway := newFinishingFixture(t)
	id := seedSession(t, repo, hardware)

	gateway.EXPECT().ResolveFinishingMaterials(gomock.Any(), hardware).Return(nil, errors.New("down"))

	if _, err := uc.EnsureLoaded(context.Background(), id, hardware); !errors.Is(err, ErrFinishingUnavailable) {
		t.Fatalf("expected ErrFinishingUnavailable, got %v", err)
	}
	if _, ok := repo.snapshot(t, id).Finishing[hardware]; ok {
		t.Fatalf("nothing must be stored on failure")
	}
}

func TestFinishingUseCase_Pick(t *testing.T) {
	uc, repo, gateway := newFinishingFixture(t)
	ctx := context.Background()
	id := seedSession(t, repo, hardware)

	gateway.EXPECT().ResolveFinishingMaterials(gomock.Any(), hardware).Return(hardwareGroups(), nil)
	gateway.EXPECT().Calculate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.PricingRequest) (entities.CalculationResult, error) {
			if !reflect.DeepEqual(req.FinishingMaterials, []string{"h-steel", "g-soft"}) {
				t.Fatalf("expected new pick in request, got %v", req.FinishingMaterials)
			}
			return *priced(8, 7), nil
		},
	)

	s, err := uc.Pick(ctx, id, hardware, "h-steel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fs := s.Finishing[hardware]
	if fs.Picks["handles"] != "h-steel" || fs.Picks["hinges"] != "g-soft" {
		t.Fatalf("pick must only replace its own group: %+v", fs.Picks)
	}

	if _, err := uc.Pick(ctx, id, hardware, "nope"); !errors.Is(err, ErrUnknownFinishingMaterial) {
		t.Fatalf("expected ErrUnknownFinishingMaterial, got %v", err)
	}
}

func TestFinishingUseCase_MarkCustomerSupplied(t *testing.T) {
	uc, repo, gateway := newFinishingFixture(t)
	ctx := context.Background()
	id := seedSession(t, repo, hardware)

	gateway.EXPECT().ResolveFinishingMaterials(gomock.Any(), hardware).Return(hardwareGroups(), nil)
	repo.edit(t, id, func(s *entities.Session) {
		s.Calculations[hardware] = entities.CalculationEntry{Fetched: priced(10, 9,
			entities.MaterialLine{Name: "Brass handle", ExternalID: "h-brass", UnitCost: 6, Quantity: 1, LineCost: 6},
			entities.MaterialLine{Name: "Screws", ExternalID: "screws", UnitCost: 3, Quantity: 1, LineCost: 3},
		)}
	})

	s, err := uc.MarkCustomerSupplied(ctx, id, hardware, "h-brass", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := s.EffectiveResults()[hardware]
	if r.MaterialCost != 3 || len(r.MaterialLines) != 2 || !r.MaterialLines[0].CustomerSupplied || r.MaterialLines[0].LineCost != 0 {
		t.Fatalf("customer supplied line must stay listed at zero cost: %+v", r)
	}

	// base materials from the pricing result can be flagged too
	s, err = uc.MarkCustomerSupplied(ctx, id, hardware, "screws", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.EffectiveResults()[hardware].MaterialCost; got != 0 {
		t.Fatalf("expected zero material cost, got %v", got)
	}

	s, err = uc.MarkCustomerSupplied(ctx, id, hardware, "h-brass", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.EffectiveResults()[hardware].MaterialCost; got != 6 {
		t.Fatalf("expected brass cost back, got %v", got)
	}

	if _, err := uc.MarkCustomerSupplied(ctx, id, hardware, "unknown", true); !errors.Is(err, ErrUnknownFinishingMaterial) {
		t.Fatalf("expected ErrUnknownFinishingMaterial, got %v", err)
	}
}
