package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateGetSave(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionDynamoRepository(newFakeDynamo("id"), "sessions")

	s := entities.NewSession("sess-1", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	s.Location = entities.Location{Country: "US", State: "OR", City: "Portland", PostalCode: "97201"}
	s.Selection["kitchen-cabinets-1"] = entities.SelectionEntry{ServiceID: "kitchen-cabinets-1", Quantity: 3}
	s.Calculations["kitchen-cabinets-1"] = entities.CalculationEntry{
		Fetched: &entities.CalculationResult{LaborCost: 120, MaterialCost: 30.5},
		Token:   "t-1",
	}

	created, err := repo.Create(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)

	_, err = repo.Create(ctx, s)
	assert.ErrorIs(t, err, ErrSessionExists)

	got, err := repo.GetByID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)
	assert.Equal(t, 3.0, got.Selection["kitchen-cabinets-1"].Quantity)
	assert.Equal(t, 30.5, got.Calculations["kitchen-cabinets-1"].Fetched.MaterialCost)
	assert.NotNil(t, got.Warnings)

	got.Description = "replace the upper cabinets"
	saved, err := repo.Save(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.Version)

	// A writer still holding version 1 loses.
	_, err = repo.Save(ctx, got)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

	again, err := repo.GetByID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.Version)
	assert.Equal(t, "replace the upper cabinets", again.Description)
}

func TestSessionRepository_NotFoundAndErrors(t *testing.T) {
	ctx := context.Background()
	db := newFakeDynamo("id")
	repo := NewSessionDynamoRepository(db, "sessions")

	got, err := repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	db.failErr = errors.New("throttled")
	_, err = repo.Save(ctx, entities.NewSession("sess-1", time.Now()))
	assert.EqualError(t, err, "throttled")
}

func sampleOrder() entities.CompositeOrder {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	return entities.CompositeOrder{
		Code:                  "HE-0A1B2C3D4E",
		Subtotal:              200,
		TaxAmount:             17.03,
		ServiceFeeOnLabor:     24,
		ServiceFeeOnMaterials: 2.5,
		Common: entities.OrderCommon{
			Address:         "Portland, OR 97201",
			Location:        entities.Location{Country: "US", State: "OR", City: "Portland", PostalCode: "97201"},
			Date:            now,
			DateCoefficient: 1.2,
		},
		Works: []entities.OrderWork{
			{
				Code:  "kitchen.cabinets.1",
				Name:  "Install base cabinet",
				Total: 150,
				Materials: []entities.OrderMaterial{
					{Name: "Screws", ExternalID: "m-1", CostPerUnit: 0.25, Quantity: 100, Cost: 25},
				},
			},
			{Code: "kitchen.cabinets.2", Name: "Install wall cabinet", Total: 50, Materials: []entities.OrderMaterial{}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCompositeOrderRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	db := newFakeDynamo("code")
	repo := NewCompositeOrderDynamoRepository(db, "orders")

	o := sampleOrder()
	_, err := repo.Create(ctx, o)
	require.NoError(t, err)

	_, err = repo.Create(ctx, o)
	assert.ErrorIs(t, err, ErrOrderExists)

	got, err := repo.GetByCode(ctx, o.Code)
	require.NoError(t, err)
	assert.Equal(t, o.Subtotal, got.Subtotal)
	assert.Equal(t, o.TaxAmount, got.TaxAmount)
	assert.Equal(t, o.Common.Location, got.Common.Location)
	assert.True(t, o.Common.Date.Equal(got.Common.Date))
	require.Len(t, got.Works, 2)
	assert.Equal(t, "kitchen.cabinets.1", got.Works[0].Code)
	assert.Equal(t, 25.0, got.Works[0].Materials[0].Cost)

	// Stored under the JSON field names.
	_, ok := db.items[o.Code]["service_fee_on_labor"]
	assert.True(t, ok)

	missing, err := repo.GetByCode(ctx, "HE-NOPE")
	require.NoError(t, err)
	assert.Empty(t, missing.Code)
}

func TestCompositeOrderRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewCompositeOrderDynamoRepository(newFakeDynamo("code"), "orders")

	o := sampleOrder()
	_, err := repo.Create(ctx, o)
	require.NoError(t, err)

	o.TaxAmount = 20
	o.Works = o.Works[:1]
	updated, err := repo.Update(ctx, o)
	require.NoError(t, err)
	assert.Equal(t, 20.0, updated.TaxAmount)
	assert.Len(t, updated.Works, 1)
	assert.False(t, updated.UpdatedAt.Equal(o.UpdatedAt))

	ghost := sampleOrder()
	ghost.Code = "HE-GHOST"
	res, err := repo.Update(ctx, ghost)
	require.NoError(t, err)
	assert.Empty(t, res.Code)
}

func TestBillingPaymentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBillingPaymentDynamoRepository(newFakeDynamo("id"), "payments")

	first := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	p1 := entities.BillingPayment{
		ID:           "p-1",
		OrderCode:    "HE-1",
		Amount:       241.53,
		Date:         first.Add(time.Minute),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: json.RawMessage(`{"id":1}`),
		MPPayload:    map[string]interface{}{"id": 1.0},
	}
	p0 := entities.BillingPayment{ID: "p-0", OrderCode: "HE-1", Amount: 241.53, Date: first, Status: entities.PaymentStatusDenied}
	other := entities.BillingPayment{ID: "p-9", OrderCode: "HE-2", Date: first, Status: entities.PaymentStatusPending}

	for _, p := range []entities.BillingPayment{p1, p0, other} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, p1)
	assert.ErrorIs(t, err, ErrPaymentExists)

	got, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, 241.53, got.Amount)
	assert.Equal(t, "HE-1", got.OrderCode)
	assert.JSONEq(t, `{"id":1}`, string(got.MPPayloadRaw))

	list, err := repo.ListByOrderCode(ctx, "HE-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p-0", list[0].ID)
	assert.Equal(t, "p-1", list[1].ID)

	none, err := repo.GetByID(ctx, "p-404")
	require.NoError(t, err)
	assert.Empty(t, none.ID)
}
