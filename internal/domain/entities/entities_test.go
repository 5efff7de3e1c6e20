package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceID(t *testing.T) {
	ref, ok := ParseServiceID("kitchen-cabinets-1")
	require.True(t, ok)
	assert.Equal(t, CategoryID("kitchen-cabinets"), ref.CategoryID())
	assert.Equal(t, "1", ref.Index)

	_, ok = ParseServiceID("kitchen-cabinets")
	assert.False(t, ok)

	assert.Equal(t, "kitchen.cabinets.1", ServiceID("kitchen-cabinets-1").Dotted())
	assert.Equal(t, ServiceID("kitchen-cabinets-1"), ServiceIDFromCode(" kitchen.cabinets.1 "))
}

func TestServiceClamp(t *testing.T) {
	svc := Service{MinQuantity: 1, MaxQuantity: 10}

	q, clamped := svc.Clamp(12)
	assert.Equal(t, 10.0, q)
	assert.True(t, clamped)

	q, clamped = svc.Clamp(0)
	assert.Equal(t, 1.0, q)
	assert.True(t, clamped)

	q, clamped = svc.Clamp(4)
	assert.Equal(t, 4.0, q)
	assert.False(t, clamped)
}

func fetched() *CalculationResult {
	return &CalculationResult{
		LaborCost:    100,
		MaterialCost: 50,
		MaterialLines: []MaterialLine{
			{Name: "Tile", ExternalID: "m-1", UnitCost: 3, Quantity: 10, LineCost: 30},
			{Name: "Grout", ExternalID: "m-2", UnitCost: 2, Quantity: 10, LineCost: 20},
		},
	}
}

func TestCalculationEntryEffective(t *testing.T) {
	t.Run("no result", func(t *testing.T) {
		_, ok := CalculationEntry{}.Effective(nil)
		assert.False(t, ok)
	})

	t.Run("fetched as is", func(t *testing.T) {
		r, ok := CalculationEntry{Fetched: fetched()}.Effective(nil)
		require.True(t, ok)
		assert.Equal(t, 150.0, r.Total())
	})

	t.Run("materials removed is idempotent", func(t *testing.T) {
		e := CalculationEntry{Fetched: fetched(), MaterialsRemoved: true}
		once, _ := e.Effective(nil)
		e.MaterialsRemoved = true
		twice, _ := e.Effective(nil)
		assert.Equal(t, once, twice)
		assert.Equal(t, 0.0, once.MaterialCost)
		assert.Empty(t, once.MaterialLines)
		assert.Equal(t, once.LaborCost, once.Total())
		// fetched value is untouched
		assert.Equal(t, 50.0, e.Fetched.MaterialCost)
	})

	t.Run("customer supplied keeps line with zero cost", func(t *testing.T) {
		r, ok := CalculationEntry{Fetched: fetched()}.Effective(map[string]bool{"m-1": true})
		require.True(t, ok)
		assert.Equal(t, 20.0, r.MaterialCost)
		require.Len(t, r.MaterialLines, 2)
		assert.True(t, r.MaterialLines[0].CustomerSupplied)
		assert.Equal(t, 0.0, r.MaterialLines[0].LineCost)
		assert.Equal(t, r.LaborCost+r.MaterialCost, r.Total())
	})
}

func TestFinishingSelection(t *testing.T) {
	fs := NewFinishingSelection(map[string][]FinishingMaterialOption{
		"tile":  {{ExternalID: "t-1"}, {ExternalID: "t-2"}},
		"grout": {{ExternalID: "g-1"}, {ExternalID: "g-2"}},
		"empty": {},
	})
	assert.Equal(t, []string{"g-1", "t-1"}, fs.Current())

	require.NoError(t, fs.Pick("t-2"))
	assert.Equal(t, []string{"g-1", "t-2"}, fs.Current())

	assert.ErrorIs(t, fs.Pick("zzz"), ErrUnknownFinishingMaterial)

	require.NoError(t, fs.MarkCustomerSupplied("g-1", true))
	assert.True(t, fs.CustomerSupplied["g-1"])
	require.NoError(t, fs.MarkCustomerSupplied("g-1", false))
	assert.False(t, fs.CustomerSupplied["g-1"])
}

func TestSessionRemoveCascades(t *testing.T) {
	s := NewSession("s-1", fixedNow)
	s.Selection["a-b-1"] = SelectionEntry{ServiceID: "a-b-1", Quantity: 1}
	s.Finishing["a-b-1"] = FinishingSelection{}
	s.Calculations["a-b-1"] = CalculationEntry{Fetched: fetched()}
	require.Len(t, s.EffectiveResults(), 1)

	s.Remove("a-b-1")
	assert.Empty(t, s.Selection)
	assert.Empty(t, s.Finishing)
	assert.Empty(t, s.Calculations)
	assert.Empty(t, s.EffectiveResults())
}

func TestLocationPriceable(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want bool
	}{
		{"us zip", Location{Country: "US", PostalCode: "94110"}, true},
		{"lower case country", Location{Country: "us", PostalCode: " 94110 "}, true},
		{"zip+4", Location{Country: "US", PostalCode: "94110-1234"}, false},
		{"non numeric", Location{Country: "US", PostalCode: "9411A"}, false},
		{"unsupported country", Location{Country: "CA", PostalCode: "12345"}, false},
		{"empty", Location{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.Priceable())
		})
	}
}
