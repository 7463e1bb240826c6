package pricing

import (
	"errors"
	"testing"

	"printstudio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tshirt() entities.Service {
	return entities.Service{
		Key:                 "tshirt",
		BasePrice:           6.0,
		ColorPricePerColor:  0.35,
		PrintAreaMultiplier: 1.0,
		MinimumQuantity:     1,
	}
}

func TestPrice_SingleUnitNoModifiers(t *testing.T) {
	q, err := Price(tshirt(), 1, 1, entities.PrintAreaMedium)
	require.NoError(t, err)

	assert.Equal(t, 6.0, q.UnitPrice)
	assert.Equal(t, 6.0, q.TotalPrice)
	assert.Equal(t, Breakdown{
		Base:            6.0,
		Colors:          1,
		ColorAddPerUnit: 0.35,
		AreaMultiplier:  1.0,
		VolumeDiscounts: true,
	}, q.Breakdown)
}

func TestPrice_ColorsAndHighestVolumeTier(t *testing.T) {
	// 6.0 + 2*0.35 = 6.70, then *0.75 = 5.025000...4 which rounds up.
	q, err := Price(tshirt(), 100, 3, entities.PrintAreaMedium)
	require.NoError(t, err)

	assert.Equal(t, 5.03, q.UnitPrice)
	assert.Equal(t, 503.0, q.TotalPrice)
}

func TestPrice_VolumeDiscountSteps(t *testing.T) {
	svc := tshirt()

	cases := []struct {
		quantity int
		unit     float64
		total    float64
	}{
		{1, 6.0, 6.0},
		{19, 6.0, 114.0},
		{20, 5.4, 108.0},
		{49, 5.4, 264.6},
		{50, 4.92, 246.0},
		{99, 4.92, 487.08},
		{100, 4.5, 450.0},
	}
	for _, tc := range cases {
		q, err := Price(svc, tc.quantity, 1, entities.PrintAreaMedium)
		require.NoError(t, err, "quantity=%d", tc.quantity)
		assert.Equal(t, tc.unit, q.UnitPrice, "unit at quantity=%d", tc.quantity)
		assert.Equal(t, tc.total, q.TotalPrice, "total at quantity=%d", tc.quantity)
	}
}

func TestPrice_PrintAreas(t *testing.T) {
	hoodie := entities.Service{
		Key:                 "hoodie",
		BasePrice:           12.0,
		ColorPricePerColor:  0.4,
		PrintAreaMultiplier: 1.2,
		MinimumQuantity:     1,
	}

	small, err := Price(hoodie, 25, 4, entities.PrintAreaSmall)
	require.NoError(t, err)
	// (12 + 3*0.4) * 0.9 = 11.88, *0.90 volume tier = 10.692 -> 10.69
	assert.Equal(t, 10.69, small.UnitPrice)
	assert.Equal(t, 267.25, small.TotalPrice)
	assert.Equal(t, 0.9, small.Breakdown.AreaMultiplier)

	large, err := Price(hoodie, 1, 1, entities.PrintAreaLarge)
	require.NoError(t, err)
	assert.Equal(t, 14.4, large.UnitPrice)
	assert.Equal(t, 1.2, large.Breakdown.AreaMultiplier)
}

func TestPrice_UnknownAreaFallsBackToMedium(t *testing.T) {
	got, err := Price(tshirt(), 5, 2, entities.PrintArea("banana"))
	require.NoError(t, err)

	want, err := Price(tshirt(), 5, 2, entities.PrintAreaMedium)
	require.NoError(t, err)

	assert.Equal(t, want.UnitPrice, got.UnitPrice)
	assert.Equal(t, 6.35, got.UnitPrice)
	assert.Equal(t, 1.0, got.Breakdown.AreaMultiplier)
}

func TestPrice_ColorMonotonicity(t *testing.T) {
	svc := tshirt()
	prev := 0.0
	for colors := 1; colors <= 10; colors++ {
		q, err := Price(svc, 1, colors, entities.PrintAreaMedium)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, q.UnitPrice, prev, "colors=%d", colors)
		prev = q.UnitPrice
	}
}

func TestPrice_TotalIsUnitTimesQuantity(t *testing.T) {
	svc := tshirt()
	for _, quantity := range []int{1, 7, 20, 50, 100, 1234} {
		q, err := Price(svc, quantity, 2, entities.PrintAreaSmall)
		require.NoError(t, err)
		assert.Equal(t, round2(q.UnitPrice*float64(quantity)), q.TotalPrice, "quantity=%d", quantity)
	}
}

// The unit price is rounded before and after the volume discount. For this
// input a single rounding at the end would yield 1.04; the staged computation
// yields 1.03.
func TestPrice_RoundsBeforeAndAfterDiscount(t *testing.T) {
	svc := entities.Service{
		Key:                 "sticker",
		BasePrice:           1.05,
		ColorPricePerColor:  0.05,
		PrintAreaMultiplier: 1.0,
		MinimumQuantity:     1,
	}

	q, err := Price(svc, 20, 3, entities.PrintAreaMedium)
	require.NoError(t, err)
	assert.Equal(t, 1.03, q.UnitPrice)
	assert.Equal(t, 20.6, q.TotalPrice)
}

func TestPrice_BelowMinimumQuantity(t *testing.T) {
	svc := tshirt()
	svc.MinimumQuantity = 10

	_, err := Price(svc, 5, 1, entities.PrintAreaMedium)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBelowMinimumQuantity))
	assert.Contains(t, err.Error(), "10")
}
