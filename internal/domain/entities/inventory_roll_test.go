package entities

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func threshold(v float64) *float64 { return &v }

func TestInventoryRoll_ConsumeClampsAtZero(t *testing.T) {
	r := InventoryRoll{TotalLength: 10, AvailableLength: 10}

	shortfall := r.Consume(4)
	require.Zero(t, shortfall)
	require.InDelta(t, 6, r.AvailableLength, 1e-9)

	shortfall = r.Consume(9)
	require.InDelta(t, 3, shortfall, 1e-9)
	require.Zero(t, r.AvailableLength)
	require.InDelta(t, 10, r.TotalLength, 1e-9)
}

func TestInventoryRoll_RestockRaisesTotalOnlyWhenNeeded(t *testing.T) {
	r := InventoryRoll{TotalLength: 100, AvailableLength: 5}

	r.Restock(30)
	require.InDelta(t, 35, r.AvailableLength, 1e-9)
	require.InDelta(t, 100, r.TotalLength, 1e-9, "total must stay at max(total, available)")

	r.Restock(80)
	require.InDelta(t, 115, r.AvailableLength, 1e-9)
	require.InDelta(t, 115, r.TotalLength, 1e-9)
}

func TestInventoryRoll_RestockThenConsumeRestoresAvailable(t *testing.T) {
	for _, x := range []float64{0.5, 1, 12.25, 300} {
		r := InventoryRoll{TotalLength: 50, AvailableLength: 17.5}
		before := r.AvailableLength
		r.Restock(x)
		r.Consume(x)
		require.InDelta(t, before, r.AvailableLength, 1e-9)
	}
}

func TestInventoryRoll_AvailableNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := InventoryRoll{TotalLength: 30, AvailableLength: 30}
	for i := 0; i < 1000; i++ {
		amount := rng.Float64() * 20
		if rng.Intn(2) == 0 {
			r.Consume(amount)
		} else {
			r.Restock(amount)
		}
		require.GreaterOrEqual(t, r.AvailableLength, 0.0)
		require.GreaterOrEqual(t, r.TotalLength, r.AvailableLength)
	}
}

func TestInventoryRoll_LowStockScenario(t *testing.T) {
	r := InventoryRoll{Tone: "20%", Width: 1520, TotalLength: 100, AvailableLength: 100, LowStockThreshold: threshold(10)}

	r.Consume(95)
	require.InDelta(t, 5, r.AvailableLength, 1e-9)
	require.True(t, r.IsLowStock(DefaultLowStockThreshold))

	r.Restock(30)
	require.InDelta(t, 35, r.AvailableLength, 1e-9)
	require.InDelta(t, 100, r.TotalLength, 1e-9)
	require.False(t, r.IsLowStock(DefaultLowStockThreshold))
}

func TestInventoryRoll_IsLowStockUsesDefaultWhenUnset(t *testing.T) {
	require.True(t, InventoryRoll{AvailableLength: 5}.IsLowStock(DefaultLowStockThreshold))
	require.False(t, InventoryRoll{AvailableLength: 5.01}.IsLowStock(DefaultLowStockThreshold))
	require.True(t, InventoryRoll{AvailableLength: 0}.IsLowStock(DefaultLowStockThreshold))
	require.False(t, InventoryRoll{AvailableLength: 3, LowStockThreshold: threshold(0)}.IsLowStock(DefaultLowStockThreshold))
}

func TestInventoryRoll_Validate(t *testing.T) {
	valid := InventoryRoll{Tone: "35%", Width: 1520, TotalLength: 30, AvailableLength: 30}
	require.NoError(t, valid.Validate())

	cases := map[string]InventoryRoll{
		"tone":                {Tone: " ", Width: 1, TotalLength: 1},
		"width":               {Tone: "5%", Width: 0, TotalLength: 1},
		"total_length":        {Tone: "5%", Width: 1, TotalLength: -1},
		"available_length":    {Tone: "5%", Width: 1, AvailableLength: -0.1},
		"low_stock_threshold": {Tone: "5%", Width: 1, LowStockThreshold: threshold(-1)},
	}
	for field, roll := range cases {
		err := roll.Validate()
		require.ErrorIs(t, err, ErrValidation, field)
		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, field, verr.Field)
	}
}
