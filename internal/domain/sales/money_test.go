package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExTax(t *testing.T) {
	t.Run("converts at the default rate", func(t *testing.T) {
		assert.Equal(t, int64(100000), ExTax(110000, DefaultTaxRate))
		assert.Equal(t, int64(4090909), ExTax(4500000, DefaultTaxRate))
	})

	t.Run("zero in, zero out", func(t *testing.T) {
		assert.Equal(t, int64(0), ExTax(0, DefaultTaxRate))
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		// 115 / 1.1 = 104.5454... -> 105 would need .5; use a crafted rate
		// 3 / 1.2 = 2.5 -> 3
		assert.Equal(t, int64(3), ExTax(3, decimal.New(2, -1)))
	})

	t.Run("monotonic non-decreasing", func(t *testing.T) {
		prev := int64(0)
		for amount := int64(0); amount <= 1000; amount++ {
			got := ExTax(amount, DefaultTaxRate)
			assert.GreaterOrEqual(t, got, prev, "amount %d", amount)
			prev = got
		}
	})

	t.Run("honors a per-store rate", func(t *testing.T) {
		assert.Equal(t, int64(100000), ExTax(108000, decimal.New(8, -2)))
	})
}

func TestAvgSpend(t *testing.T) {
	t.Run("rounds to nearest integer", func(t *testing.T) {
		assert.Equal(t, int64(5000), AvgSpend(100000, 20))
		assert.Equal(t, int64(3333), AvgSpend(10000, 3))
		assert.Equal(t, int64(17), AvgSpend(50, 3)) // 16.66 -> 17
	})

	t.Run("zero customers yields zero regardless of sales", func(t *testing.T) {
		assert.Equal(t, int64(0), AvgSpend(0, 0))
		assert.Equal(t, int64(0), AvgSpend(987654, 0))
		assert.Equal(t, int64(0), AvgSpend(987654, -1))
	})
}

func TestWholePercent(t *testing.T) {
	assert.Equal(t, int64(50), wholePercent(250000, 500000))
	assert.Equal(t, int64(0), wholePercent(100000, 0))
	assert.Equal(t, int64(-25), wholePercent(-25000, 100000))
	assert.Equal(t, int64(67), wholePercent(2, 3))
}

func TestRatioPercent(t *testing.T) {
	assert.InDelta(t, 50.0, ratioPercent(decimal.NewFromInt(250000), decimal.NewFromInt(500000)), 1e-9)
	assert.Equal(t, 0.0, ratioPercent(decimal.NewFromInt(1), decimal.Zero))
	assert.InDelta(t, 33.3, ratioPercent(decimal.NewFromInt(1), decimal.NewFromInt(3)), 1e-9)
}
