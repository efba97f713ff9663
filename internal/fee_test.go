package internal

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnergyPrice(t *testing.T) {
	t.Run("parses decimal price", func(t *testing.T) {
		price, err := NewEnergyPrice("0.0000125")

		require.NoError(t, err)
		assert.Equal(t, "0.0000125", price.ToString())
	})

	t.Run("empty string is zero", func(t *testing.T) {
		price, err := NewEnergyPrice("")

		require.NoError(t, err)
		assert.True(t, price.ToDecimal().IsZero())
	})

	t.Run("with negative price returns error", func(t *testing.T) {
		_, err := NewEnergyPrice("-0.5")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be negative")
	})

	t.Run("negative zero is zero", func(t *testing.T) {
		for _, value := range []string{"-0", "-0.000", "0E+3"} {
			price, err := NewEnergyPrice(value)

			require.NoError(t, err, value)
			assert.Equal(t, "0", price.ToString(), value)
		}
	})

	t.Run("strips trailing zeros", func(t *testing.T) {
		price, err := NewEnergyPrice("12.500")

		require.NoError(t, err)
		assert.Equal(t, "12.5", price.ToString())
	})

	t.Run("accepts the widest price", func(t *testing.T) {
		value := "0." + strings.Repeat("9", MaxEnergyPriceDigits)

		price, err := NewEnergyPrice(value)

		require.NoError(t, err)
		assert.Equal(t, value, price.ToString())
	})

	t.Run("with too many significant digits returns error", func(t *testing.T) {
		_, err := NewEnergyPrice("0." + strings.Repeat("9", MaxEnergyPriceDigits+1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "50 significant digits, at most 49 allowed")
	})

	t.Run("with garbage returns error", func(t *testing.T) {
		_, err := NewEnergyPrice("ten")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid decimal")
	})

	t.Run("with infinity returns error", func(t *testing.T) {
		_, err := NewEnergyPrice("Infinity")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not finite")
	})
}

func TestQuoteFee(t *testing.T) {
	t.Run("multiplies energy by price", func(t *testing.T) {
		price, err := NewEnergyPrice("12.5")
		require.NoError(t, err)

		quote, err := QuoteFee(20, price)

		require.NoError(t, err)
		assert.Equal(t, int64(20), quote.Energy)
		assert.Equal(t, "12.5", quote.EnergyPrice)
		assert.Equal(t, "250", quote.Fee)
	})

	t.Run("keeps fractional precision", func(t *testing.T) {
		price, err := NewEnergyPrice("0.0000125")
		require.NoError(t, err)

		quote, err := QuoteFee(3, price)

		require.NoError(t, err)
		assert.Equal(t, "0.0000375", quote.Fee)
	})

	t.Run("does not overflow for max energy", func(t *testing.T) {
		price, err := NewEnergyPrice("10000000000")
		require.NoError(t, err)

		quote, err := QuoteFee(math.MaxInt64, price)

		require.NoError(t, err)
		assert.Equal(t, "92233720368547758070000000000", quote.Fee)
	})

	t.Run("stays exact at the widest price and max energy", func(t *testing.T) {
		price, err := NewEnergyPrice("0." + strings.Repeat("9", MaxEnergyPriceDigits))
		require.NoError(t, err)

		quote, err := QuoteFee(math.MaxInt64, price)

		require.NoError(t, err)
		// 9223372036854775807 * (1 - 10^-49)
		want := "9223372036854775806." + strings.Repeat("9", 30) + "0776627963145224193"
		assert.Equal(t, want, quote.Fee)
	})

	t.Run("zero energy costs nothing", func(t *testing.T) {
		price, err := NewEnergyPrice("3")
		require.NoError(t, err)

		quote, err := QuoteFee(0, price)

		require.NoError(t, err)
		assert.Equal(t, "0", quote.Fee)
	})

	t.Run("with negative energy returns error", func(t *testing.T) {
		price, err := NewEnergyPrice("1")
		require.NoError(t, err)

		_, err = QuoteFee(-1, price)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "energy must not be negative")
	})
}
