package internal

import (
	"fmt"

	specs "github.com/chrisconley/energymeter/specs"
)

// EnergyPrice is the native-token price of one unit of energy.
type EnergyPrice struct {
	value Decimal
}

// MaxEnergyPriceDigits bounds the significant digits of a price so that a
// quote for any int64 energy amount fits the decimal context.
const MaxEnergyPriceDigits = 49

// NewEnergyPrice parses a non-negative decimal price. An empty string is zero,
// and so is any spelling of negative zero.
func NewEnergyPrice(value string) (EnergyPrice, error) {
	zero := NewDecimalFromInt64(0)
	if value == "" {
		return EnergyPrice{value: zero}, nil
	}
	d, err := NewDecimal(value)
	if err != nil {
		return EnergyPrice{}, err
	}
	if d.IsZero() {
		return EnergyPrice{value: zero}, nil
	}
	if d.Cmp(zero) < 0 {
		return EnergyPrice{}, fmt.Errorf("energy price must not be negative, got %s", value)
	}
	d = d.Reduce()
	if d.NumDigits() > MaxEnergyPriceDigits {
		return EnergyPrice{}, fmt.Errorf("energy price has %d significant digits, at most %d allowed", d.NumDigits(), MaxEnergyPriceDigits)
	}
	return EnergyPrice{value: d}, nil
}

func (p EnergyPrice) ToDecimal() Decimal {
	return p.value
}

func (p EnergyPrice) ToString() string {
	return p.value.String()
}

// QuoteFee returns energy * price, exactly.
func QuoteFee(energy int64, price EnergyPrice) (specs.FeeQuoteSpec, error) {
	if energy < 0 {
		return specs.FeeQuoteSpec{}, fmt.Errorf("energy must not be negative, got %d", energy)
	}

	product, err := NewDecimalFromInt64(energy).Mul(price.value)
	if err != nil {
		return specs.FeeQuoteSpec{}, fmt.Errorf("failed to quote fee: %w", err)
	}
	fee := product.Reduce()

	return specs.FeeQuoteSpec{
		Energy:      energy,
		EnergyPrice: price.ToString(),
		Fee:         fee.String(),
	}, nil
}
