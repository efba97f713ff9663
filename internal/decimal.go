package internal

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// decimalContext holds 68 digits: 19 for an int64 energy amount and 49 for a price.
var decimalContext = apd.BaseContext.WithPrecision(68)

type Decimal struct {
	value apd.Decimal
}

func NewDecimal(s string) (Decimal, error) {
	var d apd.Decimal
	_, _, err := d.SetString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal: %w", err)
	}
	if d.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("invalid decimal: %q is not finite", s)
	}
	return Decimal{value: d}, nil
}

func NewDecimalFromInt64(i int64) Decimal {
	var d apd.Decimal
	d.SetInt64(i)
	return Decimal{value: d}
}

func (d Decimal) String() string {
	return d.value.Text('f')
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

func (d Decimal) Cmp(other Decimal) int {
	return d.value.Cmp(&other.value)
}

// NumDigits returns the number of digits in the coefficient, so "0.0125" has 3.
func (d Decimal) NumDigits() int64 {
	return d.value.NumDigits()
}

// Mul returns the product of d and other. It fails rather than round.
func (d Decimal) Mul(other Decimal) (Decimal, error) {
	var result apd.Decimal
	cond, err := decimalContext.Mul(&result, &d.value, &other.value)
	if err != nil {
		return Decimal{}, fmt.Errorf("failed to multiply %s by %s: %w", d, other, err)
	}
	if cond.Inexact() || cond.Rounded() {
		return Decimal{}, fmt.Errorf("product of %s and %s exceeds %d digits", d, other, decimalContext.Precision)
	}
	return Decimal{value: result}, nil
}

// Reduce strips trailing zeros, so "1.500" becomes "1.5".
func (d Decimal) Reduce() Decimal {
	var result apd.Decimal
	result.Reduce(&d.value)
	return Decimal{value: result}
}
