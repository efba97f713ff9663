package internal

// EnergyCalculator implements specs.ChargeForLevel and specs.Multiply for a fee schedule.
//
// It holds no mutable state and is safe for concurrent use.
//
// Arithmetic is done at 64-bit width after widening each 32-bit operand, so a
// product of two int32 values is always exact. A sum that leaves the int64
// range wraps around; it is neither saturated nor reported. Every node must
// reproduce that wraparound bit for bit, so it must not be replaced with
// checked or saturating arithmetic.
type EnergyCalculator struct {
	level1 int64
	level2 int64
}

func NewEnergyCalculator(schedule FeeSchedule) EnergyCalculator {
	return EnergyCalculator{
		level1: int64(schedule.Level1().ToInt32()),
		level2: int64(schedule.Level2().ToInt32()),
	}
}

// ChargeForLevel1 returns base + linear * level 1 factor.
func (c EnergyCalculator) ChargeForLevel1(base, linear int32) int64 {
	return addWidened(base, int64(linear)*c.level1)
}

// ChargeForLevel2 returns base + linear * level 2 factor.
func (c EnergyCalculator) ChargeForLevel2(base, linear int32) int64 {
	return addWidened(base, int64(linear)*c.level2)
}

// ChargeForLevel dispatches to ChargeForLevel1 or ChargeForLevel2, pricing
// the zero FeeLevel and unnamed values at level 1 like FeeSchedule.Factor.
func (c EnergyCalculator) ChargeForLevel(level FeeLevel, base, linear int32) int64 {
	switch level {
	case FeeLevel2:
		return c.ChargeForLevel2(base, linear)
	case FeeLevel1:
		return c.ChargeForLevel1(base, linear)
	default:
		return c.ChargeForLevel1(base, linear)
	}
}

func (c EnergyCalculator) Multiply(value1, value2 int32) int64 {
	return Multiply(value1, value2)
}

// Multiply returns the product of value1 and value2 computed at 64-bit width.
func Multiply(value1, value2 int32) int64 {
	return int64(value1) * int64(value2)
}

func addWidened(value1 int32, value2 int64) int64 {
	return int64(value1) + value2
}
