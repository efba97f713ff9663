package specs

// ChargeForLevel converts a base cost and a measured linear quantity into an
// energy charge: base + linear * factor, where factor comes from the fee level.
//
// Both operands are widened to 64 bits before the multiplication, so the
// product of two 32-bit values never wraps. Overflow of the final 64-bit sum is
// not detected; it wraps around. The function never fails.
//
// See internal.EnergyCalculator for the reference implementation.
type ChargeForLevel func(base, linear int32) int64

// Multiply returns the product of two 32-bit quantities computed at 64-bit width.
//
// Exposed as a building block for cost formulas that need a product that
// cannot wrap at 32 bits.
type Multiply func(value1, value2 int32) int64

// SizeOf returns the per-instance allocation size in bytes for a canonical type name.
//
// Total: a name with no table entry gets the generic default size. Any string is
// accepted.
type SizeOf func(typeName string) int32

// SizeOfGeneratedException returns the allocation size for exceptions the engine
// synthesizes itself.
type SizeOfGeneratedException func() int32
