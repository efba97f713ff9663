package specs

// FeeLevel names accepted by FeeLevelSpec fields and the CLI.
const (
	FeeLevel1 = "level1"
	FeeLevel2 = "level2"
)

// FeeScheduleSpec defines the per-level multipliers applied to a linear quantity.
//
// A fee level is a pricing tier for runtime library methods. The instrumentation
// pipeline measures a linear quantity for a call (element count, byte length,
// loop trip count) and the charge becomes base + linear * factor.
//
// Factors are consensus-relevant: every node must run with identical values,
// so a change here requires a new engine build.
type FeeScheduleSpec struct {
	// Multiplier for cheap per-unit work such as scanning array elements.
	//
	// Must be a strictly positive integer.
	Level1Factor int32 `json:"level1Factor" yaml:"level1Factor"`

	// Multiplier for more expensive per-unit work such as string encoding
	// or decoding.
	//
	// Must be a strictly positive integer.
	Level2Factor int32 `json:"level2Factor" yaml:"level2Factor"`
}

// DefaultFeeScheduleSpec returns the fee schedule shipped with this build.
func DefaultFeeScheduleSpec() FeeScheduleSpec {
	return FeeScheduleSpec{
		Level1Factor: 1,
		Level2Factor: 10,
	}
}
