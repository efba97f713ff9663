package specs

// MeteringConfigSpec bundles everything the metering service needs at startup.
//
// The config is read once when the engine starts and never changes afterwards.
// Sections left out of a config file fall back to DefaultFeeScheduleSpec and
// DefaultHeapSizeTableSpec.
type MeteringConfigSpec struct {
	// Per-level multipliers for runtime library method charges.
	FeeSchedule FeeScheduleSpec `json:"feeSchedule" yaml:"feeSchedule"`

	// Per-type allocation sizes and their fallbacks.
	HeapSizes HeapSizeTableSpec `json:"heapSizes" yaml:"heapSizes"`

	// Price of one unit of energy in the native token, as a decimal string.
	//
	// Only used to quote fees; it has no influence on metering itself.
	// Examples: "10000000000", "0.0000125". Empty means zero.
	EnergyPrice string `json:"energyPrice,omitempty" yaml:"energyPrice,omitempty"`
}

// DefaultMeteringConfigSpec returns the config shipped with this build.
func DefaultMeteringConfigSpec() MeteringConfigSpec {
	return MeteringConfigSpec{
		FeeSchedule: DefaultFeeScheduleSpec(),
		HeapSizes:   DefaultHeapSizeTableSpec(),
		EnergyPrice: "0",
	}
}
