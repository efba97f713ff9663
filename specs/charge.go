package specs

// Charge kinds recorded by an energy tally.
const (
	ChargeKindMethod     = "method"
	ChargeKindAllocation = "allocation"
	ChargeKindOther      = "other"
)

// ChargeSpec represents one energy charge applied during a contract invocation.
//
// Charges are produced by the instrumentation pipeline, either for an
// intercepted library call or for an intercepted allocation, and accumulated
// into the invocation's running balance.
type ChargeSpec struct {
	// What caused the charge: "method", "allocation" or "other".
	Kind string `json:"kind"`

	// The method or type the charge is attributed to.
	//
	// For method charges this is the intercepted method, e.g.
	// "s/java/lang/String.getBytes". For allocations it is the canonical type
	// name. May be empty.
	Subject string `json:"subject,omitempty"`

	// Energy charged.
	Amount int64 `json:"amount"`
}

// EnergyReportSpec summarizes the charges accumulated by one invocation.
type EnergyReportSpec struct {
	// Sum of every charge amount, with 64-bit wraparound.
	Used int64 `json:"used"`

	// Energy limit the invocation ran under. Zero means unlimited.
	Limit int64 `json:"limit"`

	// Sum of charge amounts grouped by charge kind.
	ByKind map[string]int64 `json:"byKind"`

	// Number of charges applied.
	ChargeCount int `json:"chargeCount"`

	// True once used energy went past the limit.
	Exhausted bool `json:"exhausted"`
}

// FeeQuoteSpec is the native-token fee for an amount of energy.
//
// Fee = Energy * EnergyPrice, computed in arbitrary precision and rendered as a
// decimal string.
type FeeQuoteSpec struct {
	Energy      int64  `json:"energy"`
	EnergyPrice string `json:"energyPrice"`
	Fee         string `json:"fee"`
}
