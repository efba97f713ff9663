package internal

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/chrisconley/energymeter/internal/infra"
	specs "github.com/chrisconley/energymeter/specs"
)

// ErrOutOfEnergy is returned once an invocation has used more energy than its limit.
var ErrOutOfEnergy = errors.New("out of energy")

type ChargeKind struct {
	value string
}

var (
	ChargeKindMethod     = ChargeKind{value: specs.ChargeKindMethod}
	ChargeKindAllocation = ChargeKind{value: specs.ChargeKindAllocation}
	ChargeKindOther      = ChargeKind{value: specs.ChargeKindOther}
)

func NewChargeKind(value string) (ChargeKind, error) {
	switch value {
	case specs.ChargeKindMethod, specs.ChargeKindAllocation, specs.ChargeKindOther:
		return ChargeKind{value: value}, nil
	default:
		return ChargeKind{}, fmt.Errorf("unknown charge kind %q", value)
	}
}

func (k ChargeKind) ToString() string {
	return k.value
}

// ChargedEvent is published for every charge a tally accepts.
type ChargedEvent struct {
	Charge specs.ChargeSpec
}

func (e ChargedEvent) EventType() infra.EventType {
	if e.Charge.Kind == specs.ChargeKindAllocation {
		return infra.AllocationCharged
	}
	return infra.EnergyCharged
}

// ExhaustedEvent is published once, when a tally first goes past its limit.
type ExhaustedEvent struct {
	Report specs.EnergyReportSpec
}

func (e ExhaustedEvent) EventType() infra.EventType {
	return infra.EnergyExhausted
}

type TallyOption func(*EnergyTally)

// WithBus publishes ChargedEvent and ExhaustedEvent to bus.
func WithBus(bus *infra.Bus) TallyOption {
	return func(t *EnergyTally) { t.bus = bus }
}

// WithLogger logs every charge at debug level.
func WithLogger(logger zerolog.Logger) TallyOption {
	return func(t *EnergyTally) { t.logger = logger }
}

// EnergyTally is the running energy balance of a single contract invocation.
//
// Unlike MeteringService it is stateful and not safe for concurrent use. Use
// one tally per invocation and never share it across invocations.
//
// Amounts are summed with the same 64-bit wraparound as the cost model.
type EnergyTally struct {
	limit     int64
	used      int64
	byKind    map[string]int64
	count     int
	exhausted bool

	bus    *infra.Bus
	logger zerolog.Logger
}

// NewEnergyTally creates a tally. A limit of zero means unlimited.
func NewEnergyTally(limit int64, opts ...TallyOption) (*EnergyTally, error) {
	if limit < 0 {
		return nil, fmt.Errorf("energy limit must not be negative, got %d", limit)
	}

	t := &EnergyTally{
		limit:  limit,
		byKind: make(map[string]int64),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Charge adds amount to the balance.
//
// The charge that crosses the limit is still recorded; it and every later call
// return an error wrapping ErrOutOfEnergy. Later charges are not recorded.
// A positive charge that wraps the sum past math.MaxInt64 counts as crossing
// the limit, even though Used then reads negative.
func (t *EnergyTally) Charge(kind ChargeKind, subject string, amount int64) error {
	if t.exhausted {
		return fmt.Errorf("%w: used %d, limit %d", ErrOutOfEnergy, t.used, t.limit)
	}

	sum := t.used + amount
	wrapped := amount > 0 && sum < t.used
	t.used = sum
	t.byKind[kind.ToString()] += amount
	t.count++

	charge := specs.ChargeSpec{
		Kind:    kind.ToString(),
		Subject: subject,
		Amount:  amount,
	}

	t.logger.Debug().
		Str("kind", charge.Kind).
		Str("subject", charge.Subject).
		Int64("amount", charge.Amount).
		Int64("used", t.used).
		Msg("energy charged")

	if t.bus != nil {
		t.bus.Publish(ChargedEvent{Charge: charge})
	}

	if t.limit > 0 && (wrapped || t.used > t.limit) {
		t.exhausted = true
		t.logger.Debug().
			Int64("used", t.used).
			Int64("limit", t.limit).
			Msg("energy exhausted")
		if t.bus != nil {
			t.bus.Publish(ExhaustedEvent{Report: t.Report()})
		}
		return fmt.Errorf("%w: used %d, limit %d (%s)", ErrOutOfEnergy, t.used, t.limit, subject)
	}

	return nil
}

// ChargeMethod charges an intercepted library call priced by chargeFor.
func (t *EnergyTally) ChargeMethod(chargeFor specs.ChargeForLevel, method string, base, linear int32) error {
	return t.Charge(ChargeKindMethod, method, chargeFor(base, linear))
}

// ChargeAllocation charges an intercepted allocation of typeName at
// perByteCost energy for every byte sizeOf reports.
func (t *EnergyTally) ChargeAllocation(sizeOf specs.SizeOf, typeName string, perByteCost int32) error {
	return t.Charge(ChargeKindAllocation, typeName, Multiply(sizeOf(typeName), perByteCost))
}

func (t *EnergyTally) Used() int64 {
	return t.used
}

func (t *EnergyTally) Limit() int64 {
	return t.limit
}

// Remaining returns the energy left before the limit, or math.MaxInt64 when
// the tally is unlimited. It never goes below zero.
func (t *EnergyTally) Remaining() int64 {
	if t.limit == 0 {
		return math.MaxInt64
	}
	if t.exhausted || t.used >= t.limit {
		return 0
	}
	// negative charges can push used low enough for limit-used to overflow
	if t.used < 0 && t.limit > math.MaxInt64+t.used {
		return math.MaxInt64
	}
	return t.limit - t.used
}

func (t *EnergyTally) Exhausted() bool {
	return t.exhausted
}

func (t *EnergyTally) Report() specs.EnergyReportSpec {
	byKind := make(map[string]int64, len(t.byKind))
	for kind, amount := range t.byKind {
		byKind[kind] = amount
	}
	return specs.EnergyReportSpec{
		Used:        t.used,
		Limit:       t.limit,
		ByKind:      byKind,
		ChargeCount: t.count,
		Exhausted:   t.exhausted,
	}
}
