package internal

import (
	"fmt"

	specs "github.com/chrisconley/energymeter/specs"
)

type FeeSchedule struct {
	level1 FeeFactor
	level2 FeeFactor
}

func NewFeeSchedule(spec specs.FeeScheduleSpec) (FeeSchedule, error) {
	level1, err := NewFeeFactor(spec.Level1Factor)
	if err != nil {
		return FeeSchedule{}, fmt.Errorf("invalid level 1 factor: %w", err)
	}

	level2, err := NewFeeFactor(spec.Level2Factor)
	if err != nil {
		return FeeSchedule{}, fmt.Errorf("invalid level 2 factor: %w", err)
	}

	return FeeSchedule{
		level1: level1,
		level2: level2,
	}, nil
}

func (s FeeSchedule) Level1() FeeFactor {
	return s.level1
}

func (s FeeSchedule) Level2() FeeFactor {
	return s.level2
}

// Factor returns the multiplier for the given level. The zero FeeLevel is
// level 1; any other unnamed value also prices at level 1.
func (s FeeSchedule) Factor(level FeeLevel) FeeFactor {
	switch level {
	case FeeLevel2:
		return s.level2
	case FeeLevel1:
		return s.level1
	default:
		return s.level1
	}
}

func (s FeeSchedule) ToSpec() specs.FeeScheduleSpec {
	return specs.FeeScheduleSpec{
		Level1Factor: s.level1.ToInt32(),
		Level2Factor: s.level2.ToInt32(),
	}
}

type FeeFactor struct {
	value int32
}

func NewFeeFactor(value int32) (FeeFactor, error) {
	if value <= 0 {
		return FeeFactor{}, fmt.Errorf("factor must be positive, got %d", value)
	}
	return FeeFactor{value: value}, nil
}

func (f FeeFactor) ToInt32() int32 {
	return f.value
}

// FeeLevel selects a multiplier from a FeeSchedule. The zero value is FeeLevel1.
type FeeLevel int

const (
	FeeLevel1 FeeLevel = iota
	FeeLevel2
)

func NewFeeLevel(value string) (FeeLevel, error) {
	switch value {
	case specs.FeeLevel1:
		return FeeLevel1, nil
	case specs.FeeLevel2:
		return FeeLevel2, nil
	default:
		return FeeLevel1, fmt.Errorf("unknown fee level %q (want %q or %q)", value, specs.FeeLevel1, specs.FeeLevel2)
	}
}

func (l FeeLevel) ToString() string {
	switch l {
	case FeeLevel1:
		return specs.FeeLevel1
	case FeeLevel2:
		return specs.FeeLevel2
	default:
		return "unknown"
	}
}
