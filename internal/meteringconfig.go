package internal

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	specs "github.com/chrisconley/energymeter/specs"
)

type MeteringConfig struct {
	feeSchedule FeeSchedule
	heapSizes   HeapSizeTable
	energyPrice EnergyPrice
}

func NewMeteringConfig(spec specs.MeteringConfigSpec) (MeteringConfig, error) {
	feeSchedule, err := NewFeeSchedule(spec.FeeSchedule)
	if err != nil {
		return MeteringConfig{}, fmt.Errorf("invalid fee schedule: %w", err)
	}

	heapSizes, err := NewHeapSizeTable(spec.HeapSizes)
	if err != nil {
		return MeteringConfig{}, fmt.Errorf("invalid heap size table: %w", err)
	}

	energyPrice, err := NewEnergyPrice(spec.EnergyPrice)
	if err != nil {
		return MeteringConfig{}, fmt.Errorf("invalid energy price: %w", err)
	}

	return MeteringConfig{
		feeSchedule: feeSchedule,
		heapSizes:   heapSizes,
		energyPrice: energyPrice,
	}, nil
}

func (c MeteringConfig) FeeSchedule() FeeSchedule {
	return c.feeSchedule
}

func (c MeteringConfig) HeapSizes() HeapSizeTable {
	return c.heapSizes
}

func (c MeteringConfig) EnergyPrice() EnergyPrice {
	return c.energyPrice
}

// ParseMeteringConfigSpec decodes a YAML config document.
//
// Keys that are absent keep the values of specs.DefaultMeteringConfigSpec.
// Unknown keys are rejected so that a misspelled factor cannot silently fall
// back to its default. An empty document yields the defaults.
func ParseMeteringConfigSpec(data []byte) (specs.MeteringConfigSpec, error) {
	spec := specs.DefaultMeteringConfigSpec()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return specs.MeteringConfigSpec{}, fmt.Errorf("failed to parse metering config: %w", err)
	}

	return spec, nil
}

// LoadMeteringConfig parses and validates a YAML config document.
func LoadMeteringConfig(data []byte) (MeteringConfig, error) {
	spec, err := ParseMeteringConfigSpec(data)
	if err != nil {
		return MeteringConfig{}, err
	}
	return NewMeteringConfig(spec)
}

// DefaultMeteringConfig returns the validated config shipped with this build.
func DefaultMeteringConfig() MeteringConfig {
	config, err := NewMeteringConfig(specs.DefaultMeteringConfigSpec())
	if err != nil {
		panic(fmt.Sprintf("default metering config is invalid: %v", err))
	}
	return config
}
