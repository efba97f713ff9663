package internal

// MeteringService is the surface the instrumentation pipeline calls into.
//
// It combines an EnergyCalculator for intercepted library calls with a
// HeapSizeTable for intercepted allocations. The two halves are independent
// and neither keeps state, so one service can be shared by every sandbox in
// the process without locking. Accumulating the returned values is the
// caller's job; see EnergyTally.
type MeteringService struct {
	calculator EnergyCalculator
	heapSizes  HeapSizeTable
}

func NewMeteringService(config MeteringConfig) *MeteringService {
	return &MeteringService{
		calculator: NewEnergyCalculator(config.FeeSchedule()),
		heapSizes:  config.HeapSizes(),
	}
}

func (s *MeteringService) ChargeForLevel1(base, linear int32) int64 {
	return s.calculator.ChargeForLevel1(base, linear)
}

func (s *MeteringService) ChargeForLevel2(base, linear int32) int64 {
	return s.calculator.ChargeForLevel2(base, linear)
}

func (s *MeteringService) ChargeForLevel(level FeeLevel, base, linear int32) int64 {
	return s.calculator.ChargeForLevel(level, base, linear)
}

func (s *MeteringService) Multiply(value1, value2 int32) int64 {
	return s.calculator.Multiply(value1, value2)
}

func (s *MeteringService) SizeOf(typeName string) int32 {
	return s.heapSizes.SizeOf(typeName)
}

func (s *MeteringService) SizeOfGeneratedException() int32 {
	return s.heapSizes.SizeOfGeneratedException()
}

func (s *MeteringService) Calculator() EnergyCalculator {
	return s.calculator
}

func (s *MeteringService) HeapSizes() HeapSizeTable {
	return s.heapSizes
}
