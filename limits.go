package atc

// Limits bounds the resources a single decode may allocate. A recording is
// small in practice (30 s at 300 Hz is ~18,000 samples per lead), so the
// defaults are far above anything a real device emits while still rejecting
// a hostile length field before the allocation happens.
type Limits struct {
	MaxBlocks      int    // blocks per file
	MaxBlockLen    uint64 // declared content bytes per block
	MaxLeadSamples int    // int16 samples per lead block
	MaxTicks       int    // annotation records
}

func defaultLimits() Limits {
	return Limits{
		MaxBlocks:      256,
		MaxBlockLen:    64 << 20, // 64 MiB
		MaxLeadSamples: 16 << 20,
		MaxTicks:       1 << 20,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxBlocks == 0 {
		l.MaxBlocks = d.MaxBlocks
	}
	if l.MaxBlockLen == 0 {
		l.MaxBlockLen = d.MaxBlockLen
	}
	if l.MaxLeadSamples == 0 {
		l.MaxLeadSamples = d.MaxLeadSamples
	}
	if l.MaxTicks == 0 {
		l.MaxTicks = d.MaxTicks
	}
	return l
}
