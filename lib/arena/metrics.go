package arena

// Metrics is a snapshot of arena usage.
type Metrics struct {
	Capacity    int     // Region size in bytes.
	InUse       int     // Bytes allocated.
	Available   int     // Bytes left.
	Utilization float64 // InUse / Capacity, 0 for an invalid arena.
}

func (a *Arena) Metrics() Metrics {
	m := Metrics{
		Capacity:  a.Cap(),
		InUse:     a.Len(),
		Available: a.Available(),
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.InUse) / float64(m.Capacity)
	}

	return m
}
