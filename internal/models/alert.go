package models

// AlertReport partitions one aggregation cycle's quotes into alert bands.
// Derived on demand, never persisted.
type AlertReport struct {
	Critical []*Commodity `json:"critical"`
	Warnings []*Commodity `json:"warnings"`
}

// Quiet reports whether no commodity crossed an alert threshold.
func (r *AlertReport) Quiet() bool {
	return len(r.Critical) == 0 && len(r.Warnings) == 0
}
