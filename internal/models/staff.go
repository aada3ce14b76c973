package models

// OwnerName is the non-removable first roster entry.
const OwnerName = "Owner"

// Staff is a single flat employee record. Charm (0-3) boosts drink
// selection weights market-wide; Reliability is reserved for future
// absence modelling and is not read by the engine yet.
type Staff struct {
	Name        string
	Wage        float64
	Capacity    int
	Charm       int
	Reliability int
}

// Owner returns the zero-wage owner every roster starts with.
func Owner() Staff {
	return Staff{Name: OwnerName, Wage: 0, Capacity: 1, Charm: 1, Reliability: 10}
}
