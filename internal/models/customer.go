package models

// Customer is ephemeral: created on arrival, destroyed on service,
// timeout or rejection. DrinkName is fixed at arrival time.
type Customer struct {
	ID        string
	Name      string
	Patience  int
	Budget    float64
	DrinkName string
}
