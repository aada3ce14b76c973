package models

// TurnResult reports the outcome of a single 15-minute turn.
type TurnResult struct {
	Served       int
	LostQueue    int
	LostStock    int
	LostPatience int
	DrinksSold   []string
	QueueLength  int
	Clock        string
}

// DaySummary reports the end-of-day financial close.
type DaySummary struct {
	Day            int
	Served         int
	LostQueue      int
	LostStock      int
	LostPatience   int
	Revenue        float64
	Wages          float64
	Rent           float64
	IngredientCost float64
	AdSpend        float64
	LoanPayments   float64
	Profit         float64
	CashEnd        float64
	Bankrupt       bool

	// HourlySales maps clock hour -> drink name -> units sold, for
	// downstream charting.
	HourlySales map[string]map[string]int
}

// Bundle is a fixed-size purchase unit offered by a vendor tier.
type Bundle struct {
	MinQty    int
	UnitPrice float64
}

// Offer is the pair of vendor tiers generated per ingredient each
// morning. Not persisted across days.
type Offer struct {
	Bulk   Bundle
	Retail Bundle
}

// RetailBundleQty is the retail bundle size derived from the bulk
// minimum (a quarter of it, at least one unit).
func (o Offer) RetailBundleQty() int {
	qty := o.Bulk.MinQty / 4
	if qty < 1 {
		qty = 1
	}
	return qty
}

// EventMessage is a serialized event ready for an output destination.
type EventMessage struct {
	Topic   string
	Message []byte
}
