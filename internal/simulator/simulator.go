package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jwkuo/bobasim/internal/factories"
	"github.com/jwkuo/bobasim/internal/models"
)

// Simulator owns the full game state for one session. It is not safe
// for concurrent turn advances; callers must serialize all mutations.
type Simulator struct {
	Config *models.Config
	Rng    *rand.Rand

	Cash  float64
	Day   int
	Venue models.Venue
	Staff []models.Staff
	Menu  []*models.Drink
	Queue []*models.Customer
	Loans []*models.Loan

	// Stock and FreshLeft are parallel maps keyed by ingredient name.
	Stock     map[string]int
	FreshLeft map[string]int

	// Offers holds the vendor offers generated for the current
	// morning. Regenerated by StartDay.
	Offers map[string]models.Offer

	AdFactor  float64
	StartTime time.Time

	customerFactory factories.CustomerFactory
	staffFactory    factories.StaffFactory

	// Daily accumulators, reset by StartDay.
	openingCash         float64
	dailyRevenue        float64
	dailyIngredientCost float64
	dailyAdSpend        float64
	dailyLoanPayments   float64
	dayServed           int
	dayLostQueue        int
	dayLostStock        int
	dayLostPatience     int
	hourlySales         map[string]map[string]int

	turnIndex  int
	daySettled bool
	bankrupt   bool
}

// NewSimulator builds a fresh session: starting cash, the Stand venue,
// the owner behind the counter, one classic drink on the menu and a
// modest opening inventory.
func NewSimulator(config *models.Config) *Simulator {
	seed := int64(config.Seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := &Simulator{
		Config:    config,
		Rng:       rand.New(rand.NewSource(seed)),
		Cash:      config.StartingCash,
		Day:       1,
		Venue:     models.VenueStand,
		Staff:     []models.Staff{models.Owner()},
		Stock:     make(map[string]int, len(models.Catalog)),
		FreshLeft: make(map[string]int, len(models.Catalog)),
		StartTime: time.Now(),
	}

	for _, ing := range models.Catalog {
		if ing.Perishable() {
			sim.Stock[ing.Name] = 50
		} else {
			sim.Stock[ing.Name] = 100
		}
		sim.FreshLeft[ing.Name] = ing.ShelfLifeDays
	}

	sim.Menu = []*models.Drink{
		models.NewDrink("Classic Milk Tea", map[string]int{
			"Boba Pearls": 1,
			"Cane Sugar":  1,
			"Whole Milk":  1,
		}, 4.50, 5, models.SizeRegular),
	}

	return sim
}

// Bankrupt reports whether the session has hit the terminal
// negative-cash condition.
func (s *Simulator) Bankrupt() bool {
	return s.bankrupt
}

// TotalCapacity is the number of customers the roster can serve in one
// turn.
func (s *Simulator) TotalCapacity() int {
	capacity := 0
	for _, emp := range s.Staff {
		capacity += emp.Capacity
	}
	return capacity
}

func (s *Simulator) totalCharm() int {
	charm := 0
	for _, emp := range s.Staff {
		charm += emp.Charm
	}
	return charm
}

// clockFromTurn maps a turn index to the wall clock, with the day
// opening at 08:00 and each turn covering 15 simulated minutes.
func clockFromTurn(turnIdx int) string {
	minutes := turnIdx * models.MinutesPerTurn
	hour := models.OpeningHour + minutes/60
	minute := minutes % 60
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// eventTime synthesizes a timestamp for the current day and turn so
// output sinks can partition events.
func (s *Simulator) eventTime(turnIdx int) time.Time {
	day := s.StartTime.AddDate(0, 0, s.Day-1)
	opening := time.Date(day.Year(), day.Month(), day.Day(), models.OpeningHour, 0, 0, 0, day.Location())
	return opening.Add(time.Duration(turnIdx*models.MinutesPerTurn) * time.Minute)
}
