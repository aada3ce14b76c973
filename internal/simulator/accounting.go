package simulator

import "github.com/jwkuo/bobasim/internal/models"

// StartDay opens the morning phase: daily counters reset, opening cash
// captured, fresh vendor offers drawn, advertising cleared. Morning
// actions (hiring, purchases, pricing, loans, ads) happen between
// StartDay and the day's first AdvanceTurn.
func (s *Simulator) StartDay() error {
	if s.bankrupt {
		return ErrBankrupt
	}

	s.openingCash = s.Cash
	s.dailyRevenue = 0
	s.dailyIngredientCost = 0
	s.dailyAdSpend = 0
	s.dailyLoanPayments = 0
	s.dayServed = 0
	s.dayLostQueue = 0
	s.dayLostStock = 0
	s.dayLostPatience = 0
	s.hourlySales = make(map[string]map[string]int)
	s.turnIndex = 0
	s.daySettled = false
	s.AdFactor = 0

	s.Offers = s.GenerateOffers()

	return nil
}

// SettleDay closes the books: loans settle first, then wages and rent
// are debited. Revenue is the sum of sold drink prices, not the cash
// delta, since cash moves with same-day purchases too. A negative
// closing balance bankrupts the session; settlement is never applied
// twice.
func (s *Simulator) SettleDay() (models.DaySummary, error) {
	if s.bankrupt {
		return models.DaySummary{}, ErrBankrupt
	}
	if s.daySettled {
		return models.DaySummary{}, ErrDaySettled
	}
	s.daySettled = true

	loanPayments := s.settleLoans()

	wages := 0.0
	for _, emp := range s.Staff {
		wages += emp.Wage
	}
	rent := s.Venue.Rent

	s.Cash -= wages + rent

	expenses := wages + rent + s.dailyIngredientCost + s.dailyAdSpend + loanPayments

	summary := models.DaySummary{
		Day:            s.Day,
		Served:         s.dayServed,
		LostQueue:      s.dayLostQueue,
		LostStock:      s.dayLostStock,
		LostPatience:   s.dayLostPatience,
		Revenue:        s.dailyRevenue,
		Wages:          wages,
		Rent:           rent,
		IngredientCost: s.dailyIngredientCost,
		AdSpend:        s.dailyAdSpend,
		LoanPayments:   loanPayments,
		Profit:         s.dailyRevenue - expenses,
		CashEnd:        s.Cash,
		HourlySales:    s.hourlySales,
	}

	s.applySpoilage()
	s.Day++

	if s.Cash < 0 {
		s.bankrupt = true
		summary.Bankrupt = true
		return summary, ErrBankrupt
	}

	return summary, nil
}
