package simulator

import "github.com/jwkuo/bobasim/internal/models"

// AdvanceTurn runs exactly one turn: arrivals and queue admission,
// capacity-limited service against stock, then patience decay for
// everyone still waiting. The whole turn is computed synchronously.
func (s *Simulator) AdvanceTurn() (models.TurnResult, error) {
	if s.bankrupt {
		return models.TurnResult{}, ErrBankrupt
	}

	result := models.TurnResult{Clock: clockFromTurn(s.turnIndex)}

	// 1. Arrivals and enqueue. Customers with no affordable drink walk
	// away before joining the line.
	arrivals := s.generateArrivals()
	for i := 0; i < arrivals; i++ {
		customer := s.customerFactory.CreateCustomer(s.Venue.BasePatience, s.Rng)
		drink := s.pickDrink(customer)
		if drink == nil {
			continue
		}
		customer.DrinkName = drink.Name

		if len(s.Queue) < s.Venue.MaxLine {
			s.Queue = append(s.Queue, customer)
		} else {
			result.LostQueue++
		}
	}

	// 2. Service, front of the queue first.
	capacity := s.TotalCapacity()
	toServe := capacity
	if len(s.Queue) < toServe {
		toServe = len(s.Queue)
	}

	for i := 0; i < toServe; i++ {
		customer := s.Queue[0]
		s.Queue = s.Queue[1:]

		drink := s.DrinkByName(customer.DrinkName)
		if drink == nil || !s.CanFulfill(drink.Recipe) {
			if s.Config != nil && s.Config.AllowSubstitution {
				drink = s.pickSubstitute(customer)
			} else {
				drink = nil
			}
			if drink == nil {
				result.LostStock++
				continue
			}
		}

		s.deduct(drink.Recipe)
		s.Cash += drink.BasePrice
		s.dailyRevenue += drink.BasePrice
		result.Served++
		result.DrinksSold = append(result.DrinksSold, drink.Name)
		s.recordSale(drink.Name)
	}

	// 3. Patience decay for everyone not served this turn.
	remaining := s.Queue[:0]
	for _, customer := range s.Queue {
		customer.Patience--
		if customer.Patience > 0 {
			remaining = append(remaining, customer)
		} else {
			result.LostPatience++
		}
	}
	s.Queue = remaining

	result.QueueLength = len(s.Queue)

	s.dayServed += result.Served
	s.dayLostQueue += result.LostQueue
	s.dayLostStock += result.LostStock
	s.dayLostPatience += result.LostPatience
	s.turnIndex++

	return result, nil
}

// recordSale buckets a sale into the hour it happened, for the daily
// sales chart.
func (s *Simulator) recordSale(drinkName string) {
	if s.hourlySales == nil {
		s.hourlySales = make(map[string]map[string]int)
	}
	clock := clockFromTurn(s.turnIndex)
	hour := clock[:2] + ":00"
	if s.hourlySales[hour] == nil {
		s.hourlySales[hour] = make(map[string]int)
	}
	s.hourlySales[hour][drinkName]++
}
