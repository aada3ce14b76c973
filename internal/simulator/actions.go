package simulator

import (
	"fmt"

	"github.com/jwkuo/bobasim/internal/models"
)

// Morning actions. Each validates its input and leaves state unchanged
// on failure; callers may retry with corrected input.

// GenerateCandidates returns up to three unique hiring candidates from
// the fixed pool, excluding anyone already hired.
func (s *Simulator) GenerateCandidates() []models.Staff {
	return s.staffFactory.GenerateCandidates(s.Staff, 3, s.Rng)
}

// Hire adds a candidate to the roster. Wages are paid at day end, so
// hiring itself costs nothing up front.
func (s *Simulator) Hire(candidate models.Staff) error {
	for _, emp := range s.Staff {
		if emp.Name == candidate.Name {
			return fmt.Errorf("%s is already on the roster", candidate.Name)
		}
	}
	s.Staff = append(s.Staff, candidate)
	return nil
}

// Fire removes an employee by name. The owner stays.
func (s *Simulator) Fire(name string) error {
	if name == models.OwnerName {
		return ErrOwnerProtected
	}
	for i, emp := range s.Staff {
		if emp.Name == name {
			s.Staff = append(s.Staff[:i], s.Staff[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no employee named %q", name)
}

// AddDrink creates a new menu entry. Packaging is injected into the
// recipe automatically.
func (s *Simulator) AddDrink(name string, ingredients map[string]int, basePrice float64, size string) error {
	if name == "" {
		return fmt.Errorf("drink name cannot be blank")
	}
	if basePrice < 0 {
		return fmt.Errorf("price must be non-negative, got %.2f", basePrice)
	}
	if size != models.SizeRegular && size != models.SizeTall {
		return fmt.Errorf("unknown size %q", size)
	}
	if len(ingredients) == 0 {
		return fmt.Errorf("recipe needs at least one ingredient")
	}
	for ingName, qty := range ingredients {
		if _, ok := models.IngredientByName(ingName); !ok {
			return fmt.Errorf("unknown ingredient %q", ingName)
		}
		if qty <= 0 {
			return fmt.Errorf("quantity for %q must be positive, got %d", ingName, qty)
		}
	}
	if s.DrinkByName(name) != nil {
		return fmt.Errorf("drink %q already on the menu", name)
	}

	s.Menu = append(s.Menu, models.NewDrink(name, ingredients, basePrice, 5, size))
	return nil
}

// SetPrice edits a drink's base price in place.
func (s *Simulator) SetPrice(drinkName string, price float64) error {
	if price < 0 {
		return fmt.Errorf("price must be non-negative, got %.2f", price)
	}
	drink := s.DrinkByName(drinkName)
	if drink == nil {
		return fmt.Errorf("no drink named %q", drinkName)
	}
	drink.SetPrice(price)
	return nil
}

// SetAdBudget commits today's advertising spend. The spend is debited
// immediately, capped at the daily maximum, and converts to an arrival
// boost of spend/100.
func (s *Simulator) SetAdBudget(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("ad budget must be non-negative, got %.2f", amount)
	}
	if amount > s.Cash {
		return fmt.Errorf("%w: ad budget $%.2f exceeds cash $%.2f", ErrInsufficientCash, amount, s.Cash)
	}
	if amount > s.Config.MaxAdBudget {
		amount = s.Config.MaxAdBudget
	}

	// Refund anything already committed today before applying the new
	// amount, so re-planning the morning is safe.
	s.Cash += s.dailyAdSpend
	s.Cash -= amount
	s.dailyAdSpend = amount
	s.AdFactor = amount / 100

	return nil
}

// UpgradeVenue replaces the venue with the next tier, paying the
// upgrade cost up front. Irreversible; the queue carries over empty.
func (s *Simulator) UpgradeVenue() error {
	next, ok := models.NextVenue(s.Venue)
	if !ok {
		return fmt.Errorf("venue is already at the top tier")
	}
	if next.UpgradeCost > s.Cash {
		return fmt.Errorf("%w: upgrade costs $%.2f, have $%.2f", ErrInsufficientCash, next.UpgradeCost, s.Cash)
	}

	s.Cash -= next.UpgradeCost
	s.Venue = next
	s.Queue = nil

	return nil
}

// ExpectedCustomers estimates today's arrivals for the morning
// packaging-sufficiency warning.
func (s *Simulator) ExpectedCustomers() int {
	return int(s.Venue.FootTraffic * (1 + s.AdFactor) * float64(s.Config.TurnsPerDay))
}
