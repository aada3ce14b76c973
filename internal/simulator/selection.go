package simulator

import "github.com/jwkuo/bobasim/internal/models"

// pickDrink chooses a drink for the customer: filter the menu down to
// what the budget allows, then draw weighted by desirability boosted
// by the roster's combined charm. Returns nil when nothing on the menu
// is affordable.
func (s *Simulator) pickDrink(customer *models.Customer) *models.Drink {
	var affordable []*models.Drink
	for _, d := range s.Menu {
		if d.BasePrice <= customer.Budget {
			affordable = append(affordable, d)
		}
	}
	if len(affordable) == 0 {
		return nil
	}

	charmBoost := 1 + 0.05*float64(s.totalCharm())
	weights := make([]float64, len(affordable))
	for i, d := range affordable {
		weights[i] = d.Desirability * charmBoost
	}

	return affordable[weightedIndex(s.Rng, weights)]
}

// pickSubstitute re-draws among drinks that are both affordable and
// currently in stock. Used at service time when the substitution
// policy is enabled and the first choice cannot be made.
func (s *Simulator) pickSubstitute(customer *models.Customer) *models.Drink {
	var candidates []*models.Drink
	for _, d := range s.Menu {
		if d.BasePrice <= customer.Budget && s.CanFulfill(d.Recipe) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	weights := make([]float64, len(candidates))
	for i, d := range candidates {
		weights[i] = d.Desirability
	}
	return candidates[weightedIndex(s.Rng, weights)]
}

// DrinkByName finds a menu entry, or nil.
func (s *Simulator) DrinkByName(name string) *models.Drink {
	for _, d := range s.Menu {
		if d.Name == name {
			return d
		}
	}
	return nil
}
