package simulator

import (
	"fmt"
	"math"

	"github.com/jwkuo/bobasim/internal/models"
)

// Vendor tier names accepted by BuyBundle.
const (
	VendorRetail = "retail"
	VendorBulk   = "bulk"
)

// CanFulfill reports whether current stock covers every recipe line.
func (s *Simulator) CanFulfill(recipe models.Recipe) bool {
	for name, qty := range recipe {
		if s.Stock[name] < qty {
			return false
		}
	}
	return true
}

// deduct removes a recipe's ingredients from stock. Callers must check
// CanFulfill first; deducting insufficient stock is a programming
// error, not a recoverable condition.
func (s *Simulator) deduct(recipe models.Recipe) {
	for name, qty := range recipe {
		s.Stock[name] -= qty
	}
}

// GenerateOffers draws fresh vendor offers for every catalog
// ingredient: retail at 1.05-1.20x base cost from a single unit, bulk
// at 0.70-0.85x base cost from 200 units. Offers are regenerated on
// every call; callers generate once per morning and reuse.
func (s *Simulator) GenerateOffers() map[string]models.Offer {
	offers := make(map[string]models.Offer, len(models.Catalog))
	for _, ing := range models.Catalog {
		offers[ing.Name] = models.Offer{
			Bulk: models.Bundle{
				MinQty:    200,
				UnitPrice: roundTo(ing.UnitCost*(0.70+s.Rng.Float64()*0.15), 3),
			},
			Retail: models.Bundle{
				MinQty:    1,
				UnitPrice: roundTo(ing.UnitCost*(1.05+s.Rng.Float64()*0.15), 3),
			},
		}
	}
	return offers
}

// BuyBundle purchases bundles of an ingredient from one of the
// morning's vendor offers. Cash is debited immediately and counts
// toward the day's ingredient cost; buying perishable stock resets its
// freshness countdown.
func (s *Simulator) BuyBundle(ingredientName, vendor string, bundles int) error {
	ing, ok := models.IngredientByName(ingredientName)
	if !ok {
		return fmt.Errorf("unknown ingredient %q", ingredientName)
	}
	if bundles <= 0 {
		return fmt.Errorf("bundle count must be positive, got %d", bundles)
	}

	offer, ok := s.Offers[ing.Name]
	if !ok {
		return fmt.Errorf("no offer for %q; offers are generated each morning", ing.Name)
	}

	var qty int
	var cost float64
	switch vendor {
	case VendorRetail:
		qty = offer.RetailBundleQty() * bundles
		cost = roundTo(float64(offer.RetailBundleQty())*offer.Retail.UnitPrice*float64(bundles), 2)
	case VendorBulk:
		qty = offer.Bulk.MinQty * bundles
		cost = roundTo(float64(offer.Bulk.MinQty)*offer.Bulk.UnitPrice*float64(bundles), 2)
	default:
		return fmt.Errorf("unknown vendor tier %q", vendor)
	}

	if cost > s.Cash {
		return fmt.Errorf("%w: need $%.2f, have $%.2f", ErrInsufficientCash, cost, s.Cash)
	}

	s.Cash -= cost
	s.dailyIngredientCost += cost
	s.Stock[ing.Name] += qty
	if ing.Perishable() {
		s.FreshLeft[ing.Name] = ing.ShelfLifeDays
	}

	return nil
}

// applySpoilage runs the end-of-day freshness step: every perishable
// loses a day of freshness, and stock is zeroed once it runs out.
// The countdown only resets when the ingredient is repurchased, so
// never-restocked perishables are discarded once their initial shelf
// life elapses regardless of consumption.
// TODO: confirm with design whether the non-renewing countdown for
// untouched stock is intended or should reset daily on remaining qty.
func (s *Simulator) applySpoilage() []string {
	var spoiled []string
	for _, ing := range models.Catalog {
		if !ing.Perishable() {
			continue
		}
		s.FreshLeft[ing.Name]--
		if s.FreshLeft[ing.Name] <= 0 {
			if s.Stock[ing.Name] > 0 {
				spoiled = append(spoiled, ing.Name)
			}
			s.Stock[ing.Name] = 0
			s.FreshLeft[ing.Name] = 0
		}
	}
	return spoiled
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
