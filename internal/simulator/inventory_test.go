package simulator

import (
	"errors"
	"testing"

	"github.com/jwkuo/bobasim/internal/models"
)

func TestGenerateOffersWithinBands(t *testing.T) {
	sim := newTestSimulator(t)
	offers := sim.GenerateOffers()

	if len(offers) != len(models.Catalog) {
		t.Fatalf("offers for %d ingredients, want %d", len(offers), len(models.Catalog))
	}

	// Prices are rounded to thousandths, so allow that much slack at
	// the band edges.
	const eps = 0.0006
	for _, ing := range models.Catalog {
		offer, ok := offers[ing.Name]
		if !ok {
			t.Fatalf("no offer for %q", ing.Name)
		}
		if offer.Retail.MinQty != 1 {
			t.Errorf("%s retail min qty = %d, want 1", ing.Name, offer.Retail.MinQty)
		}
		if offer.Bulk.MinQty != 200 {
			t.Errorf("%s bulk min qty = %d, want 200", ing.Name, offer.Bulk.MinQty)
		}
		if p := offer.Retail.UnitPrice; p < ing.UnitCost*1.05-eps || p > ing.UnitCost*1.20+eps {
			t.Errorf("%s retail price %.4f outside [%.4f, %.4f]",
				ing.Name, p, ing.UnitCost*1.05, ing.UnitCost*1.20)
		}
		if p := offer.Bulk.UnitPrice; p < ing.UnitCost*0.70-eps || p > ing.UnitCost*0.85+eps {
			t.Errorf("%s bulk price %.4f outside [%.4f, %.4f]",
				ing.Name, p, ing.UnitCost*0.70, ing.UnitCost*0.85)
		}
	}
}

func TestBuyBundleRetail(t *testing.T) {
	sim := newTestSimulator(t)
	sim.Offers = map[string]models.Offer{
		"Black Tea": {
			Bulk:   models.Bundle{MinQty: 200, UnitPrice: 0.08},
			Retail: models.Bundle{MinQty: 1, UnitPrice: 0.12},
		},
	}
	stockBefore := sim.Stock["Black Tea"]
	cashBefore := sim.Cash

	if err := sim.BuyBundle("Black Tea", VendorRetail, 2); err != nil {
		t.Fatalf("BuyBundle: %v", err)
	}

	// Retail bundles are a quarter of the bulk minimum: 50 units each.
	if got, want := sim.Stock["Black Tea"], stockBefore+100; got != want {
		t.Errorf("stock = %d, want %d", got, want)
	}
	if want := cashBefore - 12.00; !almostEqual(sim.Cash, want) {
		t.Errorf("cash = %.2f, want %.2f", sim.Cash, want)
	}
	if sim.FreshLeft["Black Tea"] != 365 {
		t.Errorf("freshness = %d, want reset to 365", sim.FreshLeft["Black Tea"])
	}
}

func TestBuyBundleBulk(t *testing.T) {
	sim := newTestSimulator(t)
	sim.Cash = 100
	sim.Offers = map[string]models.Offer{
		"Black Tea": {
			Bulk:   models.Bundle{MinQty: 200, UnitPrice: 0.08},
			Retail: models.Bundle{MinQty: 1, UnitPrice: 0.12},
		},
	}
	stockBefore := sim.Stock["Black Tea"]

	if err := sim.BuyBundle("Black Tea", VendorBulk, 1); err != nil {
		t.Fatalf("BuyBundle: %v", err)
	}
	if got, want := sim.Stock["Black Tea"], stockBefore+200; got != want {
		t.Errorf("stock = %d, want %d", got, want)
	}
	if want := 100 - 16.00; !almostEqual(sim.Cash, want) {
		t.Errorf("cash = %.2f, want %.2f", sim.Cash, want)
	}
}

func TestBuyBundleRejections(t *testing.T) {
	sim := newTestSimulator(t)
	sim.Offers = sim.GenerateOffers()

	cases := []struct {
		name       string
		ingredient string
		vendor     string
		bundles    int
	}{
		{"unknown ingredient", "Unobtainium", VendorRetail, 1},
		{"unknown vendor", "Black Tea", "wholesale", 1},
		{"zero bundles", "Black Tea", VendorRetail, 0},
		{"negative bundles", "Black Tea", VendorBulk, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := sim.BuyBundle(tc.ingredient, tc.vendor, tc.bundles); err == nil {
				t.Errorf("BuyBundle(%q, %q, %d) succeeded, want error",
					tc.ingredient, tc.vendor, tc.bundles)
			}
		})
	}
}

func TestBuyBundleInsufficientCash(t *testing.T) {
	sim := newTestSimulator(t)
	sim.Cash = 5
	sim.Offers = map[string]models.Offer{
		"Black Tea": {
			Bulk:   models.Bundle{MinQty: 200, UnitPrice: 0.08},
			Retail: models.Bundle{MinQty: 1, UnitPrice: 0.12},
		},
	}
	stockBefore := sim.Stock["Black Tea"]

	err := sim.BuyBundle("Black Tea", VendorBulk, 1)
	if !errors.Is(err, ErrInsufficientCash) {
		t.Fatalf("err = %v, want ErrInsufficientCash", err)
	}
	if sim.Stock["Black Tea"] != stockBefore {
		t.Errorf("stock changed on a failed purchase")
	}
	if !almostEqual(sim.Cash, 5) {
		t.Errorf("cash changed on a failed purchase: %.2f", sim.Cash)
	}
}

func TestApplySpoilage(t *testing.T) {
	sim := newTestSimulator(t)

	// Strawberry has a two-day shelf life. It survives one settlement
	// and is discarded on the second.
	if sim.FreshLeft["Strawberry"] != 2 {
		t.Fatalf("initial freshness = %d, want 2", sim.FreshLeft["Strawberry"])
	}

	sim.applySpoilage()
	if sim.Stock["Strawberry"] == 0 {
		t.Fatal("stock discarded a day early")
	}

	spoiled := sim.applySpoilage()
	if sim.Stock["Strawberry"] != 0 {
		t.Errorf("stock = %d after shelf life elapsed, want 0", sim.Stock["Strawberry"])
	}
	found := false
	for _, name := range spoiled {
		if name == "Strawberry" {
			found = true
		}
	}
	if !found {
		t.Errorf("spoiled list %v missing Strawberry", spoiled)
	}

	// Packaging never spoils.
	if sim.Stock[models.CupRegular] != 100 {
		t.Errorf("packaging stock = %d, want untouched 100", sim.Stock[models.CupRegular])
	}

	// A repurchase restarts the countdown.
	sim.Offers = map[string]models.Offer{
		"Strawberry": {
			Bulk:   models.Bundle{MinQty: 200, UnitPrice: 0.18},
			Retail: models.Bundle{MinQty: 1, UnitPrice: 0.28},
		},
	}
	if err := sim.BuyBundle("Strawberry", VendorRetail, 1); err != nil {
		t.Fatalf("BuyBundle: %v", err)
	}
	if sim.FreshLeft["Strawberry"] != 2 {
		t.Errorf("freshness after restock = %d, want 2", sim.FreshLeft["Strawberry"])
	}
}

func TestCanFulfillAndDeduct(t *testing.T) {
	sim := newTestSimulator(t)
	recipe := models.Recipe{"Black Tea": 2, models.Straw: 1}

	if !sim.CanFulfill(recipe) {
		t.Fatal("CanFulfill = false with full opening stock")
	}

	before := sim.Stock["Black Tea"]
	sim.deduct(recipe)
	if got, want := sim.Stock["Black Tea"], before-2; got != want {
		t.Errorf("stock = %d, want %d", got, want)
	}

	sim.Stock["Black Tea"] = 1
	if sim.CanFulfill(recipe) {
		t.Error("CanFulfill = true with short stock")
	}
}
