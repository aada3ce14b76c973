package models

import (
	"math"
	"testing"
)

func TestCatalogLookup(t *testing.T) {
	ing, ok := IngredientByName("Whole Milk")
	if !ok {
		t.Fatal("Whole Milk missing from catalog")
	}
	if ing.UnitCost != 0.15 || ing.ShelfLifeDays != 5 {
		t.Errorf("Whole Milk = %+v, want cost 0.15 shelf 5", ing)
	}
	if !ing.Perishable() {
		t.Error("Whole Milk should be perishable")
	}

	if _, ok := IngredientByName("Unobtainium"); ok {
		t.Error("unknown ingredient found")
	}

	cup, _ := IngredientByName(CupRegular)
	if cup.Perishable() {
		t.Error("packaging should never spoil")
	}
}

func TestCatalogCoversAllCategories(t *testing.T) {
	want := 0
	for _, group := range IngredientsByCategory {
		want += len(group)
	}
	if len(Catalog) != want {
		t.Errorf("catalog lists %d ingredients, categories hold %d", len(Catalog), want)
	}
}

func TestNextVenueChain(t *testing.T) {
	truck, ok := NextVenue(VenueStand)
	if !ok || truck.Name != VenueTruck.Name {
		t.Fatalf("NextVenue(stand) = %q, %v", truck.Name, ok)
	}
	store, ok := NextVenue(truck)
	if !ok || store.Name != VenueStore.Name {
		t.Fatalf("NextVenue(truck) = %q, %v", store.Name, ok)
	}
	if _, ok := NextVenue(store); ok {
		t.Error("store should be the top tier")
	}
}

func TestLoanOptionLookupAndPayment(t *testing.T) {
	opt, ok := LoanOptionByName("Neighborhood Credit Union")
	if !ok {
		t.Fatal("credit union option missing")
	}
	if math.Abs(opt.PaymentPerDay()-25) > 1e-9 {
		t.Errorf("daily payment = %v, want 25 (5%% of 500)", opt.PaymentPerDay())
	}
	if _, ok := LoanOptionByName("Generous Uncle"); ok {
		t.Error("unknown loan option found")
	}
}

func TestOfferRetailBundleQty(t *testing.T) {
	offer := Offer{Bulk: Bundle{MinQty: 200}, Retail: Bundle{MinQty: 1}}
	if got := offer.RetailBundleQty(); got != 50 {
		t.Errorf("retail bundle qty = %d, want 50", got)
	}
	tiny := Offer{Bulk: Bundle{MinQty: 2}}
	if got := tiny.RetailBundleQty(); got != 1 {
		t.Errorf("retail bundle qty = %d, want floor of 1", got)
	}
}
