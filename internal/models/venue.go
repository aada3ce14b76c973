package models

// Venue is the active business location. Exactly one venue is active
// at a time; upgrading replaces it entirely.
type Venue struct {
	Name         string
	MaxLine      int
	FootTraffic  float64
	Rent         float64
	BasePatience int
	UpgradeCost  float64 // cost to upgrade INTO this venue
}

// The three venue tiers, in upgrade order.
var (
	VenueStand = Venue{Name: "Boba Stand", MaxLine: 5, FootTraffic: 2, Rent: 20, BasePatience: 3, UpgradeCost: 0}
	VenueTruck = Venue{Name: "Boba Truck", MaxLine: 12, FootTraffic: 4, Rent: 40, BasePatience: 4, UpgradeCost: 500}
	VenueStore = Venue{Name: "Boba Store", MaxLine: 30, FootTraffic: 8, Rent: 80, BasePatience: 5, UpgradeCost: 1000}
)

var venueTiers = []Venue{VenueStand, VenueTruck, VenueStore}

// NextVenue returns the next tier up from the given venue, or false
// when already at the top tier.
func NextVenue(current Venue) (Venue, bool) {
	for i, v := range venueTiers {
		if v.Name == current.Name && i+1 < len(venueTiers) {
			return venueTiers[i+1], true
		}
	}
	return Venue{}, false
}
