package simulator

// generateArrivals returns the number of walk-up customers for one
// turn: Poisson with mean footTraffic * (1 + adFactor).
func (s *Simulator) generateArrivals() int {
	lam := s.Venue.FootTraffic * (1 + s.AdFactor)
	return poisson(s.Rng, lam)
}
