package factories

import (
	"math/rand"

	"github.com/jwkuo/bobasim/internal/models"
)

type StaffFactory struct{}

// GenerateCandidates picks up to n unique hiring candidates from the
// fixed employee pool, excluding anyone already on the roster.
func (sf *StaffFactory) GenerateCandidates(roster []models.Staff, n int, rng *rand.Rand) []models.Staff {
	hired := make(map[string]bool, len(roster))
	for _, emp := range roster {
		hired[emp.Name] = true
	}

	var remaining []models.Staff
	for _, cand := range models.EmployeePool {
		if !hired[cand.Name] {
			remaining = append(remaining, cand)
		}
	}

	if n > len(remaining) {
		n = len(remaining)
	}

	candidates := make([]models.Staff, 0, n)
	for _, idx := range rng.Perm(len(remaining))[:n] {
		candidates = append(candidates, remaining[idx])
	}
	return candidates
}
