package factories

import (
	"math"
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/jwkuo/bobasim/internal/models"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

type CustomerFactory struct{}

// CreateCustomer samples a fresh walk-up customer. Budget is a uniform
// draw in 4-8 currency units with a small uniform wiggle, rounded to
// cents. All randomness goes through the caller's seeded rng so turns
// are reproducible.
func (cf *CustomerFactory) CreateCustomer(basePatience int, rng *rand.Rand) *models.Customer {
	budget := 4.0 + rng.Float64()*4.0 + (rng.Float64()*2.0 - 1.0)
	budget = math.Round(budget*100) / 100

	return &models.Customer{
		ID:       cuid.New(),
		Name:     fake.Person().FirstName(),
		Patience: basePatience,
		Budget:   budget,
	}
}
