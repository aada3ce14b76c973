package models

// Drink sizes.
const (
	SizeRegular = "regular"
	SizeTall    = "tall"
)

const tallSizeBonus = 0.30

// Recipe maps ingredient name to the quantity needed for one drink.
// It is built once at drink creation, packaging included, and never
// mutated afterwards.
type Recipe map[string]int

// NewRecipe copies the given ingredient quantities and injects the
// mandatory packaging for the size: one cup, one straw, one seal.
func NewRecipe(ingredients map[string]int, size string) Recipe {
	recipe := make(Recipe, len(ingredients)+3)
	for name, qty := range ingredients {
		recipe[name] = qty
	}

	cup := CupRegular
	if size == SizeTall {
		cup = CupTall
	}
	recipe[cup]++
	recipe[Straw]++
	recipe[Seal]++

	return recipe
}

// TotalDesirability sums the desirability contributions of all
// ingredients. The drink's base desirability is not included.
func (r Recipe) TotalDesirability() float64 {
	total := 0.0
	for name, qty := range r {
		if ing, ok := IngredientByName(name); ok {
			total += ing.Desirability * float64(qty)
		}
	}
	return total
}

// Drink is a sellable menu entry. BasePrice is the only mutable field.
type Drink struct {
	Name         string
	BasePrice    float64
	Size         string
	Recipe       Recipe
	Desirability float64
}

// NewDrink builds a drink with its final recipe and derived
// desirability score.
func NewDrink(name string, ingredients map[string]int, basePrice, baseDesirability float64, size string) *Drink {
	recipe := NewRecipe(ingredients, size)

	desirability := baseDesirability + recipe.TotalDesirability()
	if size == SizeTall {
		desirability += tallSizeBonus
	}

	return &Drink{
		Name:         name,
		BasePrice:    basePrice,
		Size:         size,
		Recipe:       recipe,
		Desirability: desirability,
	}
}

func (d *Drink) SetPrice(price float64) {
	d.BasePrice = price
}
