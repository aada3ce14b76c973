package models

// NonPerishable is the shelf-life sentinel for packaging items that
// never spoil.
const NonPerishable = 9999

// Ingredient is a consumable item from the static catalog. Immutable
// after creation; referenced everywhere by Name.
type Ingredient struct {
	Name          string
	UnitCost      float64
	ShelfLifeDays int
	Desirability  float64
}

func (i Ingredient) Perishable() bool {
	return i.ShelfLifeDays < NonPerishable
}
