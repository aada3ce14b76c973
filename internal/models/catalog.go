package models

// Central gameplay constants.
const (
	StartingCash   = 100.0
	MaxAdBudget    = 500.0
	WageMultiplier = 10

	MinutesPerTurn = 15
	OpeningHour    = 8
	TurnsPerDay    = (8 * 60) / MinutesPerTurn // 08:00-16:00
)

// Packaging item names, injected into every recipe at drink creation.
const (
	CupRegular = "Cup (Regular)"
	CupTall    = "Cup (Tall)"
	CupJumbo   = "Cup (Jumbo)"
	Straw      = "Straw"
	Seal       = "Seal"
	DomeLid    = "Dome Lid"
)

// IngredientsByCategory is the static catalog, grouped the way the
// purchasing screen presents it. Loaded once at process start and
// never mutated.
var IngredientsByCategory = map[string][]Ingredient{
	"Milk": {
		{Name: "Whole Milk", UnitCost: 0.15, ShelfLifeDays: 5, Desirability: 0.10},
		{Name: "Skim Milk", UnitCost: 0.14, ShelfLifeDays: 5, Desirability: 0.08},
		{Name: "Oat Milk", UnitCost: 0.22, ShelfLifeDays: 5, Desirability: 0.12},
		{Name: "Almond Milk", UnitCost: 0.25, ShelfLifeDays: 5, Desirability: 0.13},
		{Name: "Soy Milk", UnitCost: 0.18, ShelfLifeDays: 5, Desirability: 0.09},
	},
	"Tea": {
		{Name: "Black Tea", UnitCost: 0.10, ShelfLifeDays: 365, Desirability: 0.05},
		{Name: "Green Tea", UnitCost: 0.11, ShelfLifeDays: 365, Desirability: 0.06},
		{Name: "Oolong Tea", UnitCost: 0.13, ShelfLifeDays: 365, Desirability: 0.07},
		{Name: "Fruit Tea", UnitCost: 0.12, ShelfLifeDays: 365, Desirability: 0.08},
		{Name: "Earl Grey Tea", UnitCost: 0.14, ShelfLifeDays: 365, Desirability: 0.07},
	},
	"Sweetener": {
		{Name: "Cane Sugar", UnitCost: 0.03, ShelfLifeDays: 365, Desirability: 0.07},
		{Name: "Refined Sugar", UnitCost: 0.02, ShelfLifeDays: 365, Desirability: 0.05},
		{Name: "Brown Sugar", UnitCost: 0.04, ShelfLifeDays: 365, Desirability: 0.09},
		{Name: "Honey", UnitCost: 0.08, ShelfLifeDays: 90, Desirability: 0.12},
		{Name: "Agave Syrup", UnitCost: 0.09, ShelfLifeDays: 180, Desirability: 0.10},
	},
	"Topping": {
		{Name: "Boba Pearls", UnitCost: 0.10, ShelfLifeDays: 7, Desirability: 0.10},
		{Name: "Golden Boba", UnitCost: 0.12, ShelfLifeDays: 7, Desirability: 0.12},
		{Name: "Crystal Boba", UnitCost: 0.11, ShelfLifeDays: 7, Desirability: 0.11},
		{Name: "Strawberry", UnitCost: 0.25, ShelfLifeDays: 2, Desirability: 0.20},
		{Name: "Mango", UnitCost: 0.28, ShelfLifeDays: 2, Desirability: 0.22},
		{Name: "Lychee", UnitCost: 0.30, ShelfLifeDays: 2, Desirability: 0.25},
		{Name: "Grass Jelly", UnitCost: 0.16, ShelfLifeDays: 10, Desirability: 0.10},
		{Name: "Coconut Jelly", UnitCost: 0.18, ShelfLifeDays: 10, Desirability: 0.11},
		{Name: "Aloe Vera", UnitCost: 0.20, ShelfLifeDays: 10, Desirability: 0.12},
	},
	"Topper": {
		{Name: "Cheese Foam", UnitCost: 0.30, ShelfLifeDays: 3, Desirability: 0.30},
		{Name: "Whipped Cream", UnitCost: 0.18, ShelfLifeDays: 3, Desirability: 0.15},
		{Name: "Matcha Powder", UnitCost: 0.22, ShelfLifeDays: 365, Desirability: 0.20},
		{Name: "Taro Powder", UnitCost: 0.20, ShelfLifeDays: 365, Desirability: 0.18},
		{Name: "Chocolate Powder", UnitCost: 0.19, ShelfLifeDays: 365, Desirability: 0.15},
	},
	"Ice": {
		{Name: "Ice Cubes", UnitCost: 0.01, ShelfLifeDays: 1, Desirability: 0},
	},
	"Packaging": {
		{Name: CupRegular, UnitCost: 0.05, ShelfLifeDays: NonPerishable},
		{Name: CupTall, UnitCost: 0.07, ShelfLifeDays: NonPerishable},
		{Name: CupJumbo, UnitCost: 0.10, ShelfLifeDays: NonPerishable},
		{Name: Straw, UnitCost: 0.01, ShelfLifeDays: NonPerishable},
		{Name: Seal, UnitCost: 0.012, ShelfLifeDays: NonPerishable},
		{Name: DomeLid, UnitCost: 0.015, ShelfLifeDays: NonPerishable},
	},
}

var (
	// Catalog lists every ingredient in stable display order.
	Catalog []Ingredient

	ingredientIndex map[string]Ingredient
)

var categoryOrder = []string{"Milk", "Tea", "Sweetener", "Topping", "Topper", "Ice", "Packaging"}

func init() {
	ingredientIndex = make(map[string]Ingredient)
	for _, category := range categoryOrder {
		for _, ing := range IngredientsByCategory[category] {
			Catalog = append(Catalog, ing)
			ingredientIndex[ing.Name] = ing
		}
	}
}

// IngredientByName looks an ingredient up in the static catalog.
func IngredientByName(name string) (Ingredient, bool) {
	ing, ok := ingredientIndex[name]
	return ing, ok
}

// EmployeePool is the fixed pool hiring candidates are drawn from.
// The Owner is not part of the pool; they come with the stand.
var EmployeePool = []Staff{
	{Name: "Alex", Wage: 18, Capacity: 2, Charm: 1, Reliability: 8},
	{Name: "Jordan", Wage: 22, Capacity: 3, Charm: 2, Reliability: 6},
	{Name: "Casey", Wage: 15, Capacity: 1, Charm: 3, Reliability: 9},
	{Name: "Riley", Wage: 20, Capacity: 2, Charm: 2, Reliability: 7},
	{Name: "Taylor", Wage: 25, Capacity: 3, Charm: 1, Reliability: 10},
	{Name: "Morgan", Wage: 17, Capacity: 2, Charm: 0, Reliability: 5},
	{Name: "Jamie", Wage: 14, Capacity: 1, Charm: 2, Reliability: 8},
	{Name: "Avery", Wage: 23, Capacity: 3, Charm: 3, Reliability: 4},
	{Name: "Sam", Wage: 16, Capacity: 2, Charm: 1, Reliability: 6},
	{Name: "Devon", Wage: 19, Capacity: 2, Charm: 3, Reliability: 9},
}

// LoanOptions is the fixed loan menu. At most one loan per option may
// be active at a time.
var LoanOptions = []LoanOption{
	{Name: "Neighborhood Credit Union", Amount: 500, InterestRate: 0.015, PaybackRate: 0.05},
	{Name: "Small Business Bank Loan", Amount: 1500, InterestRate: 0.02, PaybackRate: 0.04},
	{Name: "Venture Beverage Fund", Amount: 5000, InterestRate: 0.03, PaybackRate: 0.03},
}

// LoanOptionByName looks up a loan option template.
func LoanOptionByName(name string) (LoanOption, bool) {
	for _, opt := range LoanOptions {
		if opt.Name == name {
			return opt, true
		}
	}
	return LoanOption{}, false
}
