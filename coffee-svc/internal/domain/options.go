package domain

// SizeOption carries a visual weight (Measure) that plays no part in pricing.
type SizeOption struct {
	Measure     string `json:"measure"`
	Description string `json:"description"`
}

type MilkOption struct {
	Type string `json:"type"`
}

type ToppingOption struct {
	Type string `json:"type"`
}

var Sizes = []SizeOption{
	{Measure: "text-2xl", Description: "small"},
	{Measure: "text-4xl", Description: "medium"},
	{Measure: "text-5xl", Description: "large"},
}

var Milks = []MilkOption{
	{Type: "Normal"},
	{Type: "Soya Milk"},
	{Type: "Oat Milk"},
}

var Toppings = []ToppingOption{
	{Type: "Almond"},
	{Type: "Caramel"},
	{Type: "Chocolate"},
	{Type: "Mint"},
	{Type: "Vodka"},
}

func FindSize(description string) (SizeOption, bool) {
	for _, size := range Sizes {
		if size.Description == description {
			return size, true
		}
	}
	return SizeOption{}, false
}

func FindMilk(milkType string) (MilkOption, bool) {
	for _, milk := range Milks {
		if milk.Type == milkType {
			return milk, true
		}
	}
	return MilkOption{}, false
}

func FindTopping(toppingType string) (ToppingOption, bool) {
	for _, topping := range Toppings {
		if topping.Type == toppingType {
			return topping, true
		}
	}
	return ToppingOption{}, false
}
