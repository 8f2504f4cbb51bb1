package service

import "coffeehouse/coffee-svc/internal/domain"

var sizeSurcharges = map[string]float64{
	"small":  15,
	"medium": 20,
	"large":  25,
}

// Surcharge reports the price delta for a size and whether the size is known.
func Surcharge(size domain.SizeOption) (float64, bool) {
	surcharge, ok := sizeSurcharges[size.Description]
	return surcharge, ok
}

func ComputePrice(base float64, size domain.SizeOption) (float64, bool) {
	surcharge, ok := Surcharge(size)
	if !ok {
		return 0, false
	}
	return base + surcharge, true
}
