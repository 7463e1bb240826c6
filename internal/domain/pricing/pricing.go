package pricing

import (
	"errors"
	"fmt"
	"math"

	"printstudio/internal/domain/entities"
)

var ErrBelowMinimumQuantity = errors.New("quantity below service minimum")

const (
	smallAreaMultiplier   = 0.9
	defaultAreaMultiplier = 1.0
)

// Breakdown exposes the inputs that produced a unit price. Field names match
// the public API payload.
type Breakdown struct {
	Base            float64 `json:"base"`
	Colors          int     `json:"colors"`
	ColorAddPerUnit float64 `json:"color_add_per_unit"`
	AreaMultiplier  float64 `json:"area_multiplier"`
	VolumeDiscounts bool    `json:"volume_discounts"`
}

// Quote is the result of a price computation.
//
// UnitPrice is the per-item price after color, area and volume modifiers;
// TotalPrice is UnitPrice times quantity, rounded to cents.
type Quote struct {
	UnitPrice  float64   `json:"unit_price"`
	TotalPrice float64   `json:"total_price"`
	Breakdown  Breakdown `json:"breakdown"`
}

// Price computes the unit and total price for quantity items of svc printed
// with the given number of colors on the given print area.
//
// The unit price is rounded to cents twice: once after the color and area
// modifiers, and again after the volume discount. The two roundings are
// observable near discount boundaries and must not be collapsed into one.
// Rounding is half away from zero.
//
// Returns ErrBelowMinimumQuantity when quantity is under the service's
// minimum order size. The check runs after the arithmetic, which is pure, so
// callers never see partial effects.
func Price(svc entities.Service, quantity, colors int, area entities.PrintArea) (Quote, error) {
	colorAdd := float64(max(0, colors-1)) * svc.ColorPricePerColor
	mult := areaMultiplier(svc, area)

	unit := round2((svc.BasePrice + colorAdd) * mult)

	// Volume discount is a step function on quantity: the highest matching
	// tier applies alone, tiers never stack.
	switch {
	case quantity >= 100:
		unit *= 0.75
	case quantity >= 50:
		unit *= 0.82
	case quantity >= 20:
		unit *= 0.90
	}
	unit = round2(unit)

	if quantity < svc.MinimumQuantity {
		return Quote{}, fmt.Errorf("%w: minimum quantity for %s is %d", ErrBelowMinimumQuantity, svc.Key, svc.MinimumQuantity)
	}

	return Quote{
		UnitPrice:  unit,
		TotalPrice: round2(unit * float64(quantity)),
		Breakdown: Breakdown{
			Base:            svc.BasePrice,
			Colors:          colors,
			ColorAddPerUnit: svc.ColorPricePerColor,
			AreaMultiplier:  mult,
			VolumeDiscounts: true,
		},
	}, nil
}

// areaMultiplier resolves the print area modifier. Unknown areas fall back to
// the medium multiplier instead of failing; storefront clients send free-form
// strings.
func areaMultiplier(svc entities.Service, area entities.PrintArea) float64 {
	switch area {
	case entities.PrintAreaSmall:
		return smallAreaMultiplier
	case entities.PrintAreaLarge:
		return svc.PrintAreaMultiplier
	default:
		return defaultAreaMultiplier
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
