package request

import "strings"

const defaultPrintArea = "medium"

// PriceRequest asks for a price computation without persisting anything.
//
// PrintArea is deliberately free-form here: the pricing engine treats unknown
// areas as medium instead of rejecting them.
type PriceRequest struct {
	ServiceKey string `json:"service_key" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Colors     int    `json:"colors" binding:"omitempty,min=1"`
	PrintArea  string `json:"print_area"`
}

// Normalize applies the documented defaults: one color, medium print area.
func (r *PriceRequest) Normalize() {
	if r.Colors == 0 {
		r.Colors = 1
	}
	if strings.TrimSpace(r.PrintArea) == "" {
		r.PrintArea = defaultPrintArea
	}
}
