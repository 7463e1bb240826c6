package request

import (
	"printstudio/internal/domain/entities"
)

// CreateQuoteRequest matches the persisted quote minus estimated_total, which
// the server always recomputes. Unlike PriceRequest, print_area is restricted
// to the known categories: a stored quote must not carry a free-form area.
type CreateQuoteRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,min=2"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	ServiceKey    string `json:"service_key" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1,max=100000"`
	Colors        int    `json:"colors" binding:"omitempty,min=1,max=10"`
	PrintArea     string `json:"print_area" binding:"omitempty,oneof=small medium large"`
	Notes         string `json:"notes"`
}

// Normalize applies the documented defaults: one color, medium print area.
func (r *CreateQuoteRequest) Normalize() {
	if r.Colors == 0 {
		r.Colors = 1
	}
	if r.PrintArea == "" {
		r.PrintArea = defaultPrintArea
	}
}

// ToEntity builds the domain record. EstimatedTotal, ID and CreatedAt are
// filled by the quote use case.
func (r CreateQuoteRequest) ToEntity() entities.QuoteRequest {
	return entities.QuoteRequest{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		ServiceKey:    r.ServiceKey,
		Quantity:      r.Quantity,
		Colors:        r.Colors,
		PrintArea:     entities.PrintArea(r.PrintArea),
		Notes:         r.Notes,
	}
}
