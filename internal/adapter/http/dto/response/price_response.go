package response

import "printstudio/internal/domain/pricing"

type PriceResponse struct {
	UnitPrice  float64           `json:"unit_price"`
	TotalPrice float64           `json:"total_price"`
	Breakdown  pricing.Breakdown `json:"breakdown"`
}

func FromQuote(q pricing.Quote) PriceResponse {
	return PriceResponse{
		UnitPrice:  q.UnitPrice,
		TotalPrice: q.TotalPrice,
		Breakdown:  q.Breakdown,
	}
}
