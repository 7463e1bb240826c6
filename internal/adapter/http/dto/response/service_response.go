package response

import "printstudio/internal/domain/entities"

type ServiceResponse struct {
	Key                 string   `json:"key"`
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	BasePrice           float64  `json:"base_price"`
	Categories          []string `json:"categories"`
	ColorPricePerColor  float64  `json:"color_price_per_color"`
	PrintAreaMultiplier float64  `json:"print_area_multiplier"`
	MinimumQuantity     int      `json:"minimum_quantity"`
}

func FromService(svc entities.Service) ServiceResponse {
	return ServiceResponse{
		Key:                 svc.Key,
		Name:                svc.Name,
		Description:         svc.Description,
		BasePrice:           svc.BasePrice,
		Categories:          svc.Categories,
		ColorPricePerColor:  svc.ColorPricePerColor,
		PrintAreaMultiplier: svc.PrintAreaMultiplier,
		MinimumQuantity:     svc.MinimumQuantity,
	}
}

func FromServices(svcs []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(svcs))
	for _, svc := range svcs {
		out = append(out, FromService(svc))
	}
	return out
}
