package response

import "printstudio/internal/domain/entities"

// CreateQuoteResponse is the acknowledgement for a persisted quote request.
type CreateQuoteResponse struct {
	ID             string  `json:"id"`
	EstimatedTotal float64 `json:"estimated_total"`
}

func FromQuoteRequest(q entities.QuoteRequest) CreateQuoteResponse {
	return CreateQuoteResponse{
		ID:             q.ID,
		EstimatedTotal: q.EstimatedTotal,
	}
}

// SeedResponse reports the outcome of the catalog seeding operation.
type SeedResponse struct {
	Seeded bool `json:"seeded"`
	Count  int  `json:"count"`
}
