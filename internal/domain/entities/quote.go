package entities

import "time"

// PrintArea is the coarse print size category used by the pricing engine.
type PrintArea string

const (
	PrintAreaSmall  PrintArea = "small"
	PrintAreaMedium PrintArea = "medium"
	PrintAreaLarge  PrintArea = "large"
)

// QuoteRequest is a customer's pricing inquiry persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EstimatedTotal is always computed by the quote use case before persistence;
// any value supplied by the caller is discarded. Quotes are write-once: no
// update or delete operation exists for them.
type QuoteRequest struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	ServiceKey     string    `json:"service_key"`
	Quantity       int       `json:"quantity"`
	Colors         int       `json:"colors"`
	PrintArea      PrintArea `json:"print_area"`
	Notes          string    `json:"notes,omitempty"`
	EstimatedTotal float64   `json:"estimated_total"`
	CreatedAt      time.Time `json:"created_at"`
}
