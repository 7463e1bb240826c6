package interfaces

import (
	"context"

	"printstudio/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for QuoteRequest.
//
// Quotes are append-only: Create is the only write, and there is no update or
// delete. The id must be unique; the adapter enforces this with a conditional
// put.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
}
