package interfaces

import (
	"context"

	"printstudio/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the service catalog.
//
// Lookup semantics: a zero-value Service with a nil error means "not found";
// use cases translate that into their own sentinel errors. Count backs the
// seed guard, which only writes defaults into an empty catalog.
type IServiceRepository interface {
	GetByKey(ctx context.Context, key string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, svc entities.Service) (entities.Service, error)
}
