package usecase

import (
	"context"
	"errors"
	"strings"

	"printstudio/internal/domain/entities"
	"printstudio/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrInvalidServiceKey = errors.New("invalid service key")
)

// ICatalogUseCase exposes the read side of the printing-services catalog plus
// the administrative seeding operation.
//
// The catalog is read-only from the storefront's perspective: SeedDefaults is
// the only write and it refuses to touch a non-empty catalog.
type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	GetServiceByKey(ctx context.Context, key string) (entities.Service, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type CatalogUseCase struct {
	repo interfaces.IServiceRepository
	log  zerolog.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IServiceRepository, log zerolog.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: log}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUseCase) GetServiceByKey(ctx context.Context, key string) (entities.Service, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Service{}, ErrInvalidServiceKey
	}

	svc, err := u.repo.GetByKey(ctx, key)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.Key == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return svc, nil
}

// SeedDefaults inserts the default offerings when the catalog is empty and
// reports how many services were written. A non-empty catalog is left as is
// and yields a zero count.
func (u *CatalogUseCase) SeedDefaults(ctx context.Context) (int, error) {
	existing, err := u.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		u.log.Info().Int("existing", existing).Msg("catalog already seeded, skipping")
		return 0, nil
	}

	defaults := DefaultServices()
	for _, svc := range defaults {
		if _, err := u.repo.Create(ctx, svc); err != nil {
			return 0, err
		}
		u.log.Info().Str("key", svc.Key).Msg("seeded catalog service")
	}
	return len(defaults), nil
}

// DefaultServices is the storefront's launch catalog.
func DefaultServices() []entities.Service {
	return []entities.Service{
		{
			Key:                 "tshirt",
			Name:                "T-Shirt Printing",
			Description:         "DTG and screen printing for tees",
			BasePrice:           6.0,
			Categories:          []string{"apparel", "tshirt"},
			ColorPricePerColor:  0.35,
			PrintAreaMultiplier: 1.0,
			MinimumQuantity:     1,
		},
		{
			Key:                 "tote_bag",
			Name:                "Tote Bag Printing",
			Description:         "Durable cotton tote prints",
			BasePrice:           4.0,
			Categories:          []string{"bags", "tote"},
			ColorPricePerColor:  0.25,
			PrintAreaMultiplier: 1.1,
			MinimumQuantity:     1,
		},
		{
			Key:                 "hoodie",
			Name:                "Hoodie Printing",
			Description:         "Premium hoodies with vivid prints",
			BasePrice:           12.0,
			Categories:          []string{"apparel", "hoodie"},
			ColorPricePerColor:  0.4,
			PrintAreaMultiplier: 1.2,
			MinimumQuantity:     1,
		},
	}
}
