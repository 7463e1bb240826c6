package usecase

import (
	"context"
	"strings"
	"time"

	"printstudio/internal/domain/entities"
	"printstudio/internal/domain/pricing"
	"printstudio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// IQuoteUseCase exposes price computation and quote creation.
//
// CreateQuote composes the catalog lookup and the pricing engine: it calls
// ComputePrice in-process, attaches the total to the request and persists it.
// Nothing is written when the lookup or the pricing step fails.
type IQuoteUseCase interface {
	ComputePrice(ctx context.Context, serviceKey string, quantity, colors int, area entities.PrintArea) (pricing.Quote, error)
	CreateQuote(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
}

type QuoteUseCase struct {
	services interfaces.IServiceRepository
	quotes   interfaces.IQuoteRepository
	log      zerolog.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(services interfaces.IServiceRepository, quotes interfaces.IQuoteRepository, log zerolog.Logger) *QuoteUseCase {
	return &QuoteUseCase{services: services, quotes: quotes, log: log}
}

func (u *QuoteUseCase) ComputePrice(ctx context.Context, serviceKey string, quantity, colors int, area entities.PrintArea) (pricing.Quote, error) {
	serviceKey = strings.TrimSpace(serviceKey)
	if serviceKey == "" {
		return pricing.Quote{}, ErrInvalidServiceKey
	}

	svc, err := u.services.GetByKey(ctx, serviceKey)
	if err != nil {
		return pricing.Quote{}, err
	}
	if svc.Key == "" {
		return pricing.Quote{}, ErrServiceNotFound
	}

	return pricing.Price(svc, quantity, colors, area)
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	quote, err := u.ComputePrice(ctx, q.ServiceKey, q.Quantity, q.Colors, q.PrintArea)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	q.ID = uuid.NewString()
	q.ServiceKey = strings.TrimSpace(q.ServiceKey)
	// The engine is the only source of the total; caller values are discarded.
	q.EstimatedTotal = quote.TotalPrice
	q.CreatedAt = time.Now().UTC()

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	u.log.Info().
		Str("quote_id", created.ID).
		Str("service_key", created.ServiceKey).
		Int("quantity", created.Quantity).
		Float64("estimated_total", created.EstimatedTotal).
		Msg("quote created")
	return created, nil
}
