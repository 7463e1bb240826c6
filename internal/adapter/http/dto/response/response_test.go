package response

import (
	"testing"

	"printstudio/internal/domain/entities"
	"printstudio/internal/domain/pricing"
)

func TestFromServices(t *testing.T) {
	svcs := []entities.Service{
		{Key: "tshirt", Name: "T-Shirt Printing", BasePrice: 6, Categories: []string{"apparel"}},
		{Key: "hoodie", Name: "Hoodie Printing", BasePrice: 12},
	}
	out := FromServices(svcs)
	if len(out) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(out))
	}
	if out[0].Key != "tshirt" || out[0].BasePrice != 6 || out[0].Categories[0] != "apparel" {
		t.Fatalf("unexpected mapping: %+v", out[0])
	}

	if got := FromServices(nil); len(got) != 0 {
		t.Fatalf("expected empty slice for nil input, got %+v", got)
	}
}

func TestFromQuote(t *testing.T) {
	q := pricing.Quote{
		UnitPrice:  5.03,
		TotalPrice: 503,
		Breakdown:  pricing.Breakdown{Base: 6, Colors: 3, ColorAddPerUnit: 0.35, AreaMultiplier: 1, VolumeDiscounts: true},
	}
	out := FromQuote(q)
	if out.UnitPrice != 5.03 || out.TotalPrice != 503 || out.Breakdown.Colors != 3 {
		t.Fatalf("unexpected mapping: %+v", out)
	}
}

func TestFromQuoteRequest(t *testing.T) {
	out := FromQuoteRequest(entities.QuoteRequest{ID: "q-1", EstimatedTotal: 88.2, CustomerName: "hidden"})
	if out.ID != "q-1" || out.EstimatedTotal != 88.2 {
		t.Fatalf("unexpected mapping: %+v", out)
	}
}
