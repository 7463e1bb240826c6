package entities

// Service is a printing offering in the storefront catalog.
//
// Storage model (DynamoDB):
//   - PK: key
//
// Key is the stable machine-readable identifier that quote requests reference.
// Using it as the partition key guarantees at most one record per key, so
// lookups are unambiguous.
//
// Monetary representation:
//   - BasePrice is the per-unit price before modifiers.
//   - ColorPricePerColor is the marginal cost per print color beyond the first.
//   - PrintAreaMultiplier applies only to "large" print areas.
type Service struct {
	Key                 string   `json:"key"`
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	BasePrice           float64  `json:"base_price"`
	Categories          []string `json:"categories"`
	ColorPricePerColor  float64  `json:"color_price_per_color"`
	PrintAreaMultiplier float64  `json:"print_area_multiplier"`
	MinimumQuantity     int      `json:"minimum_quantity"`
}
