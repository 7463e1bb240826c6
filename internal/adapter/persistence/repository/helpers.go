package repository

import (
	"fmt"
	"strconv"

	"printstudio/internal/usecase/interfaces"
)

// Prices are stored as exact decimal strings to avoid DynamoDB number
// coercion surprises.

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// storeError tags a failed DynamoDB call so upper layers can tell a store
// outage apart from domain errors.
func storeError(err error) error {
	return fmt.Errorf("%w: %v", interfaces.ErrStoreUnavailable, err)
}
