package service

import "github.com/shopspring/decimal"

// PricingStrategy computes a transaction total from a unit price and a
// quantity. Implementations are pure; inputs are assumed valid at the
// call site (price >= 0, quantity > 0).
type PricingStrategy interface {
	CalculateTotal(price decimal.Decimal, quantity int) decimal.Decimal
}

const (
	RegularPricingName  = "regularPricing"
	DiscountPricingName = "discountPricing"
)

// Bulk orders above this quantity get the discount rate applied.
const bulkQuantityThreshold = 10

var bulkDiscountRate = decimal.RequireFromString("0.90")

type regularPricing struct{}

func (regularPricing) CalculateTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

type discountPricing struct{}

func (discountPricing) CalculateTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	total := price.Mul(decimal.NewFromInt(int64(quantity)))
	if quantity > bulkQuantityThreshold {
		return total.Mul(bulkDiscountRate)
	}
	return total
}

var pricingStrategies = map[string]PricingStrategy{
	RegularPricingName:  regularPricing{},
	DiscountPricingName: discountPricing{},
}

// PricingStrategies returns the strategy registry, keyed by name. Built
// once at startup and treated as read-only.
func PricingStrategies() map[string]PricingStrategy {
	return pricingStrategies
}
