package services

import (
	"context"

	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// OrderPricingService converts a validated order into a priced one using the
// catalog's price lookup. Pricing is deterministic and has no side effects
// beyond invoking the lookup once per line, in line order. Amounts use an
// exact decimal representation; no rounding policy is applied.
type OrderPricingService struct {
	catalog ports.ProductCatalog
}

// NewOrderPricingService creates the pricing stage with its price lookup.
func NewOrderPricingService(catalog ports.ProductCatalog) OrderPricingService {
	return OrderPricingService{
		catalog: catalog,
	}
}

// Price computes every line total as unit price times quantity and sums them
// into the order's amount to bill. Line identifiers, product codes and
// quantities are carried forward unchanged.
func (s OrderPricingService) Price(
	ctx context.Context, validated order.ValidatedOrder,
) (order.PricedOrder, error) {
	if err := validated.Validate(); err != nil {
		return order.PricedOrder{}, err
	}

	lines := validated.Lines()
	pricedLines := make([]order.PricedOrderLine, 0, len(lines))
	for _, line := range lines {
		unitPrice, err := s.catalog.UnitPrice(ctx, line.ProductCode())
		if err != nil {
			return order.PricedOrder{}, err
		}

		// Unit and Kilogram quantities are both plain integers at this point.
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity().Value())))

		pricedLine, err := order.NewPricedOrderLine(line, lineTotal)
		if err != nil {
			return order.PricedOrder{}, err
		}
		pricedLines = append(pricedLines, pricedLine)
	}

	return order.NewPricedOrder(validated, pricedLines)
}
