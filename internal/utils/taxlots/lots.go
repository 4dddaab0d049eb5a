package taxlots

import (
	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// lotBook holds the open lots of one symbol in purchase order.
type lotBook struct {
	symbol string
	lots   []*domain.Lot
}

// fill is the part of a lot matched to a sale.
type fill struct {
	lot      *domain.Lot
	quantity decimal.Decimal
	cost     domain.Money
}

func (b *lotBook) add(lot *domain.Lot) {
	b.lots = append(b.lots, lot)
}

func (b *lotBook) openQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, lot := range b.lots {
		total = total.Add(lot.Quantity)
	}
	return total
}

func (b *lotBook) consume(method domain.CostBasisMethod, tx domain.PortfolioTransaction) ([]fill, error) {
	if method == domain.CostBasisSpecificID {
		return b.consumeSpecific(tx)
	}

	if available := b.openQuantity(); tx.Quantity.GreaterThan(available) {
		return nil, &apperrors.InsufficientLotsError{Symbol: b.symbol, Requested: tx.Quantity, Available: available}
	}
	if method == domain.CostBasisAverage {
		b.blend()
	}

	remaining := tx.Quantity
	var fills []fill
	for _, lot := range b.ordered(method) {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(remaining, lot.Quantity)
		fills = append(fills, takeFromLot(lot, take))
		remaining = remaining.Sub(take)
	}
	b.compact()
	return fills, nil
}

func (b *lotBook) consumeSpecific(tx domain.PortfolioTransaction) ([]fill, error) {
	if tx.LotID == "" {
		return nil, apperrors.NewValidationError("lotID", "is required for specific-ID sales of %s", b.symbol)
	}
	var lot *domain.Lot
	for _, l := range b.lots {
		if l.LotID == tx.LotID {
			lot = l
			break
		}
	}
	if lot == nil {
		return nil, apperrors.NewValidationError("lotID", "no open %s lot %q", b.symbol, tx.LotID)
	}
	if tx.Quantity.GreaterThan(lot.Quantity) {
		return nil, &apperrors.InsufficientLotsError{Symbol: b.symbol, Requested: tx.Quantity, Available: lot.Quantity}
	}

	f := takeFromLot(lot, tx.Quantity)
	b.compact()
	return []fill{f}, nil
}

// ordered returns the lots in the order the method consumes them.
// Average cost consumes oldest first once the basis has been blended.
func (b *lotBook) ordered(method domain.CostBasisMethod) []*domain.Lot {
	if method != domain.CostBasisLIFO {
		return b.lots
	}
	out := make([]*domain.Lot, len(b.lots))
	for i, lot := range b.lots {
		out[len(b.lots)-1-i] = lot
	}
	return out
}

// blend spreads the total open cost evenly per unit across the open lots.
func (b *lotBook) blend() {
	alloc := newAllocation(0, decimal.Zero)
	for _, lot := range b.lots {
		alloc.remaining += lot.CostBasis
		alloc.units = alloc.units.Add(lot.Quantity)
	}
	for _, lot := range b.lots {
		lot.CostBasis = alloc.take(lot.Quantity)
	}
}

// compact drops fully consumed lots. They stay reachable through the classifier's lot index.
func (b *lotBook) compact() {
	open := b.lots[:0]
	for _, lot := range b.lots {
		if lot.Quantity.IsPositive() {
			open = append(open, lot)
		}
	}
	for i := len(open); i < len(b.lots); i++ {
		b.lots[i] = nil
	}
	b.lots = open
}

func takeFromLot(lot *domain.Lot, quantity decimal.Decimal) fill {
	alloc := newAllocation(lot.CostBasis, lot.Quantity)
	cost := alloc.take(quantity)
	lot.CostBasis = alloc.remaining
	lot.Quantity = alloc.units
	return fill{lot: lot, quantity: quantity, cost: cost}
}

// allocation splits an amount of cents across units pro rata. The final take receives
// whatever is left so the parts always sum to the original amount.
type allocation struct {
	remaining domain.Money
	units     decimal.Decimal
}

func newAllocation(amount domain.Money, units decimal.Decimal) *allocation {
	return &allocation{remaining: amount, units: units}
}

func (a *allocation) take(quantity decimal.Decimal) domain.Money {
	if !a.units.IsPositive() || quantity.GreaterThanOrEqual(a.units) {
		part := a.remaining
		a.remaining = 0
		a.units = decimal.Zero
		return part
	}
	part := domain.NewMoneyFromCents(a.remaining.MulDecimal(quantity).Div(a.units))
	a.remaining -= part
	a.units = a.units.Sub(quantity)
	return part
}
