package taxlots

import "github.com/SscSPs/bizos_calc/internal/core/domain"

// applyWashSale flags a loss pair when the same symbol is bought within the wash-sale window
// around the sale. The replacement is the earliest such buy that the sale did not consume and
// that is still open or not yet bought. The disallowed loss moves into its cost basis.
func (c *classifier) applyWashSale(seq int, g *domain.CapitalGainTransaction, consumed map[string]bool) {
	from := g.SaleDate.AddDate(0, 0, -c.opts.washSaleDays)
	to := g.SaleDate.AddDate(0, 0, c.opts.washSaleDays)

	for _, b := range c.buys[g.Symbol] {
		if b.date.Before(from) || consumed[b.lotID] {
			continue
		}
		if b.date.After(to) {
			return
		}
		if b.seq < seq {
			if lot := c.lots[b.lotID]; lot == nil || !lot.Quantity.IsPositive() {
				continue
			}
		}

		disallowed := g.GainLoss.Neg()
		g.IsWashSale = true
		g.DisallowedLoss = disallowed
		c.report.WashSales = append(c.report.WashSales, domain.WashSaleAdjustment{
			SaleID:           g.SaleID,
			LotID:            g.LotID,
			ReplacementLotID: b.lotID,
			Symbol:           g.Symbol,
			SaleDate:         g.SaleDate,
			DisallowedLoss:   disallowed,
		})

		if lot, ok := c.lots[b.lotID]; ok {
			lot.CostBasis += disallowed
			lot.WashSaleAdjustment += disallowed
		} else {
			c.pending[b.lotID] += disallowed
		}
		return
	}
}
