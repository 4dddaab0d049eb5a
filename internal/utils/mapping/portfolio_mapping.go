package mapping

import (
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/SscSPs/bizos_calc/internal/models"
)

// ToModelPortfolioTransaction converts a domain PortfolioTransaction to a model row
func ToModelPortfolioTransaction(d domain.PortfolioTransaction) models.PortfolioTransaction {
	var lotID *string
	if d.LotID != "" {
		id := d.LotID
		lotID = &id
	}
	return models.PortfolioTransaction{
		PortfolioID:   d.PortfolioID,
		TransactionID: d.TransactionID,
		Symbol:        d.Symbol,
		Type:          string(d.Type),
		Quantity:      d.Quantity,
		PriceCents:    d.Price.Cents(),
		FeesCents:     d.Fees.Cents(),
		AmountCents:   d.Amount.Cents(),
		TradeDate:     domain.DateOnly(d.TradeDate),
		LotID:         lotID,
		Qualified:     d.Qualified,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPortfolioTransaction converts a model row to a domain PortfolioTransaction
func ToDomainPortfolioTransaction(m models.PortfolioTransaction) domain.PortfolioTransaction {
	d := domain.PortfolioTransaction{
		TransactionID: m.TransactionID,
		PortfolioID:   m.PortfolioID,
		Symbol:        m.Symbol,
		Type:          domain.PortfolioTransactionType(m.Type),
		Quantity:      m.Quantity,
		Price:         domain.Money(m.PriceCents),
		Fees:          domain.Money(m.FeesCents),
		Amount:        domain.Money(m.AmountCents),
		TradeDate:     domain.DateOnly(m.TradeDate),
		Qualified:     m.Qualified,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.LotID != nil {
		d.LotID = *m.LotID
	}
	return d
}
