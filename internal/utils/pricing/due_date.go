package pricing

import (
	"time"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
)

// ResolveDueDate maps a payment term and issue date to a due date, in UTC calendar days.
//
// Unknown terms fall back to domain.DefaultPaymentTerm (net 30). Callers that need to warn
// about the fallback check term.IsKnown() first.
func ResolveDueDate(term domain.PaymentTerm, issueDate time.Time, customDueDate *time.Time) (time.Time, error) {
	if issueDate.IsZero() {
		return time.Time{}, apperrors.NewValidationError("issueDate", "is required")
	}
	issue := domain.DateOnly(issueDate)

	if term == domain.PaymentTermCustom {
		if customDueDate == nil || customDueDate.IsZero() {
			return time.Time{}, apperrors.NewValidationError("customDueDate", "is required for custom payment terms")
		}
		due := domain.DateOnly(*customDueDate)
		if due.Before(issue) {
			return time.Time{}, apperrors.NewValidationError("customDueDate", "must not be before the issue date")
		}
		return due, nil
	}

	days, ok := term.OffsetDays()
	if !ok {
		days, _ = domain.DefaultPaymentTerm.OffsetDays()
	}
	return issue.AddDate(0, 0, days), nil
}
