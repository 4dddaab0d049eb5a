package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portsrepo "github.com/SscSPs/bizos_calc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/SscSPs/bizos_calc/internal/core/services"
	"github.com/SscSPs/bizos_calc/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PortfolioRepository ---
type MockPortfolioRepository struct {
	mock.Mock
}

var _ portsrepo.PortfolioRepositoryFacade = (*MockPortfolioRepository)(nil)

func (m *MockPortfolioRepository) ListPortfolioTransactions(ctx context.Context, portfolioID string, until time.Time) ([]domain.PortfolioTransaction, error) {
	args := m.Called(ctx, portfolioID, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortfolioTransaction), args.Error(1)
}

func (m *MockPortfolioRepository) SavePortfolioTransactions(ctx context.Context, portfolioID string, txns []domain.PortfolioTransaction) error {
	args := m.Called(ctx, portfolioID, txns)
	return args.Error(0)
}

// --- Mock TaxReportRepository ---
type MockTaxReportRepository struct {
	mock.Mock
}

var _ portsrepo.TaxReportRepositoryFacade = (*MockTaxReportRepository)(nil)

func (m *MockTaxReportRepository) FindTaxReportByID(ctx context.Context, reportID string) (*domain.TaxReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxReport), args.Error(1)
}

func (m *MockTaxReportRepository) ListTaxReportsByPortfolio(ctx context.Context, portfolioID string, limit int, nextToken *string) ([]domain.TaxReport, *string, error) {
	args := m.Called(ctx, portfolioID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.TaxReport), returnedNextToken, args.Error(2)
}

func (m *MockTaxReportRepository) SaveTaxReport(ctx context.Context, report domain.TaxReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

type InvestmentReportingServiceTestSuite struct {
	suite.Suite
	portfolioRepo *MockPortfolioRepository
	taxReportRepo *MockTaxReportRepository
	service       portssvc.InvestmentReportingSvcFacade
	now           time.Time
	portfolioID   string
	userID        string
}

func (suite *InvestmentReportingServiceTestSuite) SetupTest() {
	suite.portfolioRepo = new(MockPortfolioRepository)
	suite.taxReportRepo = new(MockTaxReportRepository)
	suite.now = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	suite.portfolioID = "pf-1"
	suite.userID = "user-1"

	ids := 0
	suite.service = services.NewInvestmentReportingService(
		suite.portfolioRepo,
		suite.taxReportRepo,
		services.WithTaxYearConfig(domain.DefaultUSTaxYearConfig(2000)),
		services.WithClock(func() time.Time { return suite.now }),
		services.WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("id-%d", ids)
		}),
	)
}

func TestInvestmentReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentReportingServiceTestSuite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func trade(id string, typ domain.PortfolioTransactionType, symbol string, on time.Time, qty, price string) domain.PortfolioTransaction {
	return domain.PortfolioTransaction{
		TransactionID: id,
		Symbol:        symbol,
		Type:          typ,
		Quantity:      decimal.RequireFromString(qty),
		Price:         domain.MustParseMoney(price),
		TradeDate:     on,
	}
}

func income(id string, typ domain.PortfolioTransactionType, on time.Time, amount string, qualified bool) domain.PortfolioTransaction {
	return domain.PortfolioTransaction{
		TransactionID: id,
		Type:          typ,
		Amount:        domain.MustParseMoney(amount),
		TradeDate:     on,
		Qualified:     qualified,
	}
}

func (suite *InvestmentReportingServiceTestSuite) TestRecordTransactions_Success() {
	ctx := context.Background()
	txns := []domain.PortfolioTransaction{
		trade("", domain.TxBuy, " aapl", date(2024, 1, 10), "10", "100"),
		income("div-1", domain.TxDividend, date(2024, 3, 1), "12.50", true),
	}

	suite.portfolioRepo.On("SavePortfolioTransactions", ctx, suite.portfolioID, mock.MatchedBy(func(saved []domain.PortfolioTransaction) bool {
		return len(saved) == 2 && saved[0].Symbol == "AAPL" && saved[0].TransactionID == "id-1"
	})).Return(nil).Once()

	stored, err := suite.service.RecordTransactions(ctx, suite.portfolioID, txns, suite.userID)

	suite.Require().NoError(err)
	suite.Len(stored, 2)
	suite.Equal(suite.portfolioID, stored[0].PortfolioID)
	suite.Equal(suite.userID, stored[1].CreatedBy)
	suite.Equal(suite.now, stored[1].CreatedAt)
	suite.portfolioRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentReportingServiceTestSuite) TestRecordTransactions_Validation() {
	ctx := context.Background()

	tests := []struct {
		name  string
		txns  []domain.PortfolioTransaction
		field string
	}{
		{"empty batch", nil, "transactions"},
		{"sell without symbol", []domain.PortfolioTransaction{trade("s1", domain.TxSell, "", date(2024, 1, 1), "1", "1")}, "symbol"},
		{"zero quantity", []domain.PortfolioTransaction{trade("b1", domain.TxBuy, "X", date(2024, 1, 1), "0", "1")}, "quantity"},
		{"duplicate id", []domain.PortfolioTransaction{
			trade("b1", domain.TxBuy, "X", date(2024, 1, 1), "1", "1"),
			trade("b1", domain.TxBuy, "X", date(2024, 1, 2), "1", "1"),
		}, "transactionID"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.RecordTransactions(ctx, suite.portfolioID, tt.txns, suite.userID)

			var verr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &verr)
			suite.Equal(tt.field, verr.Field)
		})
	}
	suite.portfolioRepo.AssertNotCalled(suite.T(), "SavePortfolioTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentReportingServiceTestSuite) TestRecordTransactions_Duplicate() {
	ctx := context.Background()
	txns := []domain.PortfolioTransaction{trade("b1", domain.TxBuy, "X", date(2024, 1, 1), "1", "1")}
	suite.portfolioRepo.On("SavePortfolioTransactions", ctx, suite.portfolioID, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RecordTransactions(ctx, suite.portfolioID, txns, suite.userID)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *InvestmentReportingServiceTestSuite) TestCapitalGains_FiltersToRangeAndLooksAhead() {
	ctx := context.Background()
	history := []domain.PortfolioTransaction{
		trade("b1", domain.TxBuy, "AAPL", date(2023, 1, 3), "10", "100"),
		trade("s1", domain.TxSell, "AAPL", date(2023, 6, 1), "5", "120"),
		trade("s2", domain.TxSell, "AAPL", date(2024, 2, 1), "5", "150"),
	}
	// to = 2023-12-31, look-ahead of 30 days
	suite.portfolioRepo.On("ListPortfolioTransactions", ctx, suite.portfolioID, date(2024, 1, 30)).Return(history, nil).Once()

	report, err := suite.service.CapitalGains(ctx, suite.portfolioID, domain.CostBasisFIFO, date(2023, 1, 1), date(2023, 12, 31))

	suite.Require().NoError(err)
	suite.Require().Len(report.Transactions, 1)
	suite.Equal("s1", report.Transactions[0].SaleID)
	suite.Equal("100.00", report.ShortTermTotal.String())
	suite.Equal("100.00", report.NetCapitalGain.String())
	suite.portfolioRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentReportingServiceTestSuite) TestCapitalGains_OpenLotsAsOfRangeEnd() {
	ctx := context.Background()
	history := []domain.PortfolioTransaction{
		trade("b1", domain.TxBuy, "ABC", date(2024, 1, 2), "10", "50"),
		trade("b2", domain.TxBuy, "XYZ", date(2025, 1, 10), "3", "20"),
		trade("s1", domain.TxSell, "ABC", date(2025, 1, 15), "10", "70"),
	}
	suite.portfolioRepo.On("ListPortfolioTransactions", ctx, suite.portfolioID, date(2025, 1, 30)).Return(history, nil).Once()

	report, err := suite.service.CapitalGains(ctx, suite.portfolioID, domain.CostBasisFIFO, date(2024, 1, 1), date(2024, 12, 31))

	suite.Require().NoError(err)
	suite.Empty(report.Transactions)
	suite.Require().Len(report.OpenLots, 1)
	lot := report.OpenLots[0]
	suite.Equal("ABC", lot.Symbol)
	suite.True(decimal.NewFromInt(10).Equal(lot.Quantity))
	suite.Equal("500.00", lot.CostBasis.String())
	suite.portfolioRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentReportingServiceTestSuite) TestCapitalGains_Errors() {
	ctx := context.Background()

	_, err := suite.service.CapitalGains(ctx, suite.portfolioID, domain.CostBasisFIFO, date(2024, 2, 1), date(2024, 1, 1))
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.portfolioRepo.On("ListPortfolioTransactions", ctx, suite.portfolioID, mock.Anything).Return([]domain.PortfolioTransaction{}, nil)
	_, err = suite.service.CapitalGains(ctx, suite.portfolioID, domain.CostBasisMethod("hifo"), time.Time{}, date(2024, 1, 1))
	suite.ErrorIs(err, apperrors.ErrUnsupportedCostBasisMethod)

	repoErr := errors.New("connection refused")
	suite.portfolioRepo.ExpectedCalls = nil
	suite.portfolioRepo.On("ListPortfolioTransactions", ctx, "pf-broken", mock.Anything).Return(nil, repoErr)
	_, err = suite.service.CapitalGains(ctx, "pf-broken", domain.CostBasisFIFO, time.Time{}, date(2024, 1, 1))
	suite.ErrorIs(err, repoErr)
}

func (suite *InvestmentReportingServiceTestSuite) TestCapitalGains_InsufficientLots() {
	ctx := context.Background()
	history := []domain.PortfolioTransaction{
		trade("b1", domain.TxBuy, "AAPL", date(2024, 1, 3), "1", "100"),
		trade("s1", domain.TxSell, "AAPL", date(2024, 2, 1), "2", "120"),
	}
	suite.portfolioRepo.On("ListPortfolioTransactions", ctx, suite.portfolioID, mock.Anything).Return(history, nil).Once()

	_, err := suite.service.CapitalGains(ctx, suite.portfolioID, "", time.Time{}, date(2024, 12, 31))

	suite.ErrorIs(err, apperrors.ErrInsufficientLots)
}

func (suite *InvestmentReportingServiceTestSuite) TestGenerateTaxReport() {
	ctx := context.Background()
	history := []domain.PortfolioTransaction{
		trade("b1", domain.TxBuy, "AAPL", date(2022, 1, 3), "10", "100"),
		trade("b2", domain.TxBuy, "MSFT", date(2024, 1, 3), "10", "100"),
		trade("s1", domain.TxSell, "AAPL", date(2024, 3, 1), "10", "300"),
		trade("s2", domain.TxSell, "MSFT", date(2024, 6, 3), "10", "200"),
		income("d1", domain.TxDividend, date(2024, 4, 1), "500", true),
		income("d2", domain.TxDividend, date(2024, 5, 1), "300", false),
		income("i1", domain.TxInterest, date(2024, 7, 1), "200", false),
		income("d-old", domain.TxDividend, date(2023, 7, 1), "999", false),
	}
	suite.portfolioRepo.On("ListPortfolioTransactions", ctx, suite.portfolioID, date(2025, 1, 30)).Return(history, nil).Once()
	suite.taxReportRepo.On("SaveTaxReport", ctx, mock.MatchedBy(func(r domain.TaxReport) bool {
		return r.ReportID == "id-1" && r.TaxYear == 2024 && r.CreatedBy == suite.userID
	})).Return(nil).Once()

	report, err := suite.service.GenerateTaxReport(ctx, suite.portfolioID, 2024, domain.CostBasisFIFO, suite.userID)

	suite.Require().NoError(err)
	s := report.Summary
	suite.Equal(2024, s.TaxYear)
	suite.Equal("US", s.Jurisdiction)
	suite.Equal("1000.00", s.ShortTermGainLoss.String())
	suite.Equal("2000.00", s.LongTermGainLoss.String())
	suite.Equal("500.00", s.DividendIncome.Qualified.String())
	suite.Equal("300.00", s.DividendIncome.Ordinary.String())
	suite.Equal("200.00", s.InterestIncome.String())
	suite.Equal("1055.00", s.EstimatedTaxLiability.String())
	suite.True(s.IsEstimate)
	suite.Len(report.Gains.Transactions, 2)
	suite.Empty(report.Gains.OpenLots)
	suite.taxReportRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentReportingServiceTestSuite) TestGenerateTaxReport_SaveFails() {
	ctx := context.Background()
	suite.portfolioRepo.On("ListPortfolioTransactions", ctx, suite.portfolioID, mock.Anything).Return([]domain.PortfolioTransaction{}, nil).Once()
	saveErr := errors.New("disk full")
	suite.taxReportRepo.On("SaveTaxReport", ctx, mock.Anything).Return(saveErr).Once()

	_, err := suite.service.GenerateTaxReport(ctx, suite.portfolioID, 2024, "", suite.userID)

	suite.ErrorIs(err, saveErr)
}

func (suite *InvestmentReportingServiceTestSuite) TestGetTaxReport_NotFound() {
	ctx := context.Background()
	suite.taxReportRepo.On("FindTaxReportByID", ctx, "missing").Return(nil, apperrors.NewNotFoundError("tax report missing")).Once()

	_, err := suite.service.GetTaxReport(ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvestmentReportingServiceTestSuite) TestListTaxReports() {
	ctx := context.Background()
	reports := []domain.TaxReport{{ReportID: "r-2", PortfolioID: suite.portfolioID, TaxYear: 2024}}
	suite.taxReportRepo.On("ListTaxReportsByPortfolio", ctx, suite.portfolioID, 20, (*string)(nil)).Return(reports, "next", nil).Once()

	resp, err := suite.service.ListTaxReports(ctx, suite.portfolioID, dto.ListTaxReportsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Reports, 1)
	suite.Equal("r-2", resp.Reports[0].ReportID)
	suite.Nil(resp.Reports[0].Gains)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
}
