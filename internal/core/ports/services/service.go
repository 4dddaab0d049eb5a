package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it at route registration.
type ServiceContainer struct {
	Invoice             InvoiceSvcFacade
	Estimate            EstimateSvcFacade
	InvestmentReporting InvestmentReportingSvcFacade
}
