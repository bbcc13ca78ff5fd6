package usecase

import (
	"context"
	"log"
	"time"

	"crm_reports/internal/usecase/interfaces"
)

// IReportUseCase builds the quote and contract reports from the current
// store snapshot.
//
// A store failure never surfaces as an error: the report comes back empty
// with Degraded set so callers can still render it.
type IReportUseCase interface {
	QuoteReport(ctx context.Context, f QuoteFilters) QuoteReport
	ContractReport(ctx context.Context, f ContractFilters) ContractReport
}

type ReportUseCase struct {
	quotes    interfaces.IQuoteRepository
	contracts interfaces.IRecurringServiceRepository
	now       func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(quotes interfaces.IQuoteRepository, contracts interfaces.IRecurringServiceRepository) *ReportUseCase {
	return &ReportUseCase{quotes: quotes, contracts: contracts, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ReportUseCase) QuoteReport(ctx context.Context, f QuoteFilters) QuoteReport {
	quotes, err := u.quotes.ListAll(ctx)
	if err != nil {
		log.Printf("[report][usecase] list quotes failed err=%v", err)
		res := AggregateQuotes(nil, f)
		res.Degraded = true
		res.GeneratedAt = u.now()
		return res
	}
	res := AggregateQuotes(quotes, f)
	res.GeneratedAt = u.now()
	log.Printf("[report][usecase] quote report fetched=%d filtered=%d", len(quotes), res.Totals.Count)
	return res
}

func (u *ReportUseCase) ContractReport(ctx context.Context, f ContractFilters) ContractReport {
	services, err := u.contracts.ListAll(ctx)
	if err != nil {
		log.Printf("[report][usecase] list recurring services failed err=%v", err)
		res := AggregateContracts(nil, f)
		res.Degraded = true
		res.GeneratedAt = u.now()
		return res
	}
	res := AggregateContracts(services, f)
	res.GeneratedAt = u.now()
	log.Printf("[report][usecase] contract report fetched=%d filtered=%d", len(services), res.Totals.Count)
	return res
}
