package response

import (
	"time"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/domain/labels"
	"crm_reports/internal/usecase"
)

type ContractResponse struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	ContactID      string  `json:"contact_id"`
	ContactName    string  `json:"contact_name"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date"`
	ContractMonths *int    `json:"contract_months"`
	Amount         float64 `json:"amount"`
	Frequency      string  `json:"frequency"`
	FrequencyLabel string  `json:"frequency_label"`
	Active         bool    `json:"active"`
	StateLabel     string  `json:"state_label"`
}

type QuoteReportResponse struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Degraded    bool                `json:"degraded"`
	Totals      usecase.QuoteTotals `json:"totals"`
	Quotes      []QuoteResponse     `json:"quotes"`
}

type ContractReportResponse struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Degraded    bool                   `json:"degraded"`
	Totals      usecase.ContractTotals `json:"totals"`
	Contracts   []ContractResponse     `json:"contracts"`
}

func FromContract(s entities.RecurringService) ContractResponse {
	res := ContractResponse{
		ID:             s.ID,
		Description:    s.Description,
		ContactID:      s.ContactID,
		ContactName:    s.ContactName,
		StartDate:      s.StartDate.Format(dateLayout),
		ContractMonths: s.ContractMonths,
		Amount:         s.Amount,
		Frequency:      string(s.Frequency),
		FrequencyLabel: labels.Frequency(string(s.Frequency)),
		Active:         s.Active,
		StateLabel:     labels.Active(s.Active),
	}
	if end, ok := s.EndDate(); ok {
		d := end.Format(dateLayout)
		res.EndDate = &d
	}
	return res
}

func FromContracts(contracts []entities.RecurringService) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, s := range contracts {
		out = append(out, FromContract(s))
	}
	return out
}

func FromQuoteReport(r usecase.QuoteReport) QuoteReportResponse {
	return QuoteReportResponse{
		GeneratedAt: r.GeneratedAt,
		Degraded:    r.Degraded,
		Totals:      r.Totals,
		Quotes:      FromQuotes(r.Quotes, r.GeneratedAt),
	}
}

func FromContractReport(r usecase.ContractReport) ContractReportResponse {
	return ContractReportResponse{
		GeneratedAt: r.GeneratedAt,
		Degraded:    r.Degraded,
		Totals:      r.Totals,
		Contracts:   FromContracts(r.Contracts),
	}
}
