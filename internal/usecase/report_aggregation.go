package usecase

import (
	"slices"
	"time"

	"crm_reports/internal/domain/entities"
)

// FilterAll disables a status, owner or contact filter. An empty value has
// the same effect.
const FilterAll = "all"

const (
	ContractStatusActive   = "active"
	ContractStatusInactive = "inactive"
)

// DateRange is an inclusive day window. Either bound may be nil.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) IsSet() bool {
	return r.Start != nil || r.End != nil
}

// Contains compares t at day granularity: from the start of Start's day to
// the end of End's day.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(entities.StartOfDay(*r.Start)) {
		return false
	}
	if r.End != nil && t.After(entities.EndOfDay(*r.End)) {
		return false
	}
	return true
}

type QuoteFilters struct {
	DateRange DateRange
	Status    string
	Owner     string
}

type QuoteTotals struct {
	Count          int     `json:"count"`
	TotalValue     float64 `json:"total_value"`
	ApprovedValue  float64 `json:"approved_value"`
	ApprovedCount  int     `json:"approved_count"`
	OpenValue      float64 `json:"open_value"`
	ConversionRate float64 `json:"conversion_rate"`
}

type QuoteReport struct {
	Quotes      []entities.Quote
	Totals      QuoteTotals
	Filters     QuoteFilters
	GeneratedAt time.Time
	Degraded    bool
}

type ContractFilters struct {
	DateRange    DateRange
	EndDateRange DateRange
	Status       string
	Contact      string
}

type ContractTotals struct {
	Count                 int     `json:"count"`
	MonthlyRecurringTotal float64 `json:"monthly_recurring_total"`
	ActiveCount           int     `json:"active_count"`
	AverageValue          float64 `json:"average_value"`
}

type ContractReport struct {
	Contracts   []entities.RecurringService
	Totals      ContractTotals
	Filters     ContractFilters
	GeneratedAt time.Time
	Degraded    bool
}

func matchesExact(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// AggregateQuotes filters quotes and computes the quote report totals.
//
// Quotes without a creation date are always dropped. The result is ordered
// by creation date, most recent first.
func AggregateQuotes(quotes []entities.Quote, f QuoteFilters) QuoteReport {
	filtered := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.CreatedAt.IsZero() {
			continue
		}
		if !f.DateRange.Contains(q.CreatedAt) {
			continue
		}
		if !matchesExact(f.Status, string(q.Status)) {
			continue
		}
		if !matchesExact(f.Owner, q.OwnerID) {
			continue
		}
		filtered = append(filtered, q)
	}

	slices.SortStableFunc(filtered, func(a, b entities.Quote) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return QuoteReport{Quotes: filtered, Totals: quoteTotals(filtered), Filters: f}
}

func quoteTotals(quotes []entities.Quote) QuoteTotals {
	var t QuoteTotals
	t.Count = len(quotes)
	for _, q := range quotes {
		t.TotalValue += q.TotalValue
		if q.Status == entities.QuoteStatusApproved {
			t.ApprovedValue += q.TotalValue
			t.ApprovedCount++
		}
		if q.Status.IsOpen() {
			t.OpenValue += q.TotalValue
		}
	}
	if t.Count > 0 {
		t.ConversionRate = float64(t.ApprovedCount) / float64(t.Count) * 100
	}
	return t
}

// AggregateContracts filters recurring service contracts and computes the
// contract report totals.
//
// Contracts without a start date are always dropped. When an end date bound
// is given, open-ended contracts are dropped too. The result is ordered by
// start date, oldest first.
func AggregateContracts(services []entities.RecurringService, f ContractFilters) ContractReport {
	filtered := make([]entities.RecurringService, 0, len(services))
	for _, s := range services {
		if s.StartDate.IsZero() {
			continue
		}
		if !f.DateRange.Contains(s.StartDate) {
			continue
		}
		if f.EndDateRange.IsSet() {
			end, ok := s.EndDate()
			if !ok || !f.EndDateRange.Contains(end) {
				continue
			}
		}
		if !matchesContractStatus(f.Status, s.Active) {
			continue
		}
		if !matchesExact(f.Contact, s.ContactID) {
			continue
		}
		filtered = append(filtered, s)
	}

	slices.SortStableFunc(filtered, func(a, b entities.RecurringService) int {
		return a.StartDate.Compare(b.StartDate)
	})

	return ContractReport{Contracts: filtered, Totals: contractTotals(filtered), Filters: f}
}

func matchesContractStatus(filter string, active bool) bool {
	switch filter {
	case "", FilterAll:
		return true
	case ContractStatusActive:
		return active
	case ContractStatusInactive:
		return !active
	default:
		return false
	}
}

// contractTotals sums every filtered contract into the monthly recurring
// total, inactive ones included.
func contractTotals(services []entities.RecurringService) ContractTotals {
	var t ContractTotals
	t.Count = len(services)
	for _, s := range services {
		t.MonthlyRecurringTotal += s.Amount
		if s.Active {
			t.ActiveCount++
		}
	}
	if t.Count > 0 {
		t.AverageValue = t.MonthlyRecurringTotal / float64(t.Count)
	}
	return t
}
