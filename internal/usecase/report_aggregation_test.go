package usecase

import (
	"testing"
	"time"

	"crm_reports/internal/domain/entities"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func intPtr(v int) *int { return &v }

func TestAggregateQuotes_DateRangeScenario(t *testing.T) {
	quotes := []entities.Quote{
		{ID: "q1", CreatedAt: day(2024, time.January, 15), Status: entities.QuoteStatusSent, TotalValue: 1000},
		{ID: "q2", CreatedAt: day(2024, time.February, 1), Status: entities.QuoteStatusApproved, TotalValue: 2000},
	}

	res := AggregateQuotes(quotes, QuoteFilters{
		DateRange: DateRange{Start: dayPtr(2024, time.January, 1), End: dayPtr(2024, time.January, 31)},
	})

	if len(res.Quotes) != 1 || res.Quotes[0].ID != "q1" {
		t.Fatalf("expected only q1, got %+v", res.Quotes)
	}
	want := QuoteTotals{Count: 1, TotalValue: 1000, ApprovedValue: 0, OpenValue: 1000, ConversionRate: 0}
	if res.Totals != want {
		t.Fatalf("expected %+v, got %+v", want, res.Totals)
	}
}

func TestAggregateQuotes_InclusiveEndDay(t *testing.T) {
	quotes := []entities.Quote{
		{ID: "late", CreatedAt: time.Date(2024, time.January, 31, 23, 10, 0, 0, time.UTC), Status: entities.QuoteStatusDraft},
		{ID: "early", CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Status: entities.QuoteStatusDraft},
	}
	res := AggregateQuotes(quotes, QuoteFilters{
		DateRange: DateRange{Start: dayPtr(2024, time.January, 1), End: dayPtr(2024, time.January, 31)},
	})
	if len(res.Quotes) != 2 {
		t.Fatalf("expected both boundary quotes, got %d", len(res.Quotes))
	}
}

func TestAggregateQuotes_DropsMissingCreationDate(t *testing.T) {
	quotes := []entities.Quote{
		{ID: "no-date", Status: entities.QuoteStatusApproved, TotalValue: 500},
		{ID: "dated", CreatedAt: day(2024, time.March, 3), Status: entities.QuoteStatusApproved, TotalValue: 300},
	}

	filterSets := []QuoteFilters{
		{},
		{Status: FilterAll, Owner: FilterAll},
		{Status: string(entities.QuoteStatusApproved)},
		{DateRange: DateRange{End: dayPtr(2030, time.January, 1)}},
	}
	for _, f := range filterSets {
		res := AggregateQuotes(quotes, f)
		for _, q := range res.Quotes {
			if q.CreatedAt.IsZero() {
				t.Fatalf("quote without creation date included with filters %+v", f)
			}
		}
	}

	res := AggregateQuotes(quotes, QuoteFilters{})
	if res.Totals.Count != 1 || res.Totals.ApprovedValue != 300 || res.Totals.ConversionRate != 100 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
}

func TestAggregateQuotes_StatusAndOwnerFilters(t *testing.T) {
	quotes := []entities.Quote{
		{ID: "a", CreatedAt: day(2024, time.May, 1), Status: entities.QuoteStatusSent, OwnerID: "u1"},
		{ID: "b", CreatedAt: day(2024, time.May, 2), Status: entities.QuoteStatusApproved, OwnerID: "u2"},
		{ID: "c", CreatedAt: day(2024, time.May, 3), Status: entities.QuoteStatus("legacy"), OwnerID: "u1"},
	}

	t.Run("status exact match", func(t *testing.T) {
		res := AggregateQuotes(quotes, QuoteFilters{Status: "sent"})
		if len(res.Quotes) != 1 || res.Quotes[0].ID != "a" {
			t.Fatalf("unexpected result: %+v", res.Quotes)
		}
	})

	t.Run("unknown status only matches all", func(t *testing.T) {
		for _, s := range []string{"sent", "approved", "Legacy"} {
			for _, q := range AggregateQuotes(quotes, QuoteFilters{Status: s}).Quotes {
				if q.ID == "c" {
					t.Fatalf("unknown status matched filter %q", s)
				}
			}
		}
		if got := len(AggregateQuotes(quotes, QuoteFilters{Status: FilterAll}).Quotes); got != 3 {
			t.Fatalf("expected 3 with all, got %d", got)
		}
	})

	t.Run("owner", func(t *testing.T) {
		res := AggregateQuotes(quotes, QuoteFilters{Owner: "u1"})
		if len(res.Quotes) != 2 {
			t.Fatalf("expected 2 quotes for u1, got %d", len(res.Quotes))
		}
	})
}

func TestAggregateQuotes_SortedMostRecentFirst(t *testing.T) {
	quotes := []entities.Quote{
		{ID: "mid", CreatedAt: day(2024, time.February, 1)},
		{ID: "old", CreatedAt: day(2023, time.December, 1)},
		{ID: "new", CreatedAt: day(2024, time.April, 1)},
		{ID: "mid2", CreatedAt: day(2024, time.February, 1)},
	}
	res := AggregateQuotes(quotes, QuoteFilters{})
	for i := 1; i < len(res.Quotes); i++ {
		if res.Quotes[i].CreatedAt.After(res.Quotes[i-1].CreatedAt) {
			t.Fatalf("quotes out of order at %d: %+v", i, res.Quotes)
		}
	}
	if res.Quotes[0].ID != "new" || res.Quotes[3].ID != "old" {
		t.Fatalf("unexpected order: %+v", res.Quotes)
	}
}

func TestAggregateQuotes_Totals(t *testing.T) {
	quotes := []entities.Quote{
		{CreatedAt: day(2024, time.June, 1), Status: entities.QuoteStatusDraft, TotalValue: 100},
		{CreatedAt: day(2024, time.June, 2), Status: entities.QuoteStatusSent, TotalValue: 200},
		{CreatedAt: day(2024, time.June, 3), Status: entities.QuoteStatusViewed, TotalValue: 400},
		{CreatedAt: day(2024, time.June, 4), Status: entities.QuoteStatusNegotiation, TotalValue: 800},
		{CreatedAt: day(2024, time.June, 5), Status: entities.QuoteStatusApproved, TotalValue: 1600},
		{CreatedAt: day(2024, time.June, 6), Status: entities.QuoteStatusRejected, TotalValue: 3200},
		{CreatedAt: day(2024, time.June, 7), Status: entities.QuoteStatusExpired, TotalValue: 6400},
		{CreatedAt: day(2024, time.June, 8), Status: entities.QuoteStatusApproved, TotalValue: 12800},
	}
	got := AggregateQuotes(quotes, QuoteFilters{}).Totals
	want := QuoteTotals{
		Count:          8,
		TotalValue:     25500,
		ApprovedValue:  14400,
		ApprovedCount:  2,
		OpenValue:      1100,
		ConversionRate: 25,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestAggregateQuotes_EmptyConversionRateIsZero(t *testing.T) {
	res := AggregateQuotes(nil, QuoteFilters{Status: "approved"})
	if res.Totals.ConversionRate != 0 || res.Totals.Count != 0 {
		t.Fatalf("expected zero totals, got %+v", res.Totals)
	}
	if res.Quotes == nil {
		t.Fatalf("expected empty, non-nil slice")
	}
}

func TestAggregateContracts_EndDateRangeExcludesOpenEnded(t *testing.T) {
	services := []entities.RecurringService{
		{ID: "open", StartDate: day(2024, time.January, 1), Amount: 100, Active: true},
		{ID: "12m", StartDate: day(2024, time.January, 1), ContractMonths: intPtr(12), Amount: 200, Active: true},
		{ID: "6m", StartDate: day(2024, time.January, 1), ContractMonths: intPtr(6), Amount: 300},
	}

	t.Run("start bound only", func(t *testing.T) {
		res := AggregateContracts(services, ContractFilters{EndDateRange: DateRange{Start: dayPtr(2024, time.December, 1)}})
		if len(res.Contracts) != 1 || res.Contracts[0].ID != "12m" {
			t.Fatalf("unexpected contracts: %+v", res.Contracts)
		}
	})

	t.Run("end bound only", func(t *testing.T) {
		res := AggregateContracts(services, ContractFilters{EndDateRange: DateRange{End: dayPtr(2030, time.January, 1)}})
		for _, c := range res.Contracts {
			if c.ContractMonths == nil {
				t.Fatalf("open-ended contract included: %+v", c)
			}
		}
		if len(res.Contracts) != 2 {
			t.Fatalf("expected 2 contracts, got %d", len(res.Contracts))
		}
	})

	t.Run("no end filter keeps open-ended", func(t *testing.T) {
		res := AggregateContracts(services, ContractFilters{})
		if len(res.Contracts) != 3 {
			t.Fatalf("expected 3 contracts, got %d", len(res.Contracts))
		}
	})
}

func TestAggregateContracts_TotalsIncludeInactive(t *testing.T) {
	services := []entities.RecurringService{
		{ID: "a", StartDate: day(2024, time.March, 1), Amount: 150, Active: true},
		{ID: "b", StartDate: day(2024, time.January, 1), Amount: 50, Active: false},
		{ID: "c", StartDate: day(2024, time.February, 1), Amount: 100, Active: true},
		{ID: "no-start", Amount: 1000, Active: true},
	}
	res := AggregateContracts(services, ContractFilters{})

	want := ContractTotals{Count: 3, MonthlyRecurringTotal: 300, ActiveCount: 2, AverageValue: 100}
	if res.Totals != want {
		t.Fatalf("expected %+v, got %+v", want, res.Totals)
	}
	order := []string{"b", "c", "a"}
	for i, id := range order {
		if res.Contracts[i].ID != id {
			t.Fatalf("expected %v order, got %+v", order, res.Contracts)
		}
	}
}

func TestAggregateContracts_StatusContactAndStartRange(t *testing.T) {
	services := []entities.RecurringService{
		{ID: "a", ContactID: "c1", StartDate: day(2024, time.March, 1), Active: true},
		{ID: "b", ContactID: "c2", StartDate: day(2024, time.April, 1), Active: false},
		{ID: "c", ContactID: "c1", StartDate: day(2023, time.April, 1), Active: false},
	}

	if got := AggregateContracts(services, ContractFilters{Status: ContractStatusActive}).Contracts; len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("unexpected active contracts: %+v", got)
	}
	if got := AggregateContracts(services, ContractFilters{Status: ContractStatusInactive}).Contracts; len(got) != 2 {
		t.Fatalf("unexpected inactive contracts: %+v", got)
	}
	if got := AggregateContracts(services, ContractFilters{Status: "paused"}).Contracts; len(got) != 0 {
		t.Fatalf("unknown status must match nothing: %+v", got)
	}
	if got := AggregateContracts(services, ContractFilters{Contact: "c1"}).Contracts; len(got) != 2 {
		t.Fatalf("unexpected contact filter result: %+v", got)
	}
	res := AggregateContracts(services, ContractFilters{DateRange: DateRange{Start: dayPtr(2024, time.January, 1)}})
	if len(res.Contracts) != 2 || res.Contracts[0].ID != "a" {
		t.Fatalf("unexpected start range result: %+v", res.Contracts)
	}
}

func TestAggregateContracts_EmptyAverageIsZero(t *testing.T) {
	res := AggregateContracts(nil, ContractFilters{})
	if res.Totals.AverageValue != 0 || res.Totals.MonthlyRecurringTotal != 0 {
		t.Fatalf("expected zero totals, got %+v", res.Totals)
	}
}
