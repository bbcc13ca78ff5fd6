package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm_reports/internal/domain/entities"
	mock_interfaces "crm_reports/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_QuoteReport(t *testing.T) {
	t.Run("aggregates snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewReportUseCase(quotes, nil)

		quotes.EXPECT().ListAll(gomock.Any()).Return([]entities.Quote{
			{ID: "q1", CreatedAt: day(2024, time.January, 15), Status: entities.QuoteStatusSent, TotalValue: 1000},
			{ID: "q2", CreatedAt: day(2024, time.February, 1), Status: entities.QuoteStatusApproved, TotalValue: 2000},
		}, nil)

		res := uc.QuoteReport(context.Background(), QuoteFilters{Status: "approved"})
		if res.Degraded || res.Totals.Count != 1 || res.Totals.ApprovedValue != 2000 || res.Totals.ConversionRate != 100 {
			t.Fatalf("unexpected report: %+v", res)
		}
		if res.GeneratedAt.IsZero() || res.Filters.Status != "approved" {
			t.Fatalf("expected generated time and filters echoed: %+v", res)
		}
	})

	t.Run("store failure degrades to empty report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewReportUseCase(quotes, nil)
		quotes.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		res := uc.QuoteReport(context.Background(), QuoteFilters{})
		if !res.Degraded || res.Totals.Count != 0 || res.Totals.ConversionRate != 0 {
			t.Fatalf("unexpected report: %+v", res)
		}
	})
}

func TestReportUseCase_ContractReport(t *testing.T) {
	t.Run("aggregates snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIRecurringServiceRepository(ctrl)
		uc := NewReportUseCase(nil, contracts)

		contracts.EXPECT().ListAll(gomock.Any()).Return([]entities.RecurringService{
			{ID: "s1", StartDate: day(2024, time.January, 1), Amount: 100, Active: true},
			{ID: "s2", StartDate: day(2023, time.January, 1), Amount: 300, Active: false},
		}, nil)

		res := uc.ContractReport(context.Background(), ContractFilters{})
		if res.Totals.Count != 2 || res.Totals.MonthlyRecurringTotal != 400 || res.Totals.ActiveCount != 1 || res.Totals.AverageValue != 200 {
			t.Fatalf("unexpected totals: %+v", res.Totals)
		}
		if res.Contracts[0].ID != "s2" {
			t.Fatalf("expected oldest first, got %+v", res.Contracts)
		}
	})

	t.Run("store failure degrades to empty report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIRecurringServiceRepository(ctrl)
		uc := NewReportUseCase(nil, contracts)
		contracts.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		res := uc.ContractReport(context.Background(), ContractFilters{})
		if !res.Degraded || res.Totals.AverageValue != 0 {
			t.Fatalf("unexpected report: %+v", res)
		}
	})
}
