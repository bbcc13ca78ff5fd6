package request

import (
	"errors"
	"testing"

	"crm_reports/internal/domain/entities"
)

func TestCreateQuoteRequest_ToInput(t *testing.T) {
	r := CreateQuoteRequest{Title: "Site", TotalValue: 10, ValidUntil: "2024-06-30", OwnerID: "u1", BoardID: "b1", StageID: " s1 "}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ValidUntil == nil || in.ValidUntil.Format(DateLayout) != "2024-06-30" || in.StageID != "s1" {
		t.Fatalf("unexpected input: %+v", in)
	}

	r.ValidUntil = ""
	in, err = r.ToInput()
	if err != nil || in.ValidUntil != nil {
		t.Fatalf("expected nil validity, got %+v err=%v", in.ValidUntil, err)
	}

	r.ValidUntil = "30/06/2024"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUpdateQuoteStatusRequest_ResolveStatus(t *testing.T) {
	if got := (UpdateQuoteStatusRequest{Status: " Approved "}).ResolveStatus(); got != entities.QuoteStatusApproved {
		t.Fatalf("expected approved, got %q", got)
	}
}

func TestReportQuery(t *testing.T) {
	t.Run("quote filters", func(t *testing.T) {
		q := ReportQuery{Start: "2024-01-01", End: "2024-01-31", Status: "approved", Owner: " u1 "}
		f, err := q.QuoteFilters()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.DateRange.Start == nil || f.DateRange.End == nil || f.Status != "approved" || f.Owner != "u1" {
			t.Fatalf("unexpected filters: %+v", f)
		}
	})

	t.Run("open ended range", func(t *testing.T) {
		f, err := ReportQuery{Start: "2024-01-01"}.QuoteFilters()
		if err != nil || f.DateRange.End != nil || f.DateRange.Start == nil {
			t.Fatalf("unexpected filters: %+v err=%v", f, err)
		}
	})

	t.Run("contract filters", func(t *testing.T) {
		f, err := ReportQuery{EndStart: "2025-01-01", Contact: "c1", Status: "active"}.ContractFilters()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !f.EndDateRange.IsSet() || f.DateRange.IsSet() || f.Contact != "c1" {
			t.Fatalf("unexpected filters: %+v", f)
		}
	})

	t.Run("invalid dates", func(t *testing.T) {
		if _, err := (ReportQuery{End: "yesterday"}).QuoteFilters(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
		if _, err := (ReportQuery{EndEnd: "2024-13-01"}).ContractFilters(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("format", func(t *testing.T) {
		cases := map[string]string{"": FormatJSON, "XLSX": FormatXLSX, "pdf": FormatPDF}
		for in, want := range cases {
			got, err := ReportQuery{Format: in}.ResolveFormat()
			if err != nil || got != want {
				t.Fatalf("format %q: expected %q, got %q err=%v", in, want, got, err)
			}
		}
		if _, err := (ReportQuery{Format: "csv"}).ResolveFormat(); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("expected ErrInvalidFormat, got %v", err)
		}
	})
}
