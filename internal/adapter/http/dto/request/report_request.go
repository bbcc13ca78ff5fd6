package request

import (
	"strings"

	"crm_reports/internal/usecase"
)

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ReportQuery holds the query string accepted by the report endpoints.
// Dates are calendar days (YYYY-MM-DD) and both bounds are inclusive.
type ReportQuery struct {
	Start    string `form:"start"`
	End      string `form:"end"`
	Status   string `form:"status"`
	Owner    string `form:"owner"`
	EndStart string `form:"end_start"`
	EndEnd   string `form:"end_end"`
	Contact  string `form:"contact"`
	Format   string `form:"format"`
}

func (q ReportQuery) QuoteFilters() (usecase.QuoteFilters, error) {
	period, err := ParseDateRange(q.Start, q.End)
	if err != nil {
		return usecase.QuoteFilters{}, err
	}
	return usecase.QuoteFilters{
		DateRange: period,
		Status:    strings.TrimSpace(q.Status),
		Owner:     strings.TrimSpace(q.Owner),
	}, nil
}

func (q ReportQuery) ContractFilters() (usecase.ContractFilters, error) {
	period, err := ParseDateRange(q.Start, q.End)
	if err != nil {
		return usecase.ContractFilters{}, err
	}
	endPeriod, err := ParseDateRange(q.EndStart, q.EndEnd)
	if err != nil {
		return usecase.ContractFilters{}, err
	}
	return usecase.ContractFilters{
		DateRange:    period,
		EndDateRange: endPeriod,
		Status:       strings.TrimSpace(q.Status),
		Contact:      strings.TrimSpace(q.Contact),
	}, nil
}

// ResolveFormat defaults to json.
func (q ReportQuery) ResolveFormat() (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(q.Format)); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatXLSX, FormatPDF:
		return f, nil
	default:
		return "", ErrInvalidFormat
	}
}

// ParseDateRange parses optional inclusive bounds. Either side may be empty.
func ParseDateRange(start, end string) (usecase.DateRange, error) {
	s, err := parseOptionalDate(start)
	if err != nil {
		return usecase.DateRange{}, err
	}
	e, err := parseOptionalDate(end)
	if err != nil {
		return usecase.DateRange{}, err
	}
	return usecase.DateRange{Start: s, End: e}, nil
}
