package export

import (
	"fmt"
	"strconv"
	"time"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/domain/labels"
	"crm_reports/internal/usecase"
)

const displayDate = "02/01/2006"

// Table is the format-neutral shape rendered by the spreadsheet and PDF
// writers. Widths are maroto grid sizes and must add up to 12. FreeText
// marks columns holding user-entered text.
type Table struct {
	Title    string
	Subtitle string
	Headers  []string
	Widths   []int
	FreeText []bool
	Rows     [][]string
	Summary  []SummaryLine
}

type SummaryLine struct {
	Label string
	Value string
}

// QuoteTable lays out a quote report with pt-BR labels.
func QuoteTable(r usecase.QuoteReport) Table {
	t := Table{
		Title:    "Relatório de Orçamentos",
		Subtitle: subtitle(r.GeneratedAt, r.Filters.DateRange, r.Degraded),
		Headers:  []string{"Título", "Cliente", "Status", "Responsável", "Criado em", "Válido até", "Valor"},
		Widths:   []int{3, 2, 2, 1, 1, 1, 2},
		FreeText: []bool{true, true, false, true, false, false, false},
		Rows:     make([][]string, 0, len(r.Quotes)),
	}
	for _, q := range r.Quotes {
		t.Rows = append(t.Rows, []string{
			q.Title,
			q.CustomerName,
			labels.QuoteStatus(string(q.Status)),
			q.OwnerID,
			formatDay(q.CreatedAt),
			formatDayPtr(q.ValidUntil),
			labels.FormatCurrency(q.TotalValue),
		})
	}
	t.Summary = []SummaryLine{
		{Label: "Total de orçamentos", Value: strconv.Itoa(r.Totals.Count)},
		{Label: "Valor total", Value: labels.FormatCurrency(r.Totals.TotalValue)},
		{Label: "Valor aprovado", Value: labels.FormatCurrency(r.Totals.ApprovedValue)},
		{Label: "Valor em aberto", Value: labels.FormatCurrency(r.Totals.OpenValue)},
		{Label: "Taxa de conversão", Value: labels.FormatPercent(r.Totals.ConversionRate)},
	}
	return t
}

// ContractTable lays out a recurring-contract report with pt-BR labels.
func ContractTable(r usecase.ContractReport) Table {
	t := Table{
		Title:    "Relatório de Contratos Recorrentes",
		Subtitle: subtitle(r.GeneratedAt, r.Filters.DateRange, r.Degraded),
		Headers:  []string{"Descrição", "Contato", "Início", "Término", "Frequência", "Situação", "Valor"},
		Widths:   []int{3, 2, 1, 1, 2, 1, 2},
		FreeText: []bool{true, true, false, false, false, false, false},
		Rows:     make([][]string, 0, len(r.Contracts)),
	}
	for _, s := range r.Contracts {
		end := "-"
		if d, ok := s.EndDate(); ok {
			end = formatDay(d)
		}
		t.Rows = append(t.Rows, []string{
			s.Description,
			s.ContactName,
			formatDay(s.StartDate),
			end,
			labels.Frequency(string(s.Frequency)),
			labels.Active(s.Active),
			labels.FormatCurrency(s.Amount),
		})
	}
	t.Summary = []SummaryLine{
		{Label: "Total de contratos", Value: strconv.Itoa(r.Totals.Count)},
		{Label: "Contratos ativos", Value: strconv.Itoa(r.Totals.ActiveCount)},
		{Label: "Receita recorrente mensal", Value: labels.FormatCurrency(r.Totals.MonthlyRecurringTotal)},
		{Label: "Valor médio", Value: labels.FormatCurrency(r.Totals.AverageValue)},
	}
	return t
}

func subtitle(generatedAt time.Time, period usecase.DateRange, degraded bool) string {
	s := "Gerado em " + generatedAt.Format("02/01/2006 15:04")
	if period.IsSet() {
		s += fmt.Sprintf(" | Período: %s a %s", formatDayPtr(period.Start), formatDayPtr(period.End))
	}
	if degraded {
		s += " | Dados indisponíveis"
	}
	return s
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(displayDate)
}

func formatDayPtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDay(*t)
}

// quoteStatusCounts counts quotes per status in pipeline order.
func quoteStatusCounts(quotes []entities.Quote) map[entities.QuoteStatus]int {
	counts := make(map[entities.QuoteStatus]int, len(entities.QuoteStatuses))
	for _, q := range quotes {
		counts[q.Status]++
	}
	return counts
}
