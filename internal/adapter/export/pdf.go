package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders t as a landscape A4 document.
func GeneratePDF(t Table) ([]byte, error) {
	if len(t.Headers) == 0 {
		return nil, fmt.Errorf("table has no columns")
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, t)
	addPDFTableHeader(m, t)
	for i, r := range t.Rows {
		addPDFTableRow(m, t, r, i%2 == 1)
	}
	addPDFSummary(m, t)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addPDFHeader(m core.Maroto, t Table) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(t.Title, props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(t.Subtitle, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(4),
	)
}

func addPDFTableHeader(m core.Maroto, t Table) {
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	cols := make([]core.Col, 0, len(t.Headers))
	for i, h := range t.Headers {
		cols = append(cols, col.New(t.gridAt(i)).Add(text.New(h, headerText)).WithStyle(&headerCell))
	}
	m.AddRows(row.New(8).Add(cols...))
}

func addPDFTableRow(m core.Maroto, t Table, r []string, shaded bool) {
	body := props.Text{Size: 7, Align: align.Left}
	var cell *props.Cell
	if shaded {
		cell = &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	}

	cols := make([]core.Col, 0, len(t.Headers))
	for i := range t.Headers {
		v := ""
		if i < len(r) {
			v = r[i]
		}
		style := body
		if i == len(t.Headers)-1 {
			style.Align = align.Right
		}
		c := col.New(t.gridAt(i)).Add(text.New(v, style))
		if cell != nil {
			c = c.WithStyle(cell)
		}
		cols = append(cols, c)
	}
	m.AddRows(row.New(7).Add(cols...))
}

func addPDFSummary(m core.Maroto, t Table) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	style := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	for _, s := range t.Summary {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(s.Label, style)).WithStyle(summaryCell),
				col.New(4).Add(text.New(s.Value, style)).WithStyle(summaryCell),
			),
		)
	}
}

// gridAt returns the maroto column size for column i.
func (t Table) gridAt(i int) int {
	if i < len(t.Widths) && t.Widths[i] > 0 {
		return t.Widths[i]
	}
	return 1
}
