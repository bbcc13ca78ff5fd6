package response

import (
	"time"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/domain/labels"
)

const dateLayout = "2006-01-02"

type QuoteResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	Overdue      bool      `json:"overdue"`
	TotalValue   float64   `json:"total_value"`
	ValidUntil   *string   `json:"valid_until"`
	OwnerID      string    `json:"owner_id"`
	BoardID      string    `json:"board_id"`
	StageID      string    `json:"stage_id"`
	ContactID    string    `json:"contact_id"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromQuote maps a quote; overdue is computed against now and never
// stored.
func FromQuote(q entities.Quote, now time.Time) QuoteResponse {
	res := QuoteResponse{
		ID:           q.ID,
		Title:        q.Title,
		Status:       string(q.Status),
		StatusLabel:  labels.QuoteStatus(string(q.Status)),
		Overdue:      q.IsOverdue(now),
		TotalValue:   q.TotalValue,
		OwnerID:      q.OwnerID,
		BoardID:      q.BoardID,
		StageID:      q.StageID,
		ContactID:    q.ContactID,
		CustomerName: q.CustomerName,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
	if q.ValidUntil != nil {
		d := q.ValidUntil.Format(dateLayout)
		res.ValidUntil = &d
	}
	return res
}

func FromQuotes(quotes []entities.Quote, now time.Time) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q, now))
	}
	return out
}
