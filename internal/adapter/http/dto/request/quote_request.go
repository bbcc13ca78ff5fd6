package request

import (
	"errors"
	"strings"
	"time"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidFormat = errors.New("invalid report format")
)

// CreateQuoteRequest is the payload of POST /quotes.
type CreateQuoteRequest struct {
	Title        string  `json:"title" binding:"required"`
	TotalValue   float64 `json:"total_value"`
	ValidUntil   string  `json:"valid_until"`
	OwnerID      string  `json:"owner_id" binding:"required"`
	BoardID      string  `json:"board_id" binding:"required"`
	StageID      string  `json:"stage_id"`
	ContactID    string  `json:"contact_id"`
	CustomerName string  `json:"customer_name"`
}

func (r CreateQuoteRequest) ToInput() (usecase.CreateQuoteInput, error) {
	validUntil, err := parseOptionalDate(r.ValidUntil)
	if err != nil {
		return usecase.CreateQuoteInput{}, err
	}
	return usecase.CreateQuoteInput{
		Title:        r.Title,
		TotalValue:   r.TotalValue,
		ValidUntil:   validUntil,
		OwnerID:      r.OwnerID,
		BoardID:      r.BoardID,
		StageID:      strings.TrimSpace(r.StageID),
		ContactID:    strings.TrimSpace(r.ContactID),
		CustomerName: strings.TrimSpace(r.CustomerName),
	}, nil
}

// UpdateQuoteStatusRequest is the payload of PATCH /quotes/:id/status.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateQuoteStatusRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// parseOptionalDate returns nil for an empty value.
func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
