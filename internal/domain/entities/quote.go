package entities

import "time"

// QuoteStatus represents the lifecycle of a sales quote (orçamento).
//
// Domain notes:
//   - approved and rejected are final decisions taken by the customer.
//   - expired is only ever written by the reconciliation job.
type QuoteStatus string

const (
	QuoteStatusDraft       QuoteStatus = "draft"
	QuoteStatusSent        QuoteStatus = "sent"
	QuoteStatusViewed      QuoteStatus = "viewed"
	QuoteStatusNegotiation QuoteStatus = "negotiation"
	QuoteStatusApproved    QuoteStatus = "approved"
	QuoteStatusRejected    QuoteStatus = "rejected"
	QuoteStatusExpired     QuoteStatus = "expired"
)

// QuoteStatuses lists every known status in pipeline order.
var QuoteStatuses = []QuoteStatus{
	QuoteStatusDraft,
	QuoteStatusSent,
	QuoteStatusViewed,
	QuoteStatusNegotiation,
	QuoteStatusApproved,
	QuoteStatusRejected,
	QuoteStatusExpired,
}

// ExpirationExcludedStatuses are never picked up by the reconciliation job.
var ExpirationExcludedStatuses = []QuoteStatus{
	QuoteStatusApproved,
	QuoteStatusRejected,
	QuoteStatusExpired,
}

func (s QuoteStatus) IsKnown() bool {
	for _, known := range QuoteStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsFinal reports a customer decision that nothing may overwrite.
func (s QuoteStatus) IsFinal() bool {
	return s == QuoteStatusApproved || s == QuoteStatusRejected
}

// IsTerminal reports statuses that never transition to expired.
func (s QuoteStatus) IsTerminal() bool {
	return s.IsFinal() || s == QuoteStatusExpired
}

// IsOpen reports statuses counted as open pipeline value in reports.
// viewed is deliberately not part of the open set.
func (s QuoteStatus) IsOpen() bool {
	return s == QuoteStatusDraft || s == QuoteStatusSent || s == QuoteStatusNegotiation
}

// Quote is the sales quote persisted by the CRM store.
//
// Storage model (DynamoDB):
//   - PK: id
//   - valid_until is a date-only string (2006-01-02) so it compares lexically
type Quote struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	ValidUntil   *time.Time  `json:"valid_until,omitempty"`
	Status       QuoteStatus `json:"status"`
	TotalValue   float64     `json:"total_value"`
	OwnerID      string      `json:"owner_id"`
	BoardID      string      `json:"board_id"`
	StageID      string      `json:"stage_id"`
	ContactID    string      `json:"contact_id"`
	CustomerName string      `json:"customer_name"`
}

// IsOverdue is the single predicate for "validity has elapsed but the quote
// has not reached a terminal state". A quote is overdue from the day after
// its validity date.
func IsOverdue(status QuoteStatus, validUntil *time.Time, now time.Time) bool {
	if validUntil == nil || validUntil.IsZero() {
		return false
	}
	if status.IsTerminal() {
		return false
	}
	return StartOfDay(*validUntil).Before(StartOfDay(now))
}

func (q Quote) IsOverdue(now time.Time) bool {
	return IsOverdue(q.Status, q.ValidUntil, now)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}
