package interfaces

import (
	"context"
	"time"

	"crm_reports/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote.
//
// The CRM service must be able to:
//   - create quotes and change their status by hand
//   - read the full collection for reports and the dashboard
//   - find overdue quotes and move them to a board's expired stage

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	// UpdateStatus never changes an approved or rejected quote; it returns a
	// zero Quote in that case, the same as for an unknown id.
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	// ListOverdue returns quotes whose valid_until date is strictly before
	// the given day and whose status is not in excluded.
	ListOverdue(ctx context.Context, before time.Time, excluded []entities.QuoteStatus) ([]entities.Quote, error)
	// BulkExpire sets status=expired and stage_id=stageID on every id whose
	// status is not final, returning how many quotes changed.
	BulkExpire(ctx context.Context, ids []string, stageID string) (int, error)
}
