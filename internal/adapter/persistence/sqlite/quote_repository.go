package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase/interfaces"
)

const quoteColumns = `id, title, created_at, updated_at, valid_until, status, total_value,
	owner_id, board_id, stage_id, contact_id, customer_name`

// QuoteRepository persists quotes in the local SQLite database.
type QuoteRepository struct {
	db *sql.DB
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	_, err := r.db.ExecContext(ctx, `INSERT INTO quotes(`+quoteColumns+`) VALUES(?,?,?,?,?,?,?,?,?,?,?,?)`,
		q.ID, q.Title, formatTimestamp(q.CreatedAt), formatTimestamp(q.UpdatedAt), nullDate(q.ValidUntil),
		string(q.Status), q.TotalValue, q.OwnerID, q.BoardID, q.StageID, q.ContactID, q.CustomerName)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("insert quote: %w", err)
	}
	return q, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = ?`, id)
	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, fmt.Errorf("get quote: %w", err)
	}
	return q, nil
}

// UpdateStatus leaves approved and rejected quotes untouched and reports
// them like a missing id.
func (r *QuoteRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE quotes SET status = ?, updated_at = ?
	WHERE id = ? AND status NOT IN (?, ?)`,
		string(status), formatTimestamp(time.Now()), id,
		string(entities.QuoteStatusApproved), string(entities.QuoteStatusRejected))
	if err != nil {
		return entities.Quote{}, fmt.Errorf("update quote status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.Quote{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *QuoteRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	return r.list(ctx, `SELECT `+quoteColumns+` FROM quotes`)
}

func (r *QuoteRepository) ListOverdue(ctx context.Context, before time.Time, excluded []entities.QuoteStatus) ([]entities.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes
	WHERE valid_until IS NOT NULL AND valid_until <> '' AND valid_until < ?`
	args := []any{before.Format(dateLayout)}
	if len(excluded) > 0 {
		query += ` AND status NOT IN (` + placeholders(len(excluded)) + `)`
		for _, s := range excluded {
			args = append(args, string(s))
		}
	}
	return r.list(ctx, query, args...)
}

// BulkExpire moves every listed quote that is not approved or rejected to
// the expired status and the given stage in a single statement.
func (r *QuoteRepository) BulkExpire(ctx context.Context, ids []string, stageID string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	args := []any{string(entities.QuoteStatusExpired), stageID, formatTimestamp(time.Now())}
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, string(entities.QuoteStatusApproved), string(entities.QuoteStatusRejected))

	res, err := r.db.ExecContext(ctx, `UPDATE quotes SET status = ?, stage_id = ?, updated_at = ?
	WHERE id IN (`+placeholders(len(ids))+`) AND status NOT IN (?, ?)`, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk expire quotes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *QuoteRepository) list(ctx context.Context, query string, args ...any) ([]entities.Quote, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func scanQuote(row rowScanner) (entities.Quote, error) {
	var (
		q                    entities.Quote
		createdAt, updatedAt string
		validUntil           sql.NullString
		status               string
	)
	err := row.Scan(&q.ID, &q.Title, &createdAt, &updatedAt, &validUntil, &status, &q.TotalValue,
		&q.OwnerID, &q.BoardID, &q.StageID, &q.ContactID, &q.CustomerName)
	if err != nil {
		return entities.Quote{}, err
	}
	q.CreatedAt = parseTimestamp(createdAt)
	q.UpdatedAt = parseTimestamp(updatedAt)
	q.Status = entities.QuoteStatus(status)
	if validUntil.Valid {
		if d := parseDate(validUntil.String); !d.IsZero() {
			q.ValidUntil = &d
		}
	}
	return q, nil
}
