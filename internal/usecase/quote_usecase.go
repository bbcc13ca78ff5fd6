package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteValue  = errors.New("invalid quote value")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
	ErrInvalidQuoteInput  = errors.New("invalid quote input")
	ErrQuoteFinalized     = errors.New("quote already approved or rejected")
)

// CreateQuoteInput carries the fields a salesperson fills in.
type CreateQuoteInput struct {
	Title        string
	TotalValue   float64
	ValidUntil   *time.Time
	OwnerID      string
	BoardID      string
	StageID      string
	ContactID    string
	CustomerName string
}

// IQuoteUseCase exposes quote lifecycle operations.
//
//   - Create starts a quote as draft.
//   - UpdateStatus moves a quote along the pipeline by hand; approved and
//     rejected are final and expired is reserved for reconciliation.
type IQuoteUseCase interface {
	Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
	now  func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *QuoteUseCase) Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.OwnerID = strings.TrimSpace(in.OwnerID)
	in.BoardID = strings.TrimSpace(in.BoardID)
	if in.Title == "" || in.OwnerID == "" || in.BoardID == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}
	if in.TotalValue < 0 {
		return entities.Quote{}, ErrInvalidQuoteValue
	}

	now := u.now()
	q := entities.Quote{
		ID:           uuid.NewString(),
		Title:        in.Title,
		CreatedAt:    now,
		UpdatedAt:    now,
		ValidUntil:   in.ValidUntil,
		Status:       entities.QuoteStatusDraft,
		TotalValue:   in.TotalValue,
		OwnerID:      in.OwnerID,
		BoardID:      in.BoardID,
		StageID:      strings.TrimSpace(in.StageID),
		ContactID:    strings.TrimSpace(in.ContactID),
		CustomerName: strings.TrimSpace(in.CustomerName),
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	if !status.IsKnown() || status == entities.QuoteStatusExpired {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.Status.IsFinal() {
		return entities.Quote{}, ErrQuoteFinalized
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID != "" {
		return updated, nil
	}

	// the guarded write matched nothing: the quote was either removed or
	// decided since it was read
	after, err := u.GetByID(ctx, current.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] status change refused id=%s status=%s current=%s", current.ID, status, after.Status)
	return entities.Quote{}, ErrQuoteFinalized
}
