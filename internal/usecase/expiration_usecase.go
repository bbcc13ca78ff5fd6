package usecase

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase/interfaces"
)

// ReconciliationResult summarizes one reconciliation run.
type ReconciliationResult struct {
	StartedAt     time.Time `json:"started_at"`
	Candidates    int       `json:"candidates"`
	Boards        int       `json:"boards"`
	Expired       int       `json:"expired"`
	SkippedBoards []string  `json:"skipped_boards"`
	FailedBoards  []string  `json:"failed_boards"`
}

// IReconciler moves overdue quotes to their board's expired stage.
//
// Run never fails: every error is logged and the run degrades to
// "nothing changed" for the affected part.
type IReconciler interface {
	Run(ctx context.Context) ReconciliationResult
}

type ExpirationReconciler struct {
	quotes       interfaces.IQuoteRepository
	stages       interfaces.IPipelineStageRepository
	expiredLabel string
	now          func() time.Time
}

var _ IReconciler = (*ExpirationReconciler)(nil)

type ReconcilerOption func(*ExpirationReconciler)

// WithExpiredStageLabel overrides the stage name used when a board has no
// stage flagged with the expired role.
func WithExpiredStageLabel(label string) ReconcilerOption {
	return func(r *ExpirationReconciler) {
		if strings.TrimSpace(label) != "" {
			r.expiredLabel = label
		}
	}
}

func WithClock(now func() time.Time) ReconcilerOption {
	return func(r *ExpirationReconciler) {
		if now != nil {
			r.now = now
		}
	}
}

func NewExpirationReconciler(quotes interfaces.IQuoteRepository, stages interfaces.IPipelineStageRepository, opts ...ReconcilerOption) *ExpirationReconciler {
	r := &ExpirationReconciler{
		quotes:       quotes,
		stages:       stages,
		expiredLabel: entities.DefaultExpiredStageName,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ExpirationReconciler) Run(ctx context.Context) (res ReconciliationResult) {
	now := r.now()
	res = ReconciliationResult{StartedAt: now, SkippedBoards: []string{}, FailedBoards: []string{}}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[reconcile][usecase] recovered from panic: %v", rec)
		}
	}()

	today := entities.StartOfDay(now)
	candidates, err := r.quotes.ListOverdue(ctx, today, entities.ExpirationExcludedStatuses)
	if err != nil {
		log.Printf("[reconcile][usecase] list overdue failed err=%v", err)
		return res
	}

	byBoard := make(map[string][]string)
	for _, q := range candidates {
		if !q.IsOverdue(now) {
			continue
		}
		res.Candidates++
		byBoard[q.BoardID] = append(byBoard[q.BoardID], q.ID)
	}
	if res.Candidates == 0 {
		log.Printf("[reconcile][usecase] nothing to expire")
		return res
	}

	boards := make([]string, 0, len(byBoard))
	for boardID := range byBoard {
		boards = append(boards, boardID)
	}
	slices.Sort(boards)
	res.Boards = len(boards)

	for _, boardID := range boards {
		ids := byBoard[boardID]
		n, skipped, err := r.expireBoard(ctx, boardID, ids)
		switch {
		case err != nil:
			log.Printf("[reconcile][usecase] board failed board_id=%s quotes=%d updated=%d err=%v", boardID, len(ids), n, err)
			res.FailedBoards = append(res.FailedBoards, boardID)
			res.Expired += n
		case skipped:
			log.Printf("[reconcile][usecase] no expired stage board_id=%s quotes=%d; skipping", boardID, len(ids))
			res.SkippedBoards = append(res.SkippedBoards, boardID)
		default:
			res.Expired += n
		}
	}

	log.Printf("[reconcile][usecase] done candidates=%d boards=%d expired=%d skipped=%d failed=%d",
		res.Candidates, res.Boards, res.Expired, len(res.SkippedBoards), len(res.FailedBoards))
	return res
}

// expireBoard resolves the board's expired stage and moves ids into it.
// On a partial failure expired still counts the quotes that were moved.
func (r *ExpirationReconciler) expireBoard(ctx context.Context, boardID string, ids []string) (expired int, skipped bool, err error) {
	if strings.TrimSpace(boardID) == "" {
		return 0, true, nil
	}

	stage, ok, err := r.resolveExpiredStage(ctx, boardID)
	if err != nil {
		return 0, false, fmt.Errorf("resolve expired stage: %w", err)
	}
	if !ok {
		return 0, true, nil
	}

	n, err := r.quotes.BulkExpire(ctx, ids, stage.ID)
	if err != nil {
		return n, false, fmt.Errorf("bulk expire: %w", err)
	}
	log.Printf("[reconcile][usecase] board expired board_id=%s stage_id=%s quotes=%d updated=%d", boardID, stage.ID, len(ids), n)
	return n, false, nil
}

func (r *ExpirationReconciler) resolveExpiredStage(ctx context.Context, boardID string) (entities.PipelineStage, bool, error) {
	stages, err := r.stages.FindExpiredStages(ctx, boardID, r.expiredLabel)
	if err != nil {
		return entities.PipelineStage{}, false, err
	}
	stage, ok := PickExpiredStage(stages, boardID, r.expiredLabel)
	return stage, ok, nil
}

// PickExpiredStage prefers a stage flagged with the expired role and falls
// back to one whose name equals label exactly.
func PickExpiredStage(stages []entities.PipelineStage, boardID, label string) (entities.PipelineStage, bool) {
	var byName *entities.PipelineStage
	for i := range stages {
		s := stages[i]
		if s.BoardID != "" && s.BoardID != boardID {
			continue
		}
		if s.IsExpiredRole() {
			return s, true
		}
		if byName == nil && s.Name == label {
			byName = &stages[i]
		}
	}
	if byName != nil {
		return *byName, true
	}
	return entities.PipelineStage{}, false
}
