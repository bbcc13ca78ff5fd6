package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/domain/labels"
	"crm_reports/internal/usecase/interfaces"
)

var ErrUnknownTile = errors.New("unknown dashboard tile")

const (
	TileOpenQuotes      = "open_quotes"
	TileOverdueQuotes   = "overdue_quotes"
	TileApprovedQuotes  = "approved_quotes"
	TileExpiredQuotes   = "expired_quotes"
	TileActiveContracts = "active_contracts"
	TileEndingContracts = "ending_contracts"
)

const defaultEndingSoonDays = 30

type DashboardTile struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type Dashboard struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Tiles       []DashboardTile `json:"tiles"`
	Degraded    bool            `json:"degraded"`
}

// Drilldown is the list behind a tile. Only one of Quotes or Contracts is
// populated, depending on the tile.
type Drilldown struct {
	Tile      DashboardTile               `json:"tile"`
	Quotes    []entities.Quote            `json:"quotes,omitempty"`
	Contracts []entities.RecurringService `json:"contracts,omitempty"`
	Degraded  bool                        `json:"degraded"`
}

// ReconcileTrigger starts a reconciliation without waiting for it.
type ReconcileTrigger interface {
	Trigger(ctx context.Context)
}

type IDashboardUseCase interface {
	Dashboard(ctx context.Context) Dashboard
	Drilldown(ctx context.Context, tile string) (Drilldown, error)
}

type quoteTile struct {
	key   string
	match func(q entities.Quote, now time.Time) bool
}

type contractTile struct {
	key   string
	match func(s entities.RecurringService, now time.Time) bool
}

type DashboardUseCase struct {
	quotes         interfaces.IQuoteRepository
	contracts      interfaces.IRecurringServiceRepository
	trigger        ReconcileTrigger
	endingSoonDays int
	now            func() time.Time

	quoteTiles    []quoteTile
	contractTiles []contractTile
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

type DashboardOption func(*DashboardUseCase)

// WithReconcileOnLoad makes every dashboard load fire a background
// reconciliation before reading quotes.
func WithReconcileOnLoad(trigger ReconcileTrigger) DashboardOption {
	return func(u *DashboardUseCase) { u.trigger = trigger }
}

func WithEndingSoonDays(days int) DashboardOption {
	return func(u *DashboardUseCase) {
		if days > 0 {
			u.endingSoonDays = days
		}
	}
}

func WithDashboardClock(now func() time.Time) DashboardOption {
	return func(u *DashboardUseCase) {
		if now != nil {
			u.now = now
		}
	}
}

func NewDashboardUseCase(quotes interfaces.IQuoteRepository, contracts interfaces.IRecurringServiceRepository, opts ...DashboardOption) *DashboardUseCase {
	u := &DashboardUseCase{
		quotes:         quotes,
		contracts:      contracts,
		endingSoonDays: defaultEndingSoonDays,
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}

	u.quoteTiles = []quoteTile{
		{key: TileOpenQuotes, match: func(q entities.Quote, _ time.Time) bool { return q.Status.IsOpen() }},
		{key: TileOverdueQuotes, match: func(q entities.Quote, now time.Time) bool { return q.IsOverdue(now) }},
		{key: TileApprovedQuotes, match: func(q entities.Quote, _ time.Time) bool { return q.Status == entities.QuoteStatusApproved }},
		{key: TileExpiredQuotes, match: func(q entities.Quote, _ time.Time) bool { return q.Status == entities.QuoteStatusExpired }},
	}
	u.contractTiles = []contractTile{
		{key: TileActiveContracts, match: func(s entities.RecurringService, _ time.Time) bool { return s.Active }},
		{key: TileEndingContracts, match: u.endingSoon},
	}
	return u
}

// endingSoon matches active contracts whose end date falls between today
// and today + endingSoonDays.
func (u *DashboardUseCase) endingSoon(s entities.RecurringService, now time.Time) bool {
	if !s.Active {
		return false
	}
	end, ok := s.EndDate()
	if !ok {
		return false
	}
	window := DateRange{Start: &now}
	limit := now.AddDate(0, 0, u.endingSoonDays)
	window.End = &limit
	return window.Contains(end)
}

func (u *DashboardUseCase) Dashboard(ctx context.Context) Dashboard {
	if u.trigger != nil {
		u.trigger.Trigger(ctx)
	}
	now := u.now()
	quotes, qErr := u.loadQuotes(ctx)
	contracts, cErr := u.loadContracts(ctx)

	d := Dashboard{GeneratedAt: now, Degraded: qErr != nil || cErr != nil}
	for _, t := range u.quoteTiles {
		d.Tiles = append(d.Tiles, summarizeQuotes(t.key, selectQuotes(quotes, t, now)))
	}
	for _, t := range u.contractTiles {
		d.Tiles = append(d.Tiles, summarizeContracts(t.key, selectContracts(contracts, t, now)))
	}
	return d
}

func (u *DashboardUseCase) Drilldown(ctx context.Context, tile string) (Drilldown, error) {
	now := u.now()
	for _, t := range u.quoteTiles {
		if t.key != tile {
			continue
		}
		quotes, err := u.loadQuotes(ctx)
		selected := selectQuotes(quotes, t, now)
		return Drilldown{Tile: summarizeQuotes(t.key, selected), Quotes: selected, Degraded: err != nil}, nil
	}
	for _, t := range u.contractTiles {
		if t.key != tile {
			continue
		}
		contracts, err := u.loadContracts(ctx)
		selected := selectContracts(contracts, t, now)
		return Drilldown{Tile: summarizeContracts(t.key, selected), Contracts: selected, Degraded: err != nil}, nil
	}
	return Drilldown{}, ErrUnknownTile
}

// loadQuotes returns the dated, ordered quote snapshot. On failure it logs
// and returns an empty snapshot alongside the error.
func (u *DashboardUseCase) loadQuotes(ctx context.Context) ([]entities.Quote, error) {
	quotes, err := u.quotes.ListAll(ctx)
	if err != nil {
		log.Printf("[dashboard][usecase] list quotes failed err=%v", err)
		return nil, err
	}
	return AggregateQuotes(quotes, QuoteFilters{}).Quotes, nil
}

func (u *DashboardUseCase) loadContracts(ctx context.Context) ([]entities.RecurringService, error) {
	contracts, err := u.contracts.ListAll(ctx)
	if err != nil {
		log.Printf("[dashboard][usecase] list recurring services failed err=%v", err)
		return nil, err
	}
	return AggregateContracts(contracts, ContractFilters{}).Contracts, nil
}

func selectQuotes(quotes []entities.Quote, t quoteTile, now time.Time) []entities.Quote {
	out := make([]entities.Quote, 0)
	for _, q := range quotes {
		if t.match(q, now) {
			out = append(out, q)
		}
	}
	return out
}

func selectContracts(contracts []entities.RecurringService, t contractTile, now time.Time) []entities.RecurringService {
	out := make([]entities.RecurringService, 0)
	for _, s := range contracts {
		if t.match(s, now) {
			out = append(out, s)
		}
	}
	return out
}

func summarizeQuotes(key string, quotes []entities.Quote) DashboardTile {
	tile := DashboardTile{Key: key, Label: labels.DashboardTile(key), Count: len(quotes)}
	for _, q := range quotes {
		tile.Value += q.TotalValue
	}
	return tile
}

func summarizeContracts(key string, contracts []entities.RecurringService) DashboardTile {
	tile := DashboardTile{Key: key, Label: labels.DashboardTile(key), Count: len(contracts)}
	for _, s := range contracts {
		tile.Value += s.Amount
	}
	return tile
}
