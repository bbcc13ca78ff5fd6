package response

import (
	"time"

	"crm_reports/internal/domain/labels"
	"crm_reports/internal/usecase"
)

type TileResponse struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	Count          int     `json:"count"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formatted_value"`
}

type DashboardResponse struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Degraded    bool           `json:"degraded"`
	Tiles       []TileResponse `json:"tiles"`
}

type DrilldownResponse struct {
	Tile      TileResponse       `json:"tile"`
	Degraded  bool               `json:"degraded"`
	Quotes    []QuoteResponse    `json:"quotes,omitempty"`
	Contracts []ContractResponse `json:"contracts,omitempty"`
}

type ReconciliationResponse struct {
	Ran           bool      `json:"ran"`
	StartedAt     time.Time `json:"started_at"`
	Candidates    int       `json:"candidates"`
	Boards        int       `json:"boards"`
	Expired       int       `json:"expired"`
	SkippedBoards []string  `json:"skipped_boards"`
	FailedBoards  []string  `json:"failed_boards"`
	TotalRuns     int       `json:"total_runs"`
}

func FromTile(t usecase.DashboardTile) TileResponse {
	return TileResponse{
		Key:            t.Key,
		Label:          t.Label,
		Count:          t.Count,
		Value:          t.Value,
		FormattedValue: labels.FormatCurrency(t.Value),
	}
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	tiles := make([]TileResponse, 0, len(d.Tiles))
	for _, t := range d.Tiles {
		tiles = append(tiles, FromTile(t))
	}
	return DashboardResponse{GeneratedAt: d.GeneratedAt, Degraded: d.Degraded, Tiles: tiles}
}

func FromDrilldown(d usecase.Drilldown, now time.Time) DrilldownResponse {
	res := DrilldownResponse{Tile: FromTile(d.Tile), Degraded: d.Degraded}
	if d.Quotes != nil {
		res.Quotes = FromQuotes(d.Quotes, now)
	}
	if d.Contracts != nil {
		res.Contracts = FromContracts(d.Contracts)
	}
	return res
}

func FromReconciliation(r usecase.ReconciliationResult, ran bool, totalRuns int) ReconciliationResponse {
	return ReconciliationResponse{
		Ran:           ran,
		StartedAt:     r.StartedAt,
		Candidates:    r.Candidates,
		Boards:        r.Boards,
		Expired:       r.Expired,
		SkippedBoards: nonNil(r.SkippedBoards),
		FailedBoards:  nonNil(r.FailedBoards),
		TotalRuns:     totalRuns,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
