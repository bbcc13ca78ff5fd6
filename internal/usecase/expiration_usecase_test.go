package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm_reports/internal/domain/entities"
	mock_interfaces "crm_reports/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var reconcileNow = time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

func overdueQuote(id, board string, status entities.QuoteStatus) entities.Quote {
	validUntil := day(2024, time.January, 1)
	return entities.Quote{ID: id, BoardID: board, Status: status, ValidUntil: &validUntil, CreatedAt: day(2023, time.December, 1)}
}

func newReconcilerUnderTest(t *testing.T) (*ExpirationReconciler, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockIPipelineStageRepository) {
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	stages := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
	r := NewExpirationReconciler(quotes, stages, WithClock(fixedClock(reconcileNow)))
	return r, quotes, stages
}

func TestExpirationReconciler_ExpiresIntoFlaggedStage(t *testing.T) {
	r, quotes, stages := newReconcilerUnderTest(t)

	quotes.EXPECT().ListOverdue(gomock.Any(), day(2024, time.June, 1), entities.ExpirationExcludedStatuses).
		Return([]entities.Quote{overdueQuote("q1", "B1", entities.QuoteStatusSent)}, nil)
	stages.EXPECT().FindExpiredStages(gomock.Any(), "B1", entities.DefaultExpiredStageName).
		Return([]entities.PipelineStage{
			{ID: "stage-10", BoardID: "B1", Name: entities.DefaultExpiredStageName},
			{ID: "stage-77", BoardID: "B1", Name: "Perdidos", SystemRole: entities.StageRoleExpired},
		}, nil)
	quotes.EXPECT().BulkExpire(gomock.Any(), []string{"q1"}, "stage-77").Return(1, nil)

	res := r.Run(context.Background())
	if res.Expired != 1 || res.Candidates != 1 || res.Boards != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestExpirationReconciler_FallsBackToStageName(t *testing.T) {
	r, quotes, stages := newReconcilerUnderTest(t)

	quotes.EXPECT().ListOverdue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]entities.Quote{overdueQuote("q1", "B1", entities.QuoteStatusDraft), overdueQuote("q2", "B1", entities.QuoteStatusNegotiation)}, nil)
	stages.EXPECT().FindExpiredStages(gomock.Any(), "B1", entities.DefaultExpiredStageName).
		Return([]entities.PipelineStage{{ID: "stage-9", BoardID: "B1", Name: entities.DefaultExpiredStageName}}, nil)
	quotes.EXPECT().BulkExpire(gomock.Any(), []string{"q1", "q2"}, "stage-9").Return(2, nil)

	if res := r.Run(context.Background()); res.Expired != 2 {
		t.Fatalf("expected 2 expired, got %+v", res)
	}
}

func TestExpirationReconciler_CustomLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	stages := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
	r := NewExpirationReconciler(quotes, stages, WithClock(fixedClock(reconcileNow)), WithExpiredStageLabel("Vencidos"))

	quotes.EXPECT().ListOverdue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]entities.Quote{overdueQuote("q1", "B1", entities.QuoteStatusSent)}, nil)
	stages.EXPECT().FindExpiredStages(gomock.Any(), "B1", "Vencidos").
		Return([]entities.PipelineStage{{ID: "s-expirado", BoardID: "B1", Name: entities.DefaultExpiredStageName}, {ID: "s-vencidos", BoardID: "B1", Name: "Vencidos"}}, nil)
	quotes.EXPECT().BulkExpire(gomock.Any(), []string{"q1"}, "s-vencidos").Return(1, nil)

	r.Run(context.Background())
}

func TestExpirationReconciler_UnresolvableBoardIsSkipped(t *testing.T) {
	r, quotes, stages := newReconcilerUnderTest(t)

	quotes.EXPECT().ListOverdue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]entities.Quote{overdueQuote("q1", "B1", entities.QuoteStatusSent)}, nil)
	stages.EXPECT().FindExpiredStages(gomock.Any(), "B1", gomock.Any()).Return(nil, nil)
	// BulkExpire must not be called: the quote stays "sent".

	res := r.Run(context.Background())
	if res.Expired != 0 || len(res.SkippedBoards) != 1 || res.SkippedBoards[0] != "B1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestExpirationReconciler_FailOpenAcrossBoards(t *testing.T) {
	r, quotes, stages := newReconcilerUnderTest(t)

	quotes.EXPECT().ListOverdue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Quote{
		overdueQuote("a1", "A", entities.QuoteStatusSent),
		overdueQuote("b1", "B", entities.QuoteStatusSent),
		overdueQuote("c1", "C", entities.QuoteStatusViewed),
		overdueQuote("d1", "D", entities.QuoteStatusViewed),
		overdueQuote("n1", "", entities.QuoteStatusViewed),
	}, nil)

	stages.EXPECT().FindExpiredStages(gomock.Any(), "A", gomock.Any()).Return(nil, errors.New("timeout"))
	stages.EXPECT().FindExpiredStages(gomock.Any(), "B", gomock.Any()).Return(nil, nil)
	stages.EXPECT().FindExpiredStages(gomock.Any(), "C", gomock.Any()).
		Return([]entities.PipelineStage{{ID: "c-exp", BoardID: "C", SystemRole: entities.StageRoleExpired}}, nil)
	stages.EXPECT().FindExpiredStages(gomock.Any(), "D", gomock.Any()).
		Return([]entities.PipelineStage{{ID: "d-exp", BoardID: "D", SystemRole: entities.StageRoleExpired}}, nil)
	quotes.EXPECT().BulkExpire(gomock.Any(), []string{"c1"}, "c-exp").Return(0, errors.New("throttled"))
	quotes.EXPECT().BulkExpire(gomock.Any(), []string{"d1"}, "d-exp").Return(1, nil)

	res := r.Run(context.Background())
	if res.Expired != 1 {
		t.Fatalf("expected board D to be processed, got %+v", res)
	}
	if len(res.FailedBoards) != 2 || res.FailedBoards[0] != "A" || res.FailedBoards[1] != "C" {
		t.Fatalf("unexpected failed boards: %+v", res.FailedBoards)
	}
	if len(res.SkippedBoards) != 2 || res.SkippedBoards[0] != "" || res.SkippedBoards[1] != "B" {
		t.Fatalf("unexpected skipped boards: %+v", res.SkippedBoards)
	}
}

func TestExpirationReconciler_PartialBoardFailureCountsExpired(t *testing.T) {
	r, quotes, stages := newReconcilerUnderTest(t)

	quotes.EXPECT().ListOverdue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Quote{
		overdueQuote("q1", "B1", entities.QuoteStatusSent),
		overdueQuote("q2", "B1", entities.QuoteStatusSent),
		overdueQuote("q3", "B1", entities.QuoteStatusSent),
	}, nil)
	stages.EXPECT().FindExpiredStages(gomock.Any(), "B1", gomock.Any()).
		Return([]entities.PipelineStage{{ID: "stage-77", BoardID: "B1", SystemRole: entities.StageRoleExpired}}, nil)
	quotes.EXPECT().BulkExpire(gomock.Any(), []string{"q1", "q2", "q3"}, "stage-77").Return(2, errors.New("throttled"))

	res := r.Run(context.Background())
	if res.Expired != 2 {
		t.Fatalf("expected the two moved quotes to be counted, got %+v", res)
	}
	if len(res.FailedBoards) != 1 || res.FailedBoards[0] != "B1" {
		t.Fatalf("unexpected failed boards: %+v", res.FailedBoards)
	}
}

func TestExpirationReconciler_QueryFailureIsNoop(t *testing.T) {
	r, quotes, _ := newReconcilerUnderTest(t)
	quotes.EXPECT().ListOverdue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	res := r.Run(context.Background())
	if res.Candidates != 0 || res.Expired != 0 {
		t.Fatalf("expected no-op, got %+v", res)
	}
}

func TestExpirationReconciler_NeverTransitionsTerminalQuotes(t *testing.T) {
	r, quotes, _ := newReconcilerUnderTest(t)

	notYetDue := day(2024, time.June, 1)
	quotes.EXPECT().ListOverdue(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).Return([]entities.Quote{
		overdueQuote("approved", "B1", entities.QuoteStatusApproved),
		overdueQuote("rejected", "B1", entities.QuoteStatusRejected),
		overdueQuote("expired", "B1", entities.QuoteStatusExpired),
		{ID: "due-today", BoardID: "B1", Status: entities.QuoteStatusSent, ValidUntil: &notYetDue},
		{ID: "no-deadline", BoardID: "B1", Status: entities.QuoteStatusSent},
	}, nil)

	for i := 0; i < 3; i++ {
		if res := r.Run(context.Background()); res.Candidates != 0 || res.Expired != 0 {
			t.Fatalf("run %d touched terminal or current quotes: %+v", i, res)
		}
	}
}

func TestExpirationReconciler_Idempotent(t *testing.T) {
	r, quotes, stages := newReconcilerUnderTest(t)

	gomock.InOrder(
		quotes.EXPECT().ListOverdue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]entities.Quote{overdueQuote("q1", "B1", entities.QuoteStatusSent)}, nil),
		quotes.EXPECT().ListOverdue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil),
	)
	stages.EXPECT().FindExpiredStages(gomock.Any(), "B1", gomock.Any()).
		Return([]entities.PipelineStage{{ID: "stage-77", BoardID: "B1", SystemRole: entities.StageRoleExpired}}, nil).Times(1)
	quotes.EXPECT().BulkExpire(gomock.Any(), []string{"q1"}, "stage-77").Return(1, nil).Times(1)

	first := r.Run(context.Background())
	second := r.Run(context.Background())
	if first.Expired != 1 || second.Expired != 0 || second.Boards != 0 {
		t.Fatalf("unexpected results: first=%+v second=%+v", first, second)
	}
}

func TestExpirationReconciler_RecoversFromPanic(t *testing.T) {
	r, quotes, _ := newReconcilerUnderTest(t)
	quotes.EXPECT().ListOverdue(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time, []entities.QuoteStatus) ([]entities.Quote, error) {
			panic("boom")
		},
	)

	res := r.Run(context.Background())
	if res.Expired != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPickExpiredStage(t *testing.T) {
	stages := []entities.PipelineStage{
		{ID: "other-board", BoardID: "B2", SystemRole: entities.StageRoleExpired},
		{ID: "named", BoardID: "B1", Name: "Expirado"},
		{ID: "flagged", BoardID: "B1", SystemRole: entities.StageRoleExpired},
	}
	if s, ok := PickExpiredStage(stages, "B1", "Expirado"); !ok || s.ID != "flagged" {
		t.Fatalf("expected flagged stage, got %+v ok=%v", s, ok)
	}
	if s, ok := PickExpiredStage(stages[:2], "B1", "Expirado"); !ok || s.ID != "named" {
		t.Fatalf("expected named stage, got %+v ok=%v", s, ok)
	}
	if _, ok := PickExpiredStage(stages[:2], "B1", "expirado"); ok {
		t.Fatalf("name match must be exact")
	}
	if _, ok := PickExpiredStage(nil, "B1", "Expirado"); ok {
		t.Fatalf("expected no stage")
	}
}
