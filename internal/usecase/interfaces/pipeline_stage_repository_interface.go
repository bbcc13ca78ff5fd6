package interfaces

import (
	"context"

	"crm_reports/internal/domain/entities"
)

// IPipelineStageRepository reads board stages. Stages are owned by the board
// editor, so there are no write operations here.

type IPipelineStageRepository interface {
	// FindExpiredStages returns the stages of boardID that either carry the
	// expired system role or are named label.
	FindExpiredStages(ctx context.Context, boardID, label string) ([]entities.PipelineStage, error)
}
