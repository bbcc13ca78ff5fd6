package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase/interfaces"
)

type PipelineStageRepository struct {
	db *sql.DB
}

var _ interfaces.IPipelineStageRepository = (*PipelineStageRepository)(nil)

func NewPipelineStageRepository(db *sql.DB) *PipelineStageRepository {
	return &PipelineStageRepository{db: db}
}

func (r *PipelineStageRepository) FindExpiredStages(ctx context.Context, boardID, label string) ([]entities.PipelineStage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, board_id, name, position, system_role FROM pipeline_stages
	WHERE board_id = ? AND (system_role = ? OR name = ?)
	ORDER BY position`, boardID, entities.StageRoleExpired, label)
	if err != nil {
		return nil, fmt.Errorf("query stages board=%s: %w", boardID, err)
	}
	defer rows.Close()

	out := make([]entities.PipelineStage, 0)
	for rows.Next() {
		var s entities.PipelineStage
		if err := rows.Scan(&s.ID, &s.BoardID, &s.Name, &s.Position, &s.SystemRole); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
