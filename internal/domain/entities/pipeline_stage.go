package entities

// StageRoleExpired marks the stage that receives expired quotes on a board.
const StageRoleExpired = "expired"

// DefaultExpiredStageName is the display name used to find the expired stage
// on boards created before system roles existed.
const DefaultExpiredStageName = "Expirado"

// PipelineStage is a column of a kanban board.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (board_id-index): board_id
//
// Stages are maintained by the board editor; this service only reads them.
type PipelineStage struct {
	ID         string `json:"id"`
	BoardID    string `json:"board_id"`
	Name       string `json:"name"`
	Position   int    `json:"position"`
	SystemRole string `json:"system_role,omitempty"`
}

func (s PipelineStage) IsExpiredRole() bool {
	return s.SystemRole == StageRoleExpired
}
