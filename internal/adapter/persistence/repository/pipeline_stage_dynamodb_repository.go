package repository

import (
	"context"
	"fmt"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPipelineStagesTableName = "pipeline_stages"
	pipelineStagesBoardIDIndex     = "board_id-index"
)

type pipelineStageItem struct {
	ID         string `dynamodbav:"id"`
	BoardID    string `dynamodbav:"board_id"`
	Name       string `dynamodbav:"name"`
	Position   int    `dynamodbav:"position"`
	SystemRole string `dynamodbav:"system_role,omitempty"`
}

// PipelineStageDynamoRepository reads kanban stages from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: board_id-index (PK: board_id)

type PipelineStageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPipelineStageRepository = (*PipelineStageDynamoRepository)(nil)

func NewPipelineStageDynamoRepository(ddb *dynamodb.Client) *PipelineStageDynamoRepository {
	return &PipelineStageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PIPELINE_STAGES_TABLE", defaultPipelineStagesTableName),
	}
}

func (r *PipelineStageDynamoRepository) FindExpiredStages(ctx context.Context, boardID, label string) ([]entities.PipelineStage, error) {
	items, err := queryAll[pipelineStageItem](ctx, r.ddb, expiredStagesQuery(r.tableName, boardID, label))
	if err != nil {
		return nil, fmt.Errorf("query stages board=%s: %w", boardID, err)
	}
	out := make([]entities.PipelineStage, 0, len(items))
	for _, it := range items {
		out = append(out, fromPipelineStageItem(it))
	}
	return out, nil
}

func expiredStagesQuery(table, boardID, label string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(pipelineStagesBoardIDIndex),
		KeyConditionExpression: aws.String("#board_id = :bid"),
		FilterExpression:       aws.String("#system_role = :role OR #name = :label"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid":   &types.AttributeValueMemberS{Value: boardID},
			":role":  &types.AttributeValueMemberS{Value: entities.StageRoleExpired},
			":label": &types.AttributeValueMemberS{Value: label},
		},
		// name is a DynamoDB reserved word.
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#board_id": "board_id"},
			map[string]string{"#system_role": "system_role", "#name": "name"},
		),
	}
}

func fromPipelineStageItem(it pipelineStageItem) entities.PipelineStage {
	return entities.PipelineStage{
		ID:         it.ID,
		BoardID:    it.BoardID,
		Name:       it.Name,
		Position:   it.Position,
		SystemRole: it.SystemRole,
	}
}
