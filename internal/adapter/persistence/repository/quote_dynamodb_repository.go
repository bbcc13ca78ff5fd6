package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID           string `dynamodbav:"id"`
	Title        string `dynamodbav:"title"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
	ValidUntil   string `dynamodbav:"valid_until,omitempty"`
	Status       string `dynamodbav:"status"`
	TotalValue   string `dynamodbav:"total_value"`
	OwnerID      string `dynamodbav:"owner_id"`
	BoardID      string `dynamodbav:"board_id"`
	StageID      string `dynamodbav:"stage_id,omitempty"`
	ContactID    string `dynamodbav:"contact_id,omitempty"`
	CustomerName string `dynamodbav:"customer_name,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// valid_until is a date-only string, so overdue lookups are a plain string
// comparison inside the scan filter.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, fmt.Errorf("put quote: %w", err)
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, fmt.Errorf("get quote: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// updateStatusInput keeps approved and rejected quotes as they are. A
// failed condition is reported like a missing id.
func updateStatusInput(table, id string, status entities.QuoteStatus, now time.Time) *dynamodb.UpdateItemInput {
	return &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND NOT (#status IN (:approved, :rejected))"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":approved":   &types.AttributeValueMemberS{Value: string(entities.QuoteStatusApproved)},
			":rejected":   &types.AttributeValueMemberS{Value: string(entities.QuoteStatusRejected)},
			":updated_at": &types.AttributeValueMemberS{Value: now.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	}
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, updateStatusInput(r.tableName, id, status, time.Now()))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, fmt.Errorf("update quote status: %w", err)
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	items, err := scanAll[quoteItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, fmt.Errorf("scan quotes: %w", err)
	}
	return fromQuoteItems(items), nil
}

func (r *QuoteDynamoRepository) ListOverdue(ctx context.Context, before time.Time, excluded []entities.QuoteStatus) ([]entities.Quote, error) {
	filter, values, names := overdueFilter(before, excluded)
	items, err := scanAll[quoteItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
	})
	if err != nil {
		return nil, fmt.Errorf("scan overdue quotes: %w", err)
	}
	return fromQuoteItems(items), nil
}

// BulkExpire issues one conditional update per id. Quotes that were
// approved or rejected in the meantime fail the condition and are left as
// they are.
func (r *QuoteDynamoRepository) BulkExpire(ctx context.Context, ids []string, stageID string) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updated := 0
	for _, id := range ids {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND NOT (#status IN (:approved, :rejected))"),
			UpdateExpression:    aws.String("SET #status = :expired, #stage_id = :stage_id, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expired":    &types.AttributeValueMemberS{Value: string(entities.QuoteStatusExpired)},
				":approved":   &types.AttributeValueMemberS{Value: string(entities.QuoteStatusApproved)},
				":rejected":   &types.AttributeValueMemberS{Value: string(entities.QuoteStatusRejected)},
				":stage_id":   &types.AttributeValueMemberS{Value: stageID},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#stage_id":   "stage_id",
				"#updated_at": "updated_at",
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return updated, fmt.Errorf("expire quote %s: %w", id, err)
		}
		updated++
	}
	return updated, nil
}

// overdueFilter builds the scan filter for quotes whose validity date is
// strictly before the given day and whose status is not excluded.
func overdueFilter(before time.Time, excluded []entities.QuoteStatus) (string, map[string]types.AttributeValue, map[string]string) {
	filter := "attribute_exists(#valid_until) AND #valid_until < :before"
	values := map[string]types.AttributeValue{
		":before": &types.AttributeValueMemberS{Value: before.Format(dateLayout)},
	}
	names := map[string]string{"#valid_until": "valid_until"}

	if len(excluded) > 0 {
		placeholders := ""
		for i, s := range excluded {
			key := ":x" + strconv.Itoa(i)
			if i > 0 {
				placeholders += ", "
			}
			placeholders += key
			values[key] = &types.AttributeValueMemberS{Value: string(s)}
		}
		filter += " AND NOT (#status IN (" + placeholders + "))"
		names["#status"] = "status"
	}
	return filter, values, names
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:           q.ID,
		Title:        q.Title,
		CreatedAt:    formatTimestamp(q.CreatedAt),
		UpdatedAt:    formatTimestamp(q.UpdatedAt),
		Status:       string(q.Status),
		TotalValue:   floatToString(q.TotalValue),
		OwnerID:      q.OwnerID,
		BoardID:      q.BoardID,
		StageID:      q.StageID,
		ContactID:    q.ContactID,
		CustomerName: q.CustomerName,
	}
	if q.ValidUntil != nil {
		it.ValidUntil = formatDate(*q.ValidUntil)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:           it.ID,
		Title:        it.Title,
		CreatedAt:    parseTimestamp(it.CreatedAt),
		UpdatedAt:    parseTimestamp(it.UpdatedAt),
		Status:       entities.QuoteStatus(it.Status),
		TotalValue:   parseFloat(it.TotalValue),
		OwnerID:      it.OwnerID,
		BoardID:      it.BoardID,
		StageID:      it.StageID,
		ContactID:    it.ContactID,
		CustomerName: it.CustomerName,
	}
	if d := parseDate(it.ValidUntil); !d.IsZero() {
		q.ValidUntil = &d
	}
	return q
}

func fromQuoteItems(items []quoteItem) []entities.Quote {
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	return out
}
