package repository

import (
	"context"
	"fmt"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultRecurringServicesTableName = "recurring_services"

type recurringServiceItem struct {
	ID             string `dynamodbav:"id"`
	Description    string `dynamodbav:"description"`
	ContactID      string `dynamodbav:"contact_id"`
	ContactName    string `dynamodbav:"contact_name,omitempty"`
	StartDate      string `dynamodbav:"start_date"`
	ContractMonths *int   `dynamodbav:"contract_months,omitempty"`
	Amount         string `dynamodbav:"amount"`
	Frequency      string `dynamodbav:"frequency"`
	Active         bool   `dynamodbav:"active"`
}

// RecurringServiceDynamoRepository reads recurring service contracts.
//
// Table requirements:
//   - PK: id (string)

type RecurringServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecurringServiceRepository = (*RecurringServiceDynamoRepository)(nil)

func NewRecurringServiceDynamoRepository(ddb *dynamodb.Client) *RecurringServiceDynamoRepository {
	return &RecurringServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECURRING_SERVICES_TABLE", defaultRecurringServicesTableName),
	}
}

func (r *RecurringServiceDynamoRepository) ListAll(ctx context.Context) ([]entities.RecurringService, error) {
	items, err := scanAll[recurringServiceItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, fmt.Errorf("scan recurring services: %w", err)
	}
	out := make([]entities.RecurringService, 0, len(items))
	for _, it := range items {
		out = append(out, fromRecurringServiceItem(it))
	}
	return out, nil
}

func toRecurringServiceItem(s entities.RecurringService) recurringServiceItem {
	return recurringServiceItem{
		ID:             s.ID,
		Description:    s.Description,
		ContactID:      s.ContactID,
		ContactName:    s.ContactName,
		StartDate:      formatDate(s.StartDate),
		ContractMonths: s.ContractMonths,
		Amount:         floatToString(s.Amount),
		Frequency:      string(s.Frequency),
		Active:         s.Active,
	}
}

func fromRecurringServiceItem(it recurringServiceItem) entities.RecurringService {
	return entities.RecurringService{
		ID:             it.ID,
		Description:    it.Description,
		ContactID:      it.ContactID,
		ContactName:    it.ContactName,
		StartDate:      parseDate(it.StartDate),
		ContractMonths: it.ContractMonths,
		Amount:         parseFloat(it.Amount),
		Frequency:      entities.BillingFrequency(it.Frequency),
		Active:         it.Active,
	}
}
