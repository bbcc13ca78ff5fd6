package repository

import (
	"context"
	"fmt"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultContactsTableName     = "contacts"
	defaultUsersTableName        = "users"
	defaultCatalogItemsTableName = "catalog_items"
)

type contactItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	FantasyName string `dynamodbav:"fantasy_name,omitempty"`
	PersonType  string `dynamodbav:"person_type"`
	Scope       string `dynamodbav:"scope"`
	Phone       string `dynamodbav:"phone,omitempty"`
	Email       string `dynamodbav:"email,omitempty"`
}

type userItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
}

type catalogItemItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
	Active    bool   `dynamodbav:"active"`
}

// Directory tables (contacts, users, catalog_items) are small lookup
// collections keyed by id and always read in full.

type ContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

type CatalogItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var (
	_ interfaces.IContactRepository     = (*ContactDynamoRepository)(nil)
	_ interfaces.IUserRepository        = (*UserDynamoRepository)(nil)
	_ interfaces.ICatalogItemRepository = (*CatalogItemDynamoRepository)(nil)
)

func NewContactDynamoRepository(ddb *dynamodb.Client) *ContactDynamoRepository {
	return &ContactDynamoRepository{ddb: ddb, tableName: getenvDefault("CONTACTS_TABLE", defaultContactsTableName)}
}

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: getenvDefault("USERS_TABLE", defaultUsersTableName)}
}

func NewCatalogItemDynamoRepository(ddb *dynamodb.Client) *CatalogItemDynamoRepository {
	return &CatalogItemDynamoRepository{ddb: ddb, tableName: getenvDefault("CATALOG_ITEMS_TABLE", defaultCatalogItemsTableName)}
}

func (r *ContactDynamoRepository) ListAll(ctx context.Context) ([]entities.Contact, error) {
	items, err := scanAll[contactItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, fmt.Errorf("scan contacts: %w", err)
	}
	out := make([]entities.Contact, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Contact{
			ID:          it.ID,
			Name:        it.Name,
			FantasyName: it.FantasyName,
			PersonType:  entities.PersonType(it.PersonType),
			Scope:       entities.ContactScope(it.Scope),
			Phone:       it.Phone,
			Email:       it.Email,
		})
	}
	return out, nil
}

func (r *UserDynamoRepository) ListAll(ctx context.Context) ([]entities.User, error) {
	items, err := scanAll[userItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	out := make([]entities.User, 0, len(items))
	for _, it := range items {
		out = append(out, entities.User{ID: it.ID, Name: it.Name, Email: it.Email})
	}
	return out, nil
}

func (r *CatalogItemDynamoRepository) ListAll(ctx context.Context) ([]entities.CatalogItem, error) {
	items, err := scanAll[catalogItemItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, fmt.Errorf("scan catalog items: %w", err)
	}
	out := make([]entities.CatalogItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.CatalogItem{
			ID:        it.ID,
			Name:      it.Name,
			UnitPrice: parseFloat(it.UnitPrice),
			Active:    it.Active,
		})
	}
	return out, nil
}
