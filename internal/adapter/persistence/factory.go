package persistence

import (
	"context"
	"fmt"
	"log"

	"crm_reports/internal/adapter/persistence/repository"
	"crm_reports/internal/adapter/persistence/sqlite"
	"crm_reports/internal/infrastructure/config"
	"crm_reports/internal/infrastructure/database"
	"crm_reports/internal/usecase/interfaces"
)

// Repositories bundles every store the CRM service reads or writes.
type Repositories struct {
	Quotes            interfaces.IQuoteRepository
	Stages            interfaces.IPipelineStageRepository
	RecurringServices interfaces.IRecurringServiceRepository
	Contacts          interfaces.IContactRepository
	Users             interfaces.IUserRepository
	CatalogItems      interfaces.ICatalogItemRepository

	close func() error
}

// Close releases the underlying connection, if any.
func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// NewRepositories wires the store selected by cfg.StoreDriver.
func NewRepositories(ctx context.Context, cfg config.Config) (*Repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		log.Printf("[persistence] using sqlite dsn=%s", cfg.SQLiteDSN)
		return &Repositories{
			Quotes:            sqlite.NewQuoteRepository(db),
			Stages:            sqlite.NewPipelineStageRepository(db),
			RecurringServices: sqlite.NewRecurringServiceRepository(db),
			Contacts:          sqlite.NewContactRepository(db),
			Users:             sqlite.NewUserRepository(db),
			CatalogItems:      sqlite.NewCatalogItemRepository(db),
			close:             db.Close,
		}, nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("[persistence] using dynamodb")
		return &Repositories{
			Quotes:            repository.NewQuoteDynamoRepository(ddb),
			Stages:            repository.NewPipelineStageDynamoRepository(ddb),
			RecurringServices: repository.NewRecurringServiceDynamoRepository(ddb),
			Contacts:          repository.NewContactDynamoRepository(ddb),
			Users:             repository.NewUserDynamoRepository(ddb),
			CatalogItems:      repository.NewCatalogItemDynamoRepository(ddb),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidStoreDriver, cfg.StoreDriver)
	}
}
