package interfaces

import (
	"context"

	"crm_reports/internal/domain/entities"
)

type IRecurringServiceRepository interface {
	ListAll(ctx context.Context) ([]entities.RecurringService, error)
}

type IContactRepository interface {
	ListAll(ctx context.Context) ([]entities.Contact, error)
}

type IUserRepository interface {
	ListAll(ctx context.Context) ([]entities.User, error)
}

type ICatalogItemRepository interface {
	ListAll(ctx context.Context) ([]entities.CatalogItem, error)
}
