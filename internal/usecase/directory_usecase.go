package usecase

import (
	"context"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase/interfaces"
)

// IDirectoryUseCase exposes the plain collection reads used to fill
// dropdowns and report headers.
type IDirectoryUseCase interface {
	Contacts(ctx context.Context) ([]entities.Contact, error)
	Users(ctx context.Context) ([]entities.User, error)
	CatalogItems(ctx context.Context) ([]entities.CatalogItem, error)
}

type DirectoryUseCase struct {
	contacts interfaces.IContactRepository
	users    interfaces.IUserRepository
	catalog  interfaces.ICatalogItemRepository
}

var _ IDirectoryUseCase = (*DirectoryUseCase)(nil)

func NewDirectoryUseCase(contacts interfaces.IContactRepository, users interfaces.IUserRepository, catalog interfaces.ICatalogItemRepository) *DirectoryUseCase {
	return &DirectoryUseCase{contacts: contacts, users: users, catalog: catalog}
}

func (u *DirectoryUseCase) Contacts(ctx context.Context) ([]entities.Contact, error) {
	return u.contacts.ListAll(ctx)
}

func (u *DirectoryUseCase) Users(ctx context.Context) ([]entities.User, error) {
	return u.users.ListAll(ctx)
}

func (u *DirectoryUseCase) CatalogItems(ctx context.Context) ([]entities.CatalogItem, error) {
	return u.catalog.ListAll(ctx)
}
