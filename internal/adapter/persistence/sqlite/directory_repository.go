package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase/interfaces"
)

type RecurringServiceRepository struct{ db *sql.DB }

type ContactRepository struct{ db *sql.DB }

type UserRepository struct{ db *sql.DB }

type CatalogItemRepository struct{ db *sql.DB }

var (
	_ interfaces.IRecurringServiceRepository = (*RecurringServiceRepository)(nil)
	_ interfaces.IContactRepository          = (*ContactRepository)(nil)
	_ interfaces.IUserRepository             = (*UserRepository)(nil)
	_ interfaces.ICatalogItemRepository      = (*CatalogItemRepository)(nil)
)

func NewRecurringServiceRepository(db *sql.DB) *RecurringServiceRepository {
	return &RecurringServiceRepository{db: db}
}

func NewContactRepository(db *sql.DB) *ContactRepository { return &ContactRepository{db: db} }

func NewUserRepository(db *sql.DB) *UserRepository { return &UserRepository{db: db} }

func NewCatalogItemRepository(db *sql.DB) *CatalogItemRepository {
	return &CatalogItemRepository{db: db}
}

func (r *RecurringServiceRepository) ListAll(ctx context.Context) ([]entities.RecurringService, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, description, contact_id, contact_name, start_date,
	contract_months, amount, frequency, active FROM recurring_services`)
	if err != nil {
		return nil, fmt.Errorf("list recurring services: %w", err)
	}
	defer rows.Close()

	out := make([]entities.RecurringService, 0)
	for rows.Next() {
		var (
			s         entities.RecurringService
			startDate string
			months    sql.NullInt64
			frequency string
		)
		if err := rows.Scan(&s.ID, &s.Description, &s.ContactID, &s.ContactName, &startDate,
			&months, &s.Amount, &frequency, &s.Active); err != nil {
			return nil, err
		}
		s.StartDate = parseDate(startDate)
		s.Frequency = entities.BillingFrequency(frequency)
		if months.Valid {
			m := int(months.Int64)
			s.ContractMonths = &m
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ContactRepository) ListAll(ctx context.Context) ([]entities.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, fantasy_name, person_type, scope, phone, email
	FROM contacts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Contact, 0)
	for rows.Next() {
		var (
			c                 entities.Contact
			personType, scope string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.FantasyName, &personType, &scope, &c.Phone, &c.Email); err != nil {
			return nil, err
		}
		c.PersonType = entities.PersonType(personType)
		c.Scope = entities.ContactScope(scope)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *UserRepository) ListAll(ctx context.Context) ([]entities.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email FROM users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *CatalogItemRepository) ListAll(ctx context.Context) ([]entities.CatalogItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, unit_price, active FROM catalog_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()

	out := make([]entities.CatalogItem, 0)
	for rows.Next() {
		var it entities.CatalogItem
		if err := rows.Scan(&it.ID, &it.Name, &it.UnitPrice, &it.Active); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
