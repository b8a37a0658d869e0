package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
)

type CreateCategoryParams struct {
	Name        string
	Description string
}

type CreateSupplierParams struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
}

type CatalogRepository interface {
	WithDB(db db.DB) CatalogRepository
	CreateCategory(ctx context.Context, params CreateCategoryParams) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateSupplier(ctx context.Context, params CreateSupplierParams) (model.Supplier, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
}

type catalogRepository struct {
	db db.DB
}

func NewCatalogRepository(db db.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r catalogRepository) WithDB(db db.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r catalogRepository) CreateCategory(ctx context.Context, params CreateCategoryParams) (model.Category, error) {
	c := model.Category{Name: params.Name, Description: params.Description}

	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name, description)
		VALUES (@name, @description)
		RETURNING id, created_at
	`, pgx.NamedArgs{
		"name":        params.Name,
		"description": params.Description,
	}).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return model.Category{}, fmt.Errorf("insert category: %w", err)
	}

	return c, nil
}

func (r catalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Category])
	if err != nil {
		return nil, fmt.Errorf("collect categories: %w", err)
	}

	return categories, nil
}

func (r catalogRepository) CreateSupplier(ctx context.Context, params CreateSupplierParams) (model.Supplier, error) {
	s := model.Supplier{
		Name:          params.Name,
		ContactPerson: params.ContactPerson,
		Email:         params.Email,
		Phone:         params.Phone,
		Address:       params.Address,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO suppliers (name, contact_person, email, phone, address)
		VALUES (@name, @contact_person, @email, @phone, @address)
		RETURNING id, created_at
	`, pgx.NamedArgs{
		"name":           params.Name,
		"contact_person": params.ContactPerson,
		"email":          params.Email,
		"phone":          params.Phone,
		"address":        params.Address,
	}).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return model.Supplier{}, fmt.Errorf("insert supplier: %w", err)
	}

	return s, nil
}

func (r catalogRepository) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, contact_person, email, phone, address, created_at
		FROM suppliers
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query suppliers: %w", err)
	}

	suppliers, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Supplier])
	if err != nil {
		return nil, fmt.Errorf("collect suppliers: %w", err)
	}

	return suppliers, nil
}
