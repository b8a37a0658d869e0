package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/validator"
)

type CreateCategoryParams struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=1000"`
}

type CreateSupplierParams struct {
	Name          string `validate:"required,max=200"`
	ContactPerson string `validate:"max=200"`
	Email         string `validate:"omitempty,email"`
	Phone         string `validate:"max=50"`
	Address       string `validate:"max=500"`
}

// CatalogService manages the categories and suppliers products refer to.
type CatalogService interface {
	CreateCategory(ctx context.Context, params CreateCategoryParams) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateSupplier(ctx context.Context, params CreateSupplierParams) (model.Supplier, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
}

type catalogService struct {
	db          db.DB
	validator   validator.Validator
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(
	db db.DB,
	validator validator.Validator,
	catalogRepo repository.CatalogRepository,
) CatalogService {
	return &catalogService{
		db:          db,
		validator:   validator,
		catalogRepo: catalogRepo,
	}
}

func (s *catalogService) CreateCategory(ctx context.Context, params CreateCategoryParams) (model.Category, error) {
	params.Name = strings.TrimSpace(params.Name)
	if err := s.validator.Validate(params); err != nil {
		return model.Category{}, validationErr(err)
	}

	category, err := s.catalogRepo.WithDB(s.db).CreateCategory(ctx, repository.CreateCategoryParams{
		Name:        params.Name,
		Description: params.Description,
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("catalog repository create category: %w", constraintErr(err))
	}

	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.catalogRepo.WithDB(s.db).ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog repository list categories: %w", err)
	}

	return categories, nil
}

func (s *catalogService) CreateSupplier(ctx context.Context, params CreateSupplierParams) (model.Supplier, error) {
	params.Name = strings.TrimSpace(params.Name)
	if err := s.validator.Validate(params); err != nil {
		return model.Supplier{}, validationErr(err)
	}

	supplier, err := s.catalogRepo.WithDB(s.db).CreateSupplier(ctx, repository.CreateSupplierParams{
		Name:          params.Name,
		ContactPerson: params.ContactPerson,
		Email:         params.Email,
		Phone:         params.Phone,
		Address:       params.Address,
	})
	if err != nil {
		return model.Supplier{}, fmt.Errorf("catalog repository create supplier: %w", constraintErr(err))
	}

	return supplier, nil
}

func (s *catalogService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	suppliers, err := s.catalogRepo.WithDB(s.db).ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog repository list suppliers: %w", err)
	}

	return suppliers, nil
}
