package apperr

import "github.com/tuanvumaihuynh/inventory-pos/pkg/zerror"

const (
	ValidationErrorCode          = "VALIDATION_FAILED"
	ProductNotFoundCode          = "PRODUCT_NOT_FOUND"
	SaleNotFoundCode             = "SALE_NOT_FOUND"
	AlertNotFoundCode            = "ALERT_NOT_FOUND"
	SKUAlreadyExistsCode         = "SKU_ALREADY_EXISTS"
	CategoryAlreadyExistsCode    = "CATEGORY_ALREADY_EXISTS"
	SupplierAlreadyExistsCode    = "SUPPLIER_ALREADY_EXISTS"
	SaleNumberAlreadyExistsCode  = "SALE_NUMBER_ALREADY_EXISTS"
	ReferenceNotFoundCode        = "REFERENCE_NOT_FOUND"
	InsufficientStockCode        = "INSUFFICIENT_STOCK"
	ConstraintViolationErrorCode = "CONSTRAINT_VIOLATION"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	ProductNotFoundErr = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	SaleNotFoundErr    = zerror.NewNotFound(SaleNotFoundCode, "sale not found")
	AlertNotFoundErr   = zerror.NewNotFound(AlertNotFoundCode, "alert not found")

	SKUAlreadyExistsErr        = zerror.NewConflict(SKUAlreadyExistsCode, "product sku already exists")
	CategoryAlreadyExistsErr   = zerror.NewConflict(CategoryAlreadyExistsCode, "category name already exists")
	SupplierAlreadyExistsErr   = zerror.NewConflict(SupplierAlreadyExistsCode, "supplier name already exists")
	SaleNumberAlreadyExistsErr = zerror.NewConflict(SaleNumberAlreadyExistsCode, "sale number already exists")
	ConstraintViolationErr     = zerror.NewConflict(ConstraintViolationErrorCode, "constraint violation")

	ReferenceNotFoundErr = zerror.NewUnprocessableEntity(ReferenceNotFoundCode, "referenced record does not exist")
	InsufficientStockErr = zerror.NewUnprocessableEntity(InsufficientStockCode, "insufficient stock")
)

// uniqueConstraints maps schema unique constraint names to their domain error.
var uniqueConstraints = map[string]zerror.ZError{
	"products_sku_key":      SKUAlreadyExistsErr,
	"categories_name_key":   CategoryAlreadyExistsErr,
	"suppliers_name_key":    SupplierAlreadyExistsErr,
	"sales_sale_number_key": SaleNumberAlreadyExistsErr,
}

// FromUniqueConstraint returns the domain error for a violated unique
// constraint, falling back to ConstraintViolationErr.
func FromUniqueConstraint(constraint string, parent error) zerror.ZError {
	if e, ok := uniqueConstraints[constraint]; ok {
		return e.WrapParent(parent)
	}
	return ConstraintViolationErr.WithMsg("constraint %q violated", constraint).WrapParent(parent)
}
