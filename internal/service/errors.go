package service

import (
	"errors"

	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/zerror"
)

// notFoundAs replaces db.ErrNotFound with the given domain error.
func notFoundAs(err error, notFound zerror.ZError) error {
	if errors.Is(err, db.ErrNotFound) {
		return notFound.WrapParent(err)
	}
	return err
}

// constraintErr maps unique and foreign key violations to domain errors.
func constraintErr(err error) error {
	if name, ok := db.IsUniqueViolation(err); ok {
		return apperr.FromUniqueConstraint(name, err)
	}
	if name, ok := db.IsForeignKeyViolation(err); ok {
		return apperr.ReferenceNotFoundErr.WithMsg("referenced record does not exist (%s)", name).WrapParent(err)
	}
	return err
}

func validationErr(err error) error {
	return apperr.ValidationErr.WrapParent(err)
}
