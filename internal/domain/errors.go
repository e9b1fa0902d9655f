package domain

import "errors"

// Категории бизнес-ошибок
var (
	ErrNotFound        = errors.New("not found")
	ErrCannotBeDeleted = errors.New("cannot be deleted")
)

// EntityError привязывает категорию ошибки к конкретной сущности
type EntityError struct {
	Entity string
	Kind   error
}

func (e *EntityError) Error() string {
	return e.Entity + " " + e.Kind.Error()
}

func (e *EntityError) Unwrap() error {
	return e.Kind
}

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound        = &EntityError{Entity: "Department", Kind: ErrNotFound}
	ErrDepartmentCannotBeDeleted = &EntityError{Entity: "Department", Kind: ErrCannotBeDeleted}
	ErrEmployeeNotFound          = &EntityError{Entity: "Employee", Kind: ErrNotFound}
	ErrEmployeeCannotBeDeleted   = &EntityError{Entity: "Employee", Kind: ErrCannotBeDeleted}
)
