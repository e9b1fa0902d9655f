package dto

import (
	"github.com/org-lifecycle-api/internal/domain"
)

// DepartmentRequest - тело запроса на создание и замену подразделения.
// Обязательные поля - указатели: required отклоняет только отсутствующий ключ, а не пустое значение.
type DepartmentRequest struct {
	Name       *string `json:"name" validate:"required"`
	IsDefault  *bool   `json:"is_default"`
	CanDeleted *bool   `json:"can_deleted"`
}

// Apply переносит поля запроса в запись; опущенные флаги получают значения по умолчанию
func (r DepartmentRequest) Apply(dept *domain.Department) {
	dept.Name = stringOr(r.Name, "")
	dept.IsDefault = boolOr(r.IsDefault, false)
	dept.CanDeleted = boolOr(r.CanDeleted, true)
}

// EmployeeRequest - тело запроса на создание и замену сотрудника
type EmployeeRequest struct {
	Name         *string `json:"name" validate:"required"`
	DepartmentID *int64  `json:"department_id" validate:"required"`
	IsDefault    *bool   `json:"is_default"`
	CanDeleted   *bool   `json:"can_deleted"`
}

// Apply переносит поля запроса в запись; опущенные флаги получают значения по умолчанию
func (r EmployeeRequest) Apply(emp *domain.Employee) {
	emp.Name = stringOr(r.Name, "")
	emp.DepartmentID = int64Or(r.DepartmentID, 0)
	emp.IsDefault = boolOr(r.IsDefault, false)
	emp.CanDeleted = boolOr(r.CanDeleted, true)
}

// MessageResponse - подтверждение операции без возврата записи
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func int64Or(v *int64, def int64) int64 {
	if v == nil {
		return def
	}
	return *v
}
