package service

import (
	"github.com/org-lifecycle-api/internal/domain"
	"github.com/org-lifecycle-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService = EntityService[domain.Employee]

// NewEmployeeService создаёт новый экземпляр сервиса.
// Существование подразделения не проверяется: это делает внешний ключ в БД.
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return NewLifecycleService(repo, domain.ErrEmployeeCannotBeDeleted)
}
