package service

import (
	"github.com/org-lifecycle-api/internal/domain"
	"github.com/org-lifecycle-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService = EntityService[domain.Department]

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(repo repository.DepartmentRepository) DepartmentService {
	return NewLifecycleService(repo, domain.ErrDepartmentCannotBeDeleted)
}
