package repository

import (
	"github.com/org-lifecycle-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository хранит сотрудников
type EmployeeRepository = Repository[domain.Employee]

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return NewGormRepository[domain.Employee](db, domain.ErrEmployeeNotFound)
}
