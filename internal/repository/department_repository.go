package repository

import (
	"github.com/org-lifecycle-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository хранит подразделения
type DepartmentRepository = Repository[domain.Department]

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return NewGormRepository[domain.Department](db, domain.ErrDepartmentNotFound)
}
