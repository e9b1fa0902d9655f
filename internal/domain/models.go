package domain

import (
	"time"

	"gorm.io/gorm"
)

// Entity описывает запись с жизненным циклом мягкого удаления
type Entity interface {
	Deletable() bool
}

// Lifecycle содержит общие поля жизненного цикла записи
type Lifecycle struct {
	ID         int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	IsDefault  bool           `json:"is_default" gorm:"not null"`
	CanDeleted bool           `json:"can_deleted" gorm:"not null"`
	UpdatedAt  time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// Deletable сообщает, разрешено ли удаление записи (мягкое и физическое)
func (l Lifecycle) Deletable() bool {
	return l.CanDeleted
}

// Department представляет подразделение организации
type Department struct {
	Lifecycle
	Name string `json:"name" gorm:"type:text;not null"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника
type Employee struct {
	Lifecycle
	Name         string `json:"name" gorm:"type:text;not null"`
	DepartmentID int64  `json:"department_id" gorm:"not null;index"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}
