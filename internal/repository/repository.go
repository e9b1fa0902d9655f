package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository определяет интерфейс хранения записей с мягким удалением.
// Активными считаются записи с пустым deleted_at.
type Repository[T any] interface {
	ListActive(ctx context.Context) ([]T, error)
	ListDeleted(ctx context.Context) ([]T, error)
	GetActive(ctx context.Context, id int64) (*T, error)
	GetAny(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	SoftDelete(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

type gormRepository[T any] struct {
	db       *gorm.DB
	notFound error
}

// NewGormRepository создаёт репозиторий поверх GORM.
// notFound возвращается, когда запись отсутствует в выборке операции.
func NewGormRepository[T any](db *gorm.DB, notFound error) Repository[T] {
	return &gormRepository[T]{db: db, notFound: notFound}
}

func (r *gormRepository[T]) ListActive(ctx context.Context) ([]T, error) {
	records := make([]T, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error
	return records, err
}

func (r *gormRepository[T]) ListDeleted(ctx context.Context) ([]T, error) {
	records := make([]T, 0)
	err := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL").
		Order("id ASC").
		Find(&records).Error
	return records, err
}

func (r *gormRepository[T]) GetActive(ctx context.Context, id int64) (*T, error) {
	return r.first(r.db.WithContext(ctx), id)
}

func (r *gormRepository[T]) GetAny(ctx context.Context, id int64) (*T, error) {
	return r.first(r.db.WithContext(ctx).Unscoped(), id)
}

func (r *gormRepository[T]) first(query *gorm.DB, id int64) (*T, error) {
	var rec T
	err := query.First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Update перезаписывает все поля активной записи, кроме id и deleted_at
func (r *gormRepository[T]) Update(ctx context.Context, rec *T) error {
	result := r.db.WithContext(ctx).
		Model(rec).
		Select("*").
		Omit("id", "deleted_at").
		Updates(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}

// SoftDelete проставляет deleted_at активной записи; updated_at обновляется вместе с ним
func (r *gormRepository[T]) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}

func (r *gormRepository[T]) HardDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}

func (r *gormRepository[T]) Restore(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Unscoped().
		Model(new(T)).
		Where("id = ?", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}
