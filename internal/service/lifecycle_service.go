package service

import (
	"context"

	"github.com/org-lifecycle-api/internal/domain"
	"github.com/org-lifecycle-api/internal/repository"
)

// Input - данные запроса, которые умеют перенести себя в запись.
// Поля, не переданные клиентом, получают значения по умолчанию схемы.
type Input[T any] interface {
	Apply(rec *T)
}

// EntityService определяет операции жизненного цикла сущности
type EntityService[T any] interface {
	ListActive(ctx context.Context) ([]T, error)
	ListDeleted(ctx context.Context) ([]T, error)
	GetActive(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in Input[T]) (*T, error)
	Update(ctx context.Context, id int64, in Input[T]) (*T, error)
	SoftDelete(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

type lifecycleService[T domain.Entity] struct {
	repo            repository.Repository[T]
	errCannotDelete error
}

// NewLifecycleService создаёт сервис жизненного цикла поверх репозитория.
// errCannotDelete возвращается при попытке удалить запись с can_deleted = false.
func NewLifecycleService[T domain.Entity](repo repository.Repository[T], errCannotDelete error) EntityService[T] {
	return &lifecycleService[T]{
		repo:            repo,
		errCannotDelete: errCannotDelete,
	}
}

func (s *lifecycleService[T]) ListActive(ctx context.Context) ([]T, error) {
	return s.repo.ListActive(ctx)
}

func (s *lifecycleService[T]) ListDeleted(ctx context.Context) ([]T, error) {
	return s.repo.ListDeleted(ctx)
}

func (s *lifecycleService[T]) GetActive(ctx context.Context, id int64) (*T, error) {
	return s.repo.GetActive(ctx, id)
}

func (s *lifecycleService[T]) Create(ctx context.Context, in Input[T]) (*T, error) {
	var rec T
	in.Apply(&rec)

	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// Update полностью заменяет поля активной записи, а не дополняет их
func (s *lifecycleService[T]) Update(ctx context.Context, id int64, in Input[T]) (*T, error) {
	rec, err := s.repo.GetActive(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Apply(rec)

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *lifecycleService[T]) SoftDelete(ctx context.Context, id int64) error {
	if err := s.checkDeletable(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

// HardDelete физически удаляет запись. Как и SoftDelete, работает только с активными
// записями: уже мягко удалённую запись нужно сначала восстановить.
func (s *lifecycleService[T]) HardDelete(ctx context.Context, id int64) error {
	if err := s.checkDeletable(ctx, id); err != nil {
		return err
	}
	return s.repo.HardDelete(ctx, id)
}

// Restore ищет запись без фильтра по deleted_at, поэтому восстановление
// активной записи проходит успешно и ничего не меняет
func (s *lifecycleService[T]) Restore(ctx context.Context, id int64) error {
	if _, err := s.repo.GetAny(ctx, id); err != nil {
		return err
	}
	return s.repo.Restore(ctx, id)
}

func (s *lifecycleService[T]) checkDeletable(ctx context.Context, id int64) error {
	rec, err := s.repo.GetActive(ctx, id)
	if err != nil {
		return err
	}
	if !(*rec).Deletable() {
		return s.errCannotDelete
	}
	return nil
}
