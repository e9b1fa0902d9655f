package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/org-lifecycle-api/internal/domain"
	"github.com/org-lifecycle-api/internal/dto"
	"github.com/org-lifecycle-api/internal/persistence/testdb"
	"github.com/org-lifecycle-api/internal/repository"
	"github.com/org-lifecycle-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type services struct {
	departments service.DepartmentService
	employees   service.EmployeeService
}

func setupServices(t *testing.T) services {
	db := testdb.New(t)
	return services{
		departments: service.NewDepartmentService(repository.NewDepartmentRepository(db)),
		employees:   service.NewEmployeeService(repository.NewEmployeeRepository(db)),
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestMissingID_NotFound(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	_, err := s.departments.GetActive(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)

	_, err = s.departments.Update(ctx, 99, dto.DepartmentRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)

	assert.ErrorIs(t, s.departments.SoftDelete(ctx, 99), domain.ErrDepartmentNotFound)
	assert.ErrorIs(t, s.departments.HardDelete(ctx, 99), domain.ErrDepartmentNotFound)
	assert.ErrorIs(t, s.departments.Restore(ctx, 99), domain.ErrDepartmentNotFound)

	_, err = s.employees.GetActive(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestCreate_ThenGetActive(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	dept, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("Eng"), CanDeleted: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), dept.ID)

	emp, err := s.employees.Create(ctx, dto.EmployeeRequest{Name: strPtr("Ann"), DepartmentID: int64Ptr(dept.ID)})
	require.NoError(t, err)

	got, err := s.employees.GetActive(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, dept.ID, got.DepartmentID)
	assert.False(t, got.IsDefault)
	assert.True(t, got.CanDeleted)
	assert.False(t, got.DeletedAt.Valid)
}

func TestCreate_NoUniquenessConstraint(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	first, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("Same")})
	require.NoError(t, err)
	second, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("Same")})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreate_AcceptsEmptyAndLongNames(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	empty, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "", empty.Name)

	long := strings.Repeat("x", 500)
	emp, err := s.employees.Create(ctx, dto.EmployeeRequest{Name: strPtr(long), DepartmentID: int64Ptr(empty.ID)})
	require.NoError(t, err)

	got, err := s.employees.GetActive(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, long, got.Name)
}

func TestUpdate_FullReplace(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	dept, err := s.departments.Create(ctx, dto.DepartmentRequest{
		Name:       strPtr("Eng"),
		IsDefault:  boolPtr(true),
		CanDeleted: boolPtr(false),
	})
	require.NoError(t, err)

	updated, err := s.departments.Update(ctx, dept.ID, dto.DepartmentRequest{Name: strPtr("Engineering")})
	require.NoError(t, err)

	assert.Equal(t, dept.ID, updated.ID)
	assert.Equal(t, "Engineering", updated.Name)
	assert.False(t, updated.IsDefault, "omitted is_default falls back to default")
	assert.True(t, updated.CanDeleted, "omitted can_deleted falls back to default")
	assert.False(t, updated.UpdatedAt.Before(dept.UpdatedAt))
}

func TestUpdate_SoftDeletedRecordNotFound(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	dept, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("Eng")})
	require.NoError(t, err)
	require.NoError(t, s.departments.SoftDelete(ctx, dept.ID))

	_, err = s.departments.Update(ctx, dept.ID, dto.DepartmentRequest{Name: strPtr("Back")})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestSoftDelete_ThenRestore(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	dept, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("Eng")})
	require.NoError(t, err)

	require.NoError(t, s.departments.SoftDelete(ctx, dept.ID))

	_, err = s.departments.GetActive(ctx, dept.ID)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)

	deleted, err := s.departments.ListDeleted(ctx)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, dept.ID, deleted[0].ID)

	assert.ErrorIs(t, s.departments.SoftDelete(ctx, dept.ID), domain.ErrDepartmentNotFound,
		"second soft delete no longer finds the record")

	require.NoError(t, s.departments.Restore(ctx, dept.ID))

	got, err := s.departments.GetActive(ctx, dept.ID)
	require.NoError(t, err)
	assert.False(t, got.DeletedAt.Valid)

	deleted, err = s.departments.ListDeleted(ctx)
	require.NoError(t, err)
	assert.Empty(t, deleted)
}

func TestRestore_ActiveRecordSucceeds(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	dept, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("Eng")})
	require.NoError(t, err)

	require.NoError(t, s.departments.Restore(ctx, dept.ID))

	_, err = s.departments.GetActive(ctx, dept.ID)
	assert.NoError(t, err)
}

func TestRestore_IgnoresCanDeleted(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDepartmentRepository(testdb.New(t))
	svc := service.NewDepartmentService(repo)

	// репозиторий не проверяет can_deleted, поэтому запрещённую к удалению запись можно скрыть напрямую
	dept := &domain.Department{Name: "Locked"}
	require.NoError(t, repo.Create(ctx, dept))
	require.NoError(t, repo.SoftDelete(ctx, dept.ID))

	require.NoError(t, svc.Restore(ctx, dept.ID))

	got, err := svc.GetActive(ctx, dept.ID)
	require.NoError(t, err)
	assert.False(t, got.CanDeleted)
}

func TestDelete_ForbiddenLeavesRecordUntouched(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	dept, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("Locked"), CanDeleted: boolPtr(false)})
	require.NoError(t, err)

	assert.ErrorIs(t, s.departments.SoftDelete(ctx, dept.ID), domain.ErrDepartmentCannotBeDeleted)
	assert.ErrorIs(t, s.departments.HardDelete(ctx, dept.ID), domain.ErrDepartmentCannotBeDeleted)

	got, err := s.departments.GetActive(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Locked", got.Name)
	assert.False(t, got.CanDeleted)
	assert.False(t, got.DeletedAt.Valid)
}

func TestDelete_EmployeeForbidden(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	dept, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("Eng")})
	require.NoError(t, err)
	emp, err := s.employees.Create(ctx, dto.EmployeeRequest{
		Name:         strPtr("Ann"),
		DepartmentID: int64Ptr(dept.ID),
		CanDeleted:   boolPtr(false),
	})
	require.NoError(t, err)

	err = s.employees.SoftDelete(ctx, emp.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeCannotBeDeleted)
	assert.ErrorIs(t, err, domain.ErrCannotBeDeleted)
}

func TestHardDelete_ThenRestoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	dept, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("Temp")})
	require.NoError(t, err)

	require.NoError(t, s.departments.HardDelete(ctx, dept.ID))

	assert.ErrorIs(t, s.departments.Restore(ctx, dept.ID), domain.ErrDepartmentNotFound)
	deleted, err := s.departments.ListDeleted(ctx)
	require.NoError(t, err)
	assert.Empty(t, deleted)
}

func TestHardDelete_SoftDeletedRecordNotFound(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	dept, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("Temp")})
	require.NoError(t, err)
	require.NoError(t, s.departments.SoftDelete(ctx, dept.ID))

	assert.ErrorIs(t, s.departments.HardDelete(ctx, dept.ID), domain.ErrDepartmentNotFound)

	// после восстановления физическое удаление снова доступно
	require.NoError(t, s.departments.Restore(ctx, dept.ID))
	require.NoError(t, s.departments.HardDelete(ctx, dept.ID))
}

func TestListActive_ExcludesSoftDeleted(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	a, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("A")})
	require.NoError(t, err)
	b, err := s.departments.Create(ctx, dto.DepartmentRequest{Name: strPtr("B")})
	require.NoError(t, err)
	require.NoError(t, s.departments.SoftDelete(ctx, a.ID))

	active, err := s.departments.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)
}
