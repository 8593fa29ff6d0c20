package career

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/career"
	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepo struct {
	records map[string]career.Record
	nextID  int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]career.Record)}
}

func (f *fakeRecordRepo) Create(_ context.Context, record career.Record) (career.Record, error) {
	f.nextID++
	record.ID = fmt.Sprintf("rec-%d", f.nextID)
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (career.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return career.Record{}, career.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordRepo) ListByEmployee(_ context.Context, employeeID string) ([]career.Record, error) {
	var out []career.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, record career.Record) error {
	if _, ok := f.records[record.ID]; !ok {
		return career.ErrRecordNotFound
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeRecordRepo) UpdateEndDate(_ context.Context, id string, endDate time.Time) error {
	rec, ok := f.records[id]
	if !ok {
		return career.ErrRecordNotFound
	}
	rec.EndDate = &endDate
	f.records[id] = rec
	return nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return career.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		f.employees[id] = employee.Employee{ID: id, Status: employee.StatusActive}
	}
	return f
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByMatricule(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListIDs(_ context.Context) ([]string, error) {
	var ids []string
	for id := range f.employees {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdateStatus(_ context.Context, id string, status employee.Status) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Status = status
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func TestCareerService_Create_ClosesPreviousRank(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	svc := NewGradeService(repo, newFakeEmployeeRepo("emp-1"))

	first, err := svc.Create(ctx, career.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Rank:         "matelot",
		ObtainedDate: "2018-01-01",
	})
	require.NoError(t, err)

	promoted, err := svc.Create(ctx, career.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Rank:         "matelot_breveté",
		ObtainedDate: "2023-05-10",
	})
	require.NoError(t, err)
	assert.Nil(t, promoted.EndDate)

	closed, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.EndDate)
	assert.Equal(t, day(2023, 5, 9), *closed.EndDate)
}

func TestCareerService_Create_LowestRankNoSideEffect(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	svc := NewGradeService(repo, newFakeEmployeeRepo("emp-1"))

	created, err := svc.Create(ctx, career.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Rank:         "matelot",
		ObtainedDate: "2018-01-01",
	})
	require.NoError(t, err)
	assert.Nil(t, created.EndDate)
}

func TestCareerService_Create_RejectsUnknownRank(t *testing.T) {
	ctx := context.Background()
	svc := NewGradeService(newFakeRecordRepo(), newFakeEmployeeRepo("emp-1"))

	_, err := svc.Create(ctx, career.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Rank:         "amiral",
		ObtainedDate: "2023-05-10",
	})
	assert.Error(t, err)
}

func TestCareerService_Create_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := NewGradeService(newFakeRecordRepo(), newFakeEmployeeRepo())

	_, err := svc.Create(ctx, career.CreateRecordRequest{
		EmployeeID:   "missing",
		Rank:         "matelot",
		ObtainedDate: "2018-01-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCareerService_Update_DateChangeRerunsSuccession(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	svc := NewGradeService(repo, newFakeEmployeeRepo("emp-1"))

	first, err := svc.Create(ctx, career.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Rank:         "matelot",
		ObtainedDate: "2018-01-01",
	})
	require.NoError(t, err)

	promoted, err := svc.Create(ctx, career.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Rank:         "matelot_breveté",
		ObtainedDate: "2023-05-10",
	})
	require.NoError(t, err)

	// Reopen the first record, then move the promotion date: succession
	// closes it again at the new boundary.
	require.NoError(t, repo.Update(ctx, career.Record{
		ID: first.ID, EmployeeID: "emp-1", Rank: "matelot", ObtainedDate: day(2018, 1, 1),
	}))

	newDate := "2023-06-01"
	_, err = svc.Update(ctx, career.UpdateRecordRequest{
		ID:           promoted.ID,
		ObtainedDate: &newDate,
	})
	require.NoError(t, err)

	closed, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.EndDate)
	assert.Equal(t, day(2023, 5, 31), *closed.EndDate)
}

func TestCareerService_Update_NoDateChangeNoSuccession(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	svc := NewGradeService(repo, newFakeEmployeeRepo("emp-1"))

	first, err := svc.Create(ctx, career.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Rank:         "matelot",
		ObtainedDate: "2018-01-01",
	})
	require.NoError(t, err)

	promoted, err := svc.Create(ctx, career.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Rank:         "matelot_breveté",
		ObtainedDate: "2023-05-10",
	})
	require.NoError(t, err)

	// Reopen the first record, then edit only the reference.
	require.NoError(t, repo.Update(ctx, career.Record{
		ID: first.ID, EmployeeID: "emp-1", Rank: "matelot", ObtainedDate: day(2018, 1, 1),
	}))

	ref := "décision 42/2023"
	_, err = svc.Update(ctx, career.UpdateRecordRequest{
		ID:        promoted.ID,
		Reference: &ref,
	})
	require.NoError(t, err)

	untouched, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, untouched.EndDate)
}

func TestCareerService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	svc := NewGradeService(repo, newFakeEmployeeRepo("emp-1"))

	created, err := svc.Create(ctx, career.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Rank:         "matelot",
		ObtainedDate: "2018-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), career.ErrRecordNotFound)
}
