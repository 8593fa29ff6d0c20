package leave

import (
	"context"
	"testing"
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/absence"
	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/marinerh/personnel-backend/internal/pkg/validator"
	"github.com/marinerh/personnel-backend/internal/service/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	records     map[string]leave.Record
	createCalls int
	updateCalls int
}

func newFakeLeaveRepo(records ...leave.Record) *fakeLeaveRepo {
	f := &fakeLeaveRepo{records: make(map[string]leave.Record)}
	for _, rec := range records {
		f.records[rec.ID] = rec
	}
	return f
}

func (f *fakeLeaveRepo) Create(_ context.Context, record leave.Record) (leave.Record, error) {
	f.createCalls++
	record.ID = "created"
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return leave.Record{}, leave.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.Record, error) {
	var out []leave.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, record leave.Record) error {
	f.updateCalls++
	f.records[record.ID] = record
	return nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, s leave.Status) error {
	rec := f.records[id]
	rec.Status = s
	f.records[id] = rec
	return nil
}

func (f *fakeLeaveRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeLeaveRepo) ListUnfinished(_ context.Context, _ time.Time) ([]leave.Record, error) {
	var out []leave.Record
	for _, rec := range f.records {
		if rec.Status != leave.StatusCompleted {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeTypeRepo struct {
	types map[leave.Type]leave.TypeInfo
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{types: map[leave.Type]leave.TypeInfo{
		leave.TypeAnnual:    {Code: leave.TypeAnnual, QuotaDays: 45},
		leave.TypeSick:      {Code: leave.TypeSick, QuotaDays: 90},
		leave.TypeMaternity: {Code: leave.TypeMaternity, QuotaDays: 98, FemaleOnly: true},
	}}
}

func (f *fakeTypeRepo) GetByCode(_ context.Context, code leave.Type) (leave.TypeInfo, error) {
	info, ok := f.types[code]
	if !ok {
		return leave.TypeInfo{}, leave.ErrTypeNotFound
	}
	return info, nil
}

func (f *fakeTypeRepo) ForGender(_ context.Context, gender employee.Gender) ([]leave.TypeInfo, error) {
	var out []leave.TypeInfo
	for _, info := range f.types {
		if info.FemaleOnly && gender != employee.Female {
			continue
		}
		out = append(out, info)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
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
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdateStatus(_ context.Context, id string, s employee.Status) error {
	emp := f.employees[id]
	emp.Status = s
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

type fakeAbsenceRepo struct{}

func (fakeAbsenceRepo) Create(_ context.Context, record absence.Record) (absence.Record, error) {
	return record, nil
}
func (fakeAbsenceRepo) GetByID(_ context.Context, _ string) (absence.Record, error) {
	return absence.Record{}, absence.ErrRecordNotFound
}
func (fakeAbsenceRepo) ListByEmployee(_ context.Context, _ string) ([]absence.Record, error) {
	return nil, nil
}
func (fakeAbsenceRepo) Update(_ context.Context, _ absence.Record) error { return nil }
func (fakeAbsenceRepo) Delete(_ context.Context, _ string) error         { return nil }

func newTestService(leaveRepo *fakeLeaveRepo, gender employee.Gender) *Service {
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Gender: gender, Status: employee.StatusActive},
	}}
	resolver := status.NewResolver(leaveRepo, fakeAbsenceRepo{}, employeeRepo)
	return NewService(nil, leaveRepo, newFakeTypeRepo(), employeeRepo, NewBalanceCalculator(), resolver)
}

func TestLeaveService_Create_RejectsMissingDurationAndEndDate(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, employee.Male)

	_, err := svc.Create(context.Background(), leave.CreateRecordRequest{
		EmployeeID: "emp-1",
		Type:       string(leave.TypeAnnual),
		StartDate:  "2025-01-10",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "duration_days")
	assert.Zero(t, repo.createCalls)
}

func TestLeaveService_Create_InvertedEndDateNotPersisted(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, employee.Male)

	// End before start derives a zero duration, which never reaches the
	// store.
	_, err := svc.Create(context.Background(), leave.CreateRecordRequest{
		EmployeeID: "emp-1",
		Type:       string(leave.TypeAnnual),
		StartDate:  "2025-01-10",
		EndDate:    "2025-01-05",
	})

	require.Error(t, err)
	assert.Zero(t, repo.createCalls)
}

func TestLeaveService_Create_MaternityForMaleRejected(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, employee.Male)

	_, err := svc.Create(context.Background(), leave.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Type:         string(leave.TypeMaternity),
		StartDate:    "2025-01-10",
		DurationDays: 98,
	})

	assert.ErrorIs(t, err, leave.ErrTypeNotAllowed)
	assert.Zero(t, repo.createCalls)
}

func TestLeaveService_Create_BalanceExceededNotPersisted(t *testing.T) {
	repo := newFakeLeaveRepo(leave.Record{
		ID:           "existing",
		EmployeeID:   "emp-1",
		Type:         leave.TypeAnnual,
		StartDate:    day(2025, 2, 1),
		DurationDays: 40,
		Status:       leave.StatusCompleted,
	})
	svc := newTestService(repo, employee.Male)

	_, err := svc.Create(context.Background(), leave.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Type:         string(leave.TypeAnnual),
		StartDate:    "2025-06-01",
		DurationDays: 10,
	})

	var balanceErr *leave.BalanceExceededError
	require.ErrorAs(t, err, &balanceErr)
	assert.Equal(t, 5, balanceErr.Remaining)
	assert.Zero(t, repo.createCalls)
}

func TestLeaveService_Create_UnknownType(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, employee.Male)

	_, err := svc.Create(context.Background(), leave.CreateRecordRequest{
		EmployeeID:   "emp-1",
		Type:         "sabbatical",
		StartDate:    "2025-01-10",
		DurationDays: 5,
	})

	assert.ErrorIs(t, err, leave.ErrTypeNotFound)
}

func TestLeaveService_Create_UnknownEmployee(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, employee.Male)

	_, err := svc.Create(context.Background(), leave.CreateRecordRequest{
		EmployeeID:   "missing",
		Type:         string(leave.TypeAnnual),
		StartDate:    "2025-01-10",
		DurationDays: 5,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLeaveService_ListTypes_GenderFiltered(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), employee.Male)

	types, err := svc.ListTypes(context.Background(), "emp-1")
	require.NoError(t, err)
	for _, info := range types {
		assert.False(t, info.FemaleOnly)
	}
}

func TestLeaveService_RefreshStatuses_CompletesElapsedLeaves(t *testing.T) {
	endDate := day(2020, 3, 14)
	repo := newFakeLeaveRepo(leave.Record{
		ID:           "stale",
		EmployeeID:   "emp-1",
		Type:         leave.TypeAnnual,
		StartDate:    day(2020, 3, 10),
		EndDate:      &endDate,
		DurationDays: 5,
		Status:       leave.StatusOngoing,
	})
	svc := newTestService(repo, employee.Male)

	require.NoError(t, svc.RefreshStatuses(context.Background()))

	refreshed, err := repo.GetByID(context.Background(), "stale")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusCompleted, refreshed.Status)
}

func TestLeaveService_Balance_PooledQuota(t *testing.T) {
	repo := newFakeLeaveRepo(leave.Record{
		ID:           "existing",
		EmployeeID:   "emp-1",
		Type:         leave.TypeMarriage,
		StartDate:    day(2025, 2, 1),
		DurationDays: 15,
		Status:       leave.StatusCompleted,
	})
	svc := newTestService(repo, employee.Male)

	// Marriage consumption shows up in the annual balance.
	balance, err := svc.Balance(context.Background(), "emp-1", 2025, string(leave.TypeAnnual))
	require.NoError(t, err)
	assert.Equal(t, leave.AnnualPoolDays, balance.QuotaDays)
	assert.Equal(t, 30, balance.Remaining)
}
