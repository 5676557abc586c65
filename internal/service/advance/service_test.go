package advance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/advance"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdvanceRepo struct {
	advances map[string]advance.SalaryAdvance
}

func newFakeAdvanceRepo() *fakeAdvanceRepo {
	return &fakeAdvanceRepo{advances: make(map[string]advance.SalaryAdvance)}
}

func (f *fakeAdvanceRepo) Create(ctx context.Context, adv advance.SalaryAdvance) (advance.SalaryAdvance, error) {
	adv.ID = uuid.NewString()
	adv.Date = time.Now().UTC()
	adv.CreatedAt = adv.Date
	f.advances[adv.ID] = adv
	return adv, nil
}

func (f *fakeAdvanceRepo) GetByID(ctx context.Context, id string) (advance.SalaryAdvance, error) {
	adv, ok := f.advances[id]
	if !ok {
		return advance.SalaryAdvance{}, advance.ErrAdvanceNotFound
	}
	return adv, nil
}

func (f *fakeAdvanceRepo) List(ctx context.Context, employeeID *string, start, end *time.Time) ([]advance.SalaryAdvance, error) {
	var out []advance.SalaryAdvance
	for _, adv := range f.advances {
		if employeeID != nil && adv.EmployeeID != *employeeID {
			continue
		}
		if start != nil && adv.Date.Before(*start) {
			continue
		}
		if end != nil && adv.Date.After(*end) {
			continue
		}
		out = append(out, adv)
	}
	return out, nil
}

func (f *fakeAdvanceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.advances[id]; !ok {
		return advance.ErrAdvanceNotFound
	}
	delete(f.advances, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListWithSalary(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func adminContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":   "admin-1",
		"user_name": "Back Office",
		"is_admin":  true,
		"type":      "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestRecordAdvance(t *testing.T) {
	advanceRepo := newFakeAdvanceRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Asha Verma", IsActive: true},
	}}
	svc := NewAdvanceService(advanceRepo, employeeRepo)

	notes := "Medical emergency"
	result, err := svc.RecordAdvance(adminContext(t), advance.CreateAdvanceRequest{
		EmployeeID: "emp-1",
		Amount:     decimal.RequireFromString("5000"),
		Notes:      &notes,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "emp-1", result.EmployeeID)
	assert.Equal(t, "Asha Verma", result.EmployeeName)
	assert.True(t, result.Amount.Equal(decimal.RequireFromString("5000")))
	assert.Equal(t, "admin-1", result.RecordedByUID)
	assert.Equal(t, "Back Office", result.RecordedByName)

	// Date is server-assigned at creation time.
	recorded, err := time.Parse(time.RFC3339, result.Date)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), recorded, 5*time.Second)
}

func TestRecordAdvanceRejectsNonPositiveAmount(t *testing.T) {
	svc := NewAdvanceService(newFakeAdvanceRepo(), &fakeEmployeeRepo{})

	for _, amount := range []string{"0", "-100"} {
		_, err := svc.RecordAdvance(adminContext(t), advance.CreateAdvanceRequest{
			EmployeeID: "emp-1",
			Amount:     decimal.RequireFromString(amount),
		})
		assert.Error(t, err, "amount %s must be rejected", amount)
	}
}

func TestRecordAdvanceUnknownEmployee(t *testing.T) {
	svc := NewAdvanceService(newFakeAdvanceRepo(), &fakeEmployeeRepo{employees: map[string]employee.Employee{}})

	_, err := svc.RecordAdvance(adminContext(t), advance.CreateAdvanceRequest{
		EmployeeID: "ghost",
		Amount:     decimal.RequireFromString("100"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListAdvancesFiltersByEmployee(t *testing.T) {
	advanceRepo := newFakeAdvanceRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Asha Verma"},
		"emp-2": {ID: "emp-2", FullName: "Ravi Kumar"},
	}}
	svc := NewAdvanceService(advanceRepo, employeeRepo)
	ctx := adminContext(t)

	for _, empID := range []string{"emp-1", "emp-1", "emp-2"} {
		_, err := svc.RecordAdvance(ctx, advance.CreateAdvanceRequest{
			EmployeeID: empID,
			Amount:     decimal.RequireFromString("100"),
		})
		require.NoError(t, err)
	}

	target := "emp-1"
	result, err := svc.ListAdvances(ctx, advance.AdvanceFilter{EmployeeID: &target})
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestListAdvancesRejectsBadDates(t *testing.T) {
	svc := NewAdvanceService(newFakeAdvanceRepo(), &fakeEmployeeRepo{})

	bad := "2026-13-45"
	_, err := svc.ListAdvances(adminContext(t), advance.AdvanceFilter{StartDate: &bad})
	assert.Error(t, err)
}

func TestDeleteAdvance(t *testing.T) {
	advanceRepo := newFakeAdvanceRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Asha Verma"},
	}}
	svc := NewAdvanceService(advanceRepo, employeeRepo)
	ctx := adminContext(t)

	created, err := svc.RecordAdvance(ctx, advance.CreateAdvanceRequest{
		EmployeeID: "emp-1",
		Amount:     decimal.RequireFromString("100"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdvance(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteAdvance(ctx, created.ID), advance.ErrAdvanceNotFound)
}
