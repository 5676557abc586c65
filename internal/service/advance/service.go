package advance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/advance"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/employee"
)

type AdvanceServiceImpl struct {
	advance.AdvanceRepository
	EmployeeRepository employee.EmployeeRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, employeeRepo employee.EmployeeRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		AdvanceRepository:  advanceRepo,
		EmployeeRepository: employeeRepo,
	}
}

// RecordAdvance implements advance.AdvanceService.
//
// The advance date is server time at the moment of recording, never a
// client-supplied value; that keeps the monthly-window attribution honest.
func (a *AdvanceServiceImpl) RecordAdvance(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	recordedByUID, _ := claims["user_id"].(string)
	recordedByName, _ := claims["user_name"].(string)

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return advance.AdvanceResponse{}, employee.ErrEmployeeNotFound
		}
		return advance.AdvanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	data := advance.SalaryAdvance{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.FullName,
		Amount:         req.Amount,
		Notes:          req.Notes,
		RecordedByUID:  recordedByUID,
		RecordedByName: recordedByName,
	}

	created, err := a.AdvanceRepository.Create(ctx, data)
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to create salary advance: %w", err)
	}

	return mapAdvanceToResponse(created), nil
}

// ListAdvances implements advance.AdvanceService.
func (a *AdvanceServiceImpl) ListAdvances(ctx context.Context, filter advance.AdvanceFilter) ([]advance.AdvanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var start, end *time.Time
	if filter.StartDate != nil && *filter.StartDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *filter.StartDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_date: %w", err)
		}
		start = &parsed
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *filter.EndDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end_date: %w", err)
		}
		// Inclusive end of day
		endOfDay := parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &endOfDay
	}

	advances, err := a.AdvanceRepository.List(ctx, filter.EmployeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary advances: %w", err)
	}

	responses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, adv := range advances {
		responses = append(responses, mapAdvanceToResponse(adv))
	}

	return responses, nil
}

// DeleteAdvance implements advance.AdvanceService.
func (a *AdvanceServiceImpl) DeleteAdvance(ctx context.Context, id string) error {
	if err := a.AdvanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, advance.ErrAdvanceNotFound) {
			return advance.ErrAdvanceNotFound
		}
		return fmt.Errorf("failed to delete salary advance: %w", err)
	}
	return nil
}

// mapAdvanceToResponse converts a SalaryAdvance entity to AdvanceResponse
func mapAdvanceToResponse(adv advance.SalaryAdvance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:             adv.ID,
		EmployeeID:     adv.EmployeeID,
		EmployeeName:   adv.EmployeeName,
		Amount:         adv.Amount,
		Date:           adv.Date.Format(time.RFC3339),
		Notes:          adv.Notes,
		RecordedByUID:  adv.RecordedByUID,
		RecordedByName: adv.RecordedByName,
	}
}
