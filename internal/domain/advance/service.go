package advance

import (
	"context"
)

// AdvanceService defines business logic for salary advances
type AdvanceService interface {
	// RecordAdvance creates an advance with a server-assigned date and an
	// audit snapshot of who recorded it
	RecordAdvance(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)

	// ListAdvances retrieves advances with optional filters
	ListAdvances(ctx context.Context, filter AdvanceFilter) ([]AdvanceResponse, error)

	// DeleteAdvance removes an advance
	DeleteAdvance(ctx context.Context, id string) error
}
