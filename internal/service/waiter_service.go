package service

import (
	"context"
	"fmt"
	"time"

	"tableside/internal/domain"
)

var validCallStatuses = map[string]bool{
	"call":  true,
	"clean": true,
	"check": true,
}

type WaiterService struct {
	repo WaiterCallRepository
}

func NewWaiterService(repo WaiterCallRepository) *WaiterService {
	return &WaiterService{repo: repo}
}

// CallWaiter validates the requested status before any database interaction,
// then creates or updates the single call record for the table.
func (s *WaiterService) CallWaiter(ctx context.Context, call *domain.WaiterCall) error {
	if !validCallStatuses[call.Status] {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, call.Status)
	}
	if call.CallDatetime.IsZero() {
		call.CallDatetime = time.Now().UTC()
	}
	return s.repo.UpsertWaiterCall(ctx, call)
}

var _ WaiterServiceInterface = (*WaiterService)(nil)
