package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/repo"
)

// WindowService implements business logic for Window operations.
// Every window operation is checked against its parent canteen first, so a
// missing canteen surfaces as domain.ErrNotFound rather than a key violation.
type WindowService struct {
	windows  repo.WindowRepo
	canteens repo.CanteenRepo
}

// NewWindowService constructs a WindowService.
func NewWindowService(windows repo.WindowRepo, canteens repo.CanteenRepo) *WindowService {
	return &WindowService{windows: windows, canteens: canteens}
}

func (s *WindowService) Create(ctx context.Context, w domain.Window) (domain.Window, error) {
	w.Name = strings.TrimSpace(w.Name)
	if err := check(w); err != nil {
		return domain.Window{}, fmt.Errorf("service.WindowService.Create: %w", err)
	}
	if _, err := s.canteens.GetByID(ctx, w.CanteenID); err != nil {
		return domain.Window{}, fmt.Errorf("service.WindowService.Create: canteen: %w", err)
	}
	return s.windows.Create(ctx, w)
}

func (s *WindowService) GetByID(ctx context.Context, id int64) (domain.Window, error) {
	return s.windows.GetByID(ctx, id)
}

// ListByCanteen returns the canteen together with one page of its windows.
func (s *WindowService) ListByCanteen(ctx context.Context, canteenID int64, p domain.PageRequest) (domain.Canteen, listing.PageResult[domain.Window], error) {
	c, err := s.canteens.GetByID(ctx, canteenID)
	if err != nil {
		return domain.Canteen{}, listing.PageResult[domain.Window]{}, fmt.Errorf("service.WindowService.ListByCanteen: %w", err)
	}
	page, err := s.windows.ListByCanteen(ctx, canteenID, p)
	if err != nil {
		return domain.Canteen{}, listing.PageResult[domain.Window]{}, err
	}
	return c, page, nil
}

// Rename changes a window's name; the canteen it belongs to is fixed.
func (s *WindowService) Rename(ctx context.Context, id int64, name string) (domain.Window, error) {
	w, err := s.windows.GetByID(ctx, id)
	if err != nil {
		return domain.Window{}, fmt.Errorf("service.WindowService.Rename: %w", err)
	}
	w.Name = strings.TrimSpace(name)
	if err := check(w); err != nil {
		return domain.Window{}, fmt.Errorf("service.WindowService.Rename: %w", err)
	}
	return s.windows.Update(ctx, w)
}

func (s *WindowService) Delete(ctx context.Context, id int64) error {
	return s.windows.Delete(ctx, id)
}
