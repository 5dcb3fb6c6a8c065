// Package service contains the business logic for the canteen backend.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/repo"
)

// CanteenService implements business logic for Canteen operations.
type CanteenService struct {
	repo repo.CanteenRepo
}

// NewCanteenService constructs a CanteenService backed by the provided CanteenRepo.
func NewCanteenService(r repo.CanteenRepo) *CanteenService {
	return &CanteenService{repo: r}
}

// Create validates and persists a new canteen.
func (s *CanteenService) Create(ctx context.Context, c domain.Canteen) (domain.Canteen, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Location = strings.TrimSpace(c.Location)
	if err := check(c); err != nil {
		return domain.Canteen{}, fmt.Errorf("service.CanteenService.Create: %w", err)
	}
	return s.repo.Create(ctx, c)
}

// GetByID returns a single canteen.
func (s *CanteenService) GetByID(ctx context.Context, id int64) (domain.Canteen, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns one page of canteens.
func (s *CanteenService) List(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error) {
	return s.repo.ListPaged(ctx, p)
}

// Update validates and overwrites an existing canteen.
func (s *CanteenService) Update(ctx context.Context, c domain.Canteen) (domain.Canteen, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Location = strings.TrimSpace(c.Location)
	if err := check(c); err != nil {
		return domain.Canteen{}, fmt.Errorf("service.CanteenService.Update: %w", err)
	}
	return s.repo.Update(ctx, c)
}

// Delete removes a canteen. It fails with domain.ErrConflict while the
// canteen still has windows.
func (s *CanteenService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
