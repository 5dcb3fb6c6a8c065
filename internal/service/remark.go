package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/repo"
)

// RemarkService implements business logic for dish remarks.
type RemarkService struct {
	remarks repo.RemarkRepo
	dishes  repo.DishRepo
}

// NewRemarkService constructs a RemarkService.
func NewRemarkService(remarks repo.RemarkRepo, dishes repo.DishRepo) *RemarkService {
	return &RemarkService{remarks: remarks, dishes: dishes}
}

// Post records a remark on dishID authored by the session's user.
// Anonymous sessions get domain.ErrUnauthorized.
func (s *RemarkService) Post(ctx context.Context, sess *domain.Session, dishID int64, rating int, content string) (domain.Remark, error) {
	if !sess.Authenticated() {
		return domain.Remark{}, fmt.Errorf("service.RemarkService.Post: %w", domain.ErrUnauthorized)
	}
	rm := domain.Remark{
		DishID:  dishID,
		UserID:  sess.UserID,
		Rating:  rating,
		Content: strings.TrimSpace(content),
	}
	if err := check(rm); err != nil {
		return domain.Remark{}, fmt.Errorf("service.RemarkService.Post: %w", err)
	}
	if _, err := s.dishes.GetByID(ctx, dishID); err != nil {
		return domain.Remark{}, fmt.Errorf("service.RemarkService.Post: dish: %w", err)
	}
	return s.remarks.Create(ctx, rm)
}

// ListByDish returns one page of a dish's remarks.
func (s *RemarkService) ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Remark], error) {
	return s.remarks.ListByDish(ctx, dishID, p)
}

func (s *RemarkService) Delete(ctx context.Context, id int64) error {
	return s.remarks.Delete(ctx, id)
}
