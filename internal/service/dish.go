package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/repo"
)

// DishService implements business logic for Dish operations and dish tagging.
type DishService struct {
	dishes  repo.DishRepo
	windows repo.WindowRepo
	tags    repo.TagRepo
	remarks repo.RemarkRepo
}

// NewDishService constructs a DishService.
func NewDishService(dishes repo.DishRepo, windows repo.WindowRepo, tags repo.TagRepo, remarks repo.RemarkRepo) *DishService {
	return &DishService{dishes: dishes, windows: windows, tags: tags, remarks: remarks}
}

// DishDetail is a dish with its window and rating summary.
type DishDetail struct {
	Dish        domain.Dish   `json:"dish"`
	Window      domain.Window `json:"window"`
	Rating      float64       `json:"rating"`
	RatingCount int64         `json:"rating_count"`
}

func (s *DishService) Create(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	normalizeDish(&d)
	if err := check(d); err != nil {
		return domain.Dish{}, fmt.Errorf("service.DishService.Create: %w", err)
	}
	if _, err := s.windows.GetByID(ctx, d.WindowID); err != nil {
		return domain.Dish{}, fmt.Errorf("service.DishService.Create: window: %w", err)
	}
	return s.dishes.Create(ctx, d)
}

// Detail returns a dish with its window and average rating.
func (s *DishService) Detail(ctx context.Context, id int64) (DishDetail, error) {
	d, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		return DishDetail{}, fmt.Errorf("service.DishService.Detail: %w", err)
	}
	w, err := s.windows.GetByID(ctx, d.WindowID)
	if err != nil {
		return DishDetail{}, fmt.Errorf("service.DishService.Detail: window: %w", err)
	}
	avg, n, err := s.remarks.AverageRating(ctx, id)
	if err != nil {
		return DishDetail{}, err
	}
	return DishDetail{Dish: d, Window: w, Rating: avg, RatingCount: n}, nil
}

// List returns one page of dishes matching f. The name prefix is trimmed;
// a blank prefix matches every dish.
func (s *DishService) List(ctx context.Context, f domain.DishFilter, p domain.PageRequest) (listing.PageResult[domain.Dish], error) {
	f.NamePrefix = strings.TrimSpace(f.NamePrefix)
	return s.dishes.ListPaged(ctx, f, p)
}

// ListByWindow returns the window together with one page of its dishes,
// optionally narrowed by name prefix.
func (s *DishService) ListByWindow(ctx context.Context, windowID int64, namePrefix string, p domain.PageRequest) (domain.Window, listing.PageResult[domain.Dish], error) {
	w, err := s.windows.GetByID(ctx, windowID)
	if err != nil {
		return domain.Window{}, listing.PageResult[domain.Dish]{}, fmt.Errorf("service.DishService.ListByWindow: %w", err)
	}
	page, err := s.List(ctx, domain.DishFilter{NamePrefix: namePrefix, WindowID: &windowID}, p)
	if err != nil {
		return domain.Window{}, listing.PageResult[domain.Dish]{}, err
	}
	return w, page, nil
}

func (s *DishService) Update(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	normalizeDish(&d)
	if err := check(d); err != nil {
		return domain.Dish{}, fmt.Errorf("service.DishService.Update: %w", err)
	}
	if _, err := s.windows.GetByID(ctx, d.WindowID); err != nil {
		return domain.Dish{}, fmt.Errorf("service.DishService.Update: window: %w", err)
	}
	return s.dishes.Update(ctx, d)
}

func (s *DishService) Delete(ctx context.Context, id int64) error {
	return s.dishes.Delete(ctx, id)
}

// AddTag links an existing tag to an existing dish and returns the tag.
func (s *DishService) AddTag(ctx context.Context, dishID, tagID int64) (domain.Tag, error) {
	if _, err := s.dishes.GetByID(ctx, dishID); err != nil {
		return domain.Tag{}, fmt.Errorf("service.DishService.AddTag: dish: %w", err)
	}
	tag, err := s.tags.GetByID(ctx, tagID)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("service.DishService.AddTag: tag: %w", err)
	}
	if err := s.dishes.AddTag(ctx, dishID, tagID); err != nil {
		return domain.Tag{}, err
	}
	return tag, nil
}

func (s *DishService) RemoveTag(ctx context.Context, dishID, tagID int64) error {
	return s.dishes.RemoveTag(ctx, dishID, tagID)
}

func normalizeDish(d *domain.Dish) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
}
