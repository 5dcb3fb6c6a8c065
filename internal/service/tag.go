package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/repo"
)

// TagService implements business logic for Tag operations.
// Tag names are trimmed and lowercased, so "Spicy " and "spicy" are the same tag.
type TagService struct {
	tags   repo.TagRepo
	dishes repo.DishRepo
}

// NewTagService constructs a TagService.
func NewTagService(tags repo.TagRepo, dishes repo.DishRepo) *TagService {
	return &TagService{tags: tags, dishes: dishes}
}

func (s *TagService) Create(ctx context.Context, name string) (domain.Tag, error) {
	t := domain.Tag{Name: normalizeTagName(name)}
	if err := check(t); err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", err)
	}
	return s.tags.Create(ctx, t.Name)
}

// List returns one page of tags whose name starts with prefix.
// The prefix is normalized the same way names are.
func (s *TagService) List(ctx context.Context, prefix string, p domain.PageRequest) (listing.PageResult[domain.Tag], error) {
	return s.tags.ListPaged(ctx, normalizeTagName(prefix), p)
}

// ListByDish returns the dish together with one page of its tags.
func (s *TagService) ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (domain.Dish, listing.PageResult[domain.Tag], error) {
	d, err := s.dishes.GetByID(ctx, dishID)
	if err != nil {
		return domain.Dish{}, listing.PageResult[domain.Tag]{}, fmt.Errorf("service.TagService.ListByDish: %w", err)
	}
	page, err := s.tags.ListByDish(ctx, dishID, p)
	if err != nil {
		return domain.Dish{}, listing.PageResult[domain.Tag]{}, err
	}
	return d, page, nil
}

func (s *TagService) Rename(ctx context.Context, id int64, name string) (domain.Tag, error) {
	t := domain.Tag{ID: id, Name: normalizeTagName(name)}
	if err := check(t); err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.Rename: %w", err)
	}
	return s.tags.Rename(ctx, id, t.Name)
}

func (s *TagService) Delete(ctx context.Context, id int64) error {
	return s.tags.Delete(ctx, id)
}

func normalizeTagName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
