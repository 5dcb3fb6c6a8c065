package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/repo"
)

// menuSideList bounds the window and tag lists shown beside a canteen's
// dishes; only the dishes are paginated.
var menuSideList = domain.PageRequest{Page: 1, Size: 50}

// Menu is one canteen's browsing page: its windows and the tags in use
// there, plus one page of its dishes.
type Menu struct {
	Canteen domain.Canteen
	Windows []domain.Window
	Tags    []domain.Tag
	Dishes  listing.PageResult[domain.Dish]
}

// MenuService serves the per-canteen views.
type MenuService struct {
	canteens repo.CanteenRepo
	windows  repo.WindowRepo
	dishes   repo.DishRepo
	tags     repo.TagRepo
}

// NewMenuService constructs a MenuService.
func NewMenuService(canteens repo.CanteenRepo, windows repo.WindowRepo, dishes repo.DishRepo, tags repo.TagRepo) *MenuService {
	return &MenuService{canteens: canteens, windows: windows, dishes: dishes, tags: tags}
}

// Menu returns the canteen's menu. f narrows the dishes by window, tag and
// name prefix; its CanteenID is always replaced by canteenID, so a window
// or tag from another canteen simply matches nothing.
func (s *MenuService) Menu(ctx context.Context, canteenID int64, f domain.DishFilter, p domain.PageRequest) (Menu, error) {
	c, err := s.canteens.GetByID(ctx, canteenID)
	if err != nil {
		return Menu{}, fmt.Errorf("service.MenuService.Menu: %w", err)
	}
	windows, err := s.windows.ListByCanteen(ctx, canteenID, menuSideList)
	if err != nil {
		return Menu{}, err
	}
	tags, err := s.tags.ListByCanteen(ctx, canteenID, menuSideList)
	if err != nil {
		return Menu{}, err
	}

	f.CanteenID = &canteenID
	f.NamePrefix = strings.TrimSpace(f.NamePrefix)
	dishes, err := s.dishes.ListPaged(ctx, f, p)
	if err != nil {
		return Menu{}, err
	}
	return Menu{Canteen: c, Windows: windows.Rows, Tags: tags.Rows, Dishes: dishes}, nil
}

// Tags returns the canteen together with one page of the tags its dishes carry.
func (s *MenuService) Tags(ctx context.Context, canteenID int64, p domain.PageRequest) (domain.Canteen, listing.PageResult[domain.Tag], error) {
	c, err := s.canteens.GetByID(ctx, canteenID)
	if err != nil {
		return domain.Canteen{}, listing.PageResult[domain.Tag]{}, fmt.Errorf("service.MenuService.Tags: %w", err)
	}
	page, err := s.tags.ListByCanteen(ctx, canteenID, p)
	if err != nil {
		return domain.Canteen{}, listing.PageResult[domain.Tag]{}, err
	}
	return c, page, nil
}
