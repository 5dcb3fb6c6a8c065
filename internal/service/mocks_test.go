package service_test

import (
	"context"
	"time"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field; set only the ones your test needs.

type mockCanteenRepo struct {
	create    func(ctx context.Context, c domain.Canteen) (domain.Canteen, error)
	getByID   func(ctx context.Context, id int64) (domain.Canteen, error)
	listPaged func(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error)
	update    func(ctx context.Context, c domain.Canteen) (domain.Canteen, error)
	delete    func(ctx context.Context, id int64) error
}

func (m *mockCanteenRepo) Create(ctx context.Context, c domain.Canteen) (domain.Canteen, error) {
	return m.create(ctx, c)
}
func (m *mockCanteenRepo) GetByID(ctx context.Context, id int64) (domain.Canteen, error) {
	return m.getByID(ctx, id)
}
func (m *mockCanteenRepo) ListPaged(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error) {
	return m.listPaged(ctx, p)
}
func (m *mockCanteenRepo) Update(ctx context.Context, c domain.Canteen) (domain.Canteen, error) {
	return m.update(ctx, c)
}
func (m *mockCanteenRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockWindowRepo struct {
	create        func(ctx context.Context, w domain.Window) (domain.Window, error)
	getByID       func(ctx context.Context, id int64) (domain.Window, error)
	listByCanteen func(ctx context.Context, canteenID int64, p domain.PageRequest) (listing.PageResult[domain.Window], error)
	update        func(ctx context.Context, w domain.Window) (domain.Window, error)
	delete        func(ctx context.Context, id int64) error
}

func (m *mockWindowRepo) Create(ctx context.Context, w domain.Window) (domain.Window, error) {
	return m.create(ctx, w)
}
func (m *mockWindowRepo) GetByID(ctx context.Context, id int64) (domain.Window, error) {
	return m.getByID(ctx, id)
}
func (m *mockWindowRepo) ListByCanteen(ctx context.Context, canteenID int64, p domain.PageRequest) (listing.PageResult[domain.Window], error) {
	return m.listByCanteen(ctx, canteenID, p)
}
func (m *mockWindowRepo) Update(ctx context.Context, w domain.Window) (domain.Window, error) {
	return m.update(ctx, w)
}
func (m *mockWindowRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockDishRepo struct {
	create    func(ctx context.Context, d domain.Dish) (domain.Dish, error)
	getByID   func(ctx context.Context, id int64) (domain.Dish, error)
	listPaged func(ctx context.Context, f domain.DishFilter, p domain.PageRequest) (listing.PageResult[domain.Dish], error)
	update    func(ctx context.Context, d domain.Dish) (domain.Dish, error)
	delete    func(ctx context.Context, id int64) error
	addTag    func(ctx context.Context, dishID, tagID int64) error
	removeTag func(ctx context.Context, dishID, tagID int64) error
}

func (m *mockDishRepo) Create(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	return m.create(ctx, d)
}
func (m *mockDishRepo) GetByID(ctx context.Context, id int64) (domain.Dish, error) {
	return m.getByID(ctx, id)
}
func (m *mockDishRepo) ListPaged(ctx context.Context, f domain.DishFilter, p domain.PageRequest) (listing.PageResult[domain.Dish], error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockDishRepo) Update(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	return m.update(ctx, d)
}
func (m *mockDishRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockDishRepo) AddTag(ctx context.Context, dishID, tagID int64) error {
	return m.addTag(ctx, dishID, tagID)
}
func (m *mockDishRepo) RemoveTag(ctx context.Context, dishID, tagID int64) error {
	return m.removeTag(ctx, dishID, tagID)
}

type mockTagRepo struct {
	create     func(ctx context.Context, name string) (domain.Tag, error)
	getByID    func(ctx context.Context, id int64) (domain.Tag, error)
	listPaged  func(ctx context.Context, prefix string, p domain.PageRequest) (listing.PageResult[domain.Tag], error)
	listByDish func(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Tag], error)
	byCanteen  func(ctx context.Context, canteenID int64, p domain.PageRequest) (listing.PageResult[domain.Tag], error)
	rename     func(ctx context.Context, id int64, name string) (domain.Tag, error)
	delete     func(ctx context.Context, id int64) error
}

func (m *mockTagRepo) Create(ctx context.Context, name string) (domain.Tag, error) {
	return m.create(ctx, name)
}
func (m *mockTagRepo) GetByID(ctx context.Context, id int64) (domain.Tag, error) {
	return m.getByID(ctx, id)
}
func (m *mockTagRepo) ListPaged(ctx context.Context, prefix string, p domain.PageRequest) (listing.PageResult[domain.Tag], error) {
	return m.listPaged(ctx, prefix, p)
}
func (m *mockTagRepo) ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Tag], error) {
	return m.listByDish(ctx, dishID, p)
}
func (m *mockTagRepo) ListByCanteen(ctx context.Context, canteenID int64, p domain.PageRequest) (listing.PageResult[domain.Tag], error) {
	return m.byCanteen(ctx, canteenID, p)
}
func (m *mockTagRepo) Rename(ctx context.Context, id int64, name string) (domain.Tag, error) {
	return m.rename(ctx, id, name)
}
func (m *mockTagRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockRemarkRepo struct {
	create        func(ctx context.Context, rm domain.Remark) (domain.Remark, error)
	listByDish    func(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Remark], error)
	averageRating func(ctx context.Context, dishID int64) (float64, int64, error)
	delete        func(ctx context.Context, id int64) error
}

func (m *mockRemarkRepo) Create(ctx context.Context, rm domain.Remark) (domain.Remark, error) {
	return m.create(ctx, rm)
}
func (m *mockRemarkRepo) ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Remark], error) {
	return m.listByDish(ctx, dishID, p)
}
func (m *mockRemarkRepo) AverageRating(ctx context.Context, dishID int64) (float64, int64, error) {
	return m.averageRating(ctx, dishID)
}
func (m *mockRemarkRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockUserRepo struct {
	create        func(ctx context.Context, u domain.User) (domain.User, error)
	getByUsername func(ctx context.Context, username string) (domain.User, error)
	listPaged     func(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.User], error)
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return m.getByUsername(ctx, username)
}
func (m *mockUserRepo) ListPaged(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.User], error) {
	return m.listPaged(ctx, p)
}

type mockSessionRepo struct {
	create        func(ctx context.Context, s domain.Session) error
	touch         func(ctx context.Context, id string, now time.Time) (domain.Session, error)
	delete        func(ctx context.Context, id string) error
	deleteExpired func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockSessionRepo) Create(ctx context.Context, s domain.Session) error {
	return m.create(ctx, s)
}
func (m *mockSessionRepo) Touch(ctx context.Context, id string, now time.Time) (domain.Session, error) {
	return m.touch(ctx, id, now)
}
func (m *mockSessionRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return m.deleteExpired(ctx, now)
}

type mockExportRepo struct {
	menuRows func(ctx context.Context) ([]domain.MenuExportRow, error)
}

func (m *mockExportRepo) MenuRows(ctx context.Context) ([]domain.MenuExportRow, error) {
	return m.menuRows(ctx)
}

// compile-time checks: every mock must satisfy its repo interface.
var (
	_ repo.CanteenRepo = (*mockCanteenRepo)(nil)
	_ repo.WindowRepo  = (*mockWindowRepo)(nil)
	_ repo.DishRepo    = (*mockDishRepo)(nil)
	_ repo.TagRepo     = (*mockTagRepo)(nil)
	_ repo.RemarkRepo  = (*mockRemarkRepo)(nil)
	_ repo.UserRepo    = (*mockUserRepo)(nil)
	_ repo.SessionRepo = (*mockSessionRepo)(nil)
	_ repo.ExportRepo  = (*mockExportRepo)(nil)
)

// onePage builds a single-page result holding rows.
func onePage[T any](rows ...T) listing.PageResult[T] {
	if rows == nil {
		rows = []T{}
	}
	return listing.PageResult[T]{
		TotalItems: len(rows),
		TotalPages: listing.TotalPages(len(rows), domain.DefaultPageSize),
		Rows:       rows,
		Pagination: listing.Paginate(len(rows), 1, domain.DefaultPageSize),
	}
}

type (
	listingCanteens = listing.PageResult[domain.Canteen]
	listingWindows  = listing.PageResult[domain.Window]
	listingDishes   = listing.PageResult[domain.Dish]
	listingTags     = listing.PageResult[domain.Tag]
	listingRemarks  = listing.PageResult[domain.Remark]
)
