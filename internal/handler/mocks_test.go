package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/handler"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/service"
	"github.com/campuscanteen/backend/internal/view"
)

// Test doubles for the servicer interfaces. Each method is a function
// field; set only the ones your test needs.

type mockCanteens struct {
	create  func(ctx context.Context, c domain.Canteen) (domain.Canteen, error)
	getByID func(ctx context.Context, id int64) (domain.Canteen, error)
	list    func(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error)
	update  func(ctx context.Context, c domain.Canteen) (domain.Canteen, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockCanteens) Create(ctx context.Context, c domain.Canteen) (domain.Canteen, error) {
	return m.create(ctx, c)
}
func (m *mockCanteens) GetByID(ctx context.Context, id int64) (domain.Canteen, error) {
	return m.getByID(ctx, id)
}
func (m *mockCanteens) List(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error) {
	return m.list(ctx, p)
}
func (m *mockCanteens) Update(ctx context.Context, c domain.Canteen) (domain.Canteen, error) {
	return m.update(ctx, c)
}
func (m *mockCanteens) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockWindows struct {
	create        func(ctx context.Context, w domain.Window) (domain.Window, error)
	listByCanteen func(ctx context.Context, canteenID int64, p domain.PageRequest) (domain.Canteen, listing.PageResult[domain.Window], error)
	rename        func(ctx context.Context, id int64, name string) (domain.Window, error)
	delete        func(ctx context.Context, id int64) error
}

func (m *mockWindows) Create(ctx context.Context, w domain.Window) (domain.Window, error) {
	return m.create(ctx, w)
}
func (m *mockWindows) ListByCanteen(ctx context.Context, canteenID int64, p domain.PageRequest) (domain.Canteen, listing.PageResult[domain.Window], error) {
	return m.listByCanteen(ctx, canteenID, p)
}
func (m *mockWindows) Rename(ctx context.Context, id int64, name string) (domain.Window, error) {
	return m.rename(ctx, id, name)
}
func (m *mockWindows) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockDishes struct {
	create       func(ctx context.Context, d domain.Dish) (domain.Dish, error)
	detail       func(ctx context.Context, id int64) (service.DishDetail, error)
	list         func(ctx context.Context, f domain.DishFilter, p domain.PageRequest) (listing.PageResult[domain.Dish], error)
	listByWindow func(ctx context.Context, windowID int64, namePrefix string, p domain.PageRequest) (domain.Window, listing.PageResult[domain.Dish], error)
	update       func(ctx context.Context, d domain.Dish) (domain.Dish, error)
	delete       func(ctx context.Context, id int64) error
	addTag       func(ctx context.Context, dishID, tagID int64) (domain.Tag, error)
	removeTag    func(ctx context.Context, dishID, tagID int64) error
}

func (m *mockDishes) Create(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	return m.create(ctx, d)
}
func (m *mockDishes) Detail(ctx context.Context, id int64) (service.DishDetail, error) {
	return m.detail(ctx, id)
}
func (m *mockDishes) List(ctx context.Context, f domain.DishFilter, p domain.PageRequest) (listing.PageResult[domain.Dish], error) {
	return m.list(ctx, f, p)
}
func (m *mockDishes) ListByWindow(ctx context.Context, windowID int64, namePrefix string, p domain.PageRequest) (domain.Window, listing.PageResult[domain.Dish], error) {
	return m.listByWindow(ctx, windowID, namePrefix, p)
}
func (m *mockDishes) Update(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	return m.update(ctx, d)
}
func (m *mockDishes) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockDishes) AddTag(ctx context.Context, dishID, tagID int64) (domain.Tag, error) {
	return m.addTag(ctx, dishID, tagID)
}
func (m *mockDishes) RemoveTag(ctx context.Context, dishID, tagID int64) error {
	return m.removeTag(ctx, dishID, tagID)
}

type mockTags struct {
	create     func(ctx context.Context, name string) (domain.Tag, error)
	list       func(ctx context.Context, prefix string, p domain.PageRequest) (listing.PageResult[domain.Tag], error)
	listByDish func(ctx context.Context, dishID int64, p domain.PageRequest) (domain.Dish, listing.PageResult[domain.Tag], error)
	rename     func(ctx context.Context, id int64, name string) (domain.Tag, error)
	delete     func(ctx context.Context, id int64) error
}

func (m *mockTags) Create(ctx context.Context, name string) (domain.Tag, error) {
	return m.create(ctx, name)
}
func (m *mockTags) List(ctx context.Context, prefix string, p domain.PageRequest) (listing.PageResult[domain.Tag], error) {
	return m.list(ctx, prefix, p)
}
func (m *mockTags) ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (domain.Dish, listing.PageResult[domain.Tag], error) {
	return m.listByDish(ctx, dishID, p)
}
func (m *mockTags) Rename(ctx context.Context, id int64, name string) (domain.Tag, error) {
	return m.rename(ctx, id, name)
}
func (m *mockTags) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockMenu struct {
	menu func(ctx context.Context, canteenID int64, f domain.DishFilter, p domain.PageRequest) (service.Menu, error)
	tags func(ctx context.Context, canteenID int64, p domain.PageRequest) (domain.Canteen, listing.PageResult[domain.Tag], error)
}

func (m *mockMenu) Menu(ctx context.Context, canteenID int64, f domain.DishFilter, p domain.PageRequest) (service.Menu, error) {
	return m.menu(ctx, canteenID, f, p)
}
func (m *mockMenu) Tags(ctx context.Context, canteenID int64, p domain.PageRequest) (domain.Canteen, listing.PageResult[domain.Tag], error) {
	return m.tags(ctx, canteenID, p)
}

type mockRemarks struct {
	post       func(ctx context.Context, sess *domain.Session, dishID int64, rating int, content string) (domain.Remark, error)
	listByDish func(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Remark], error)
	delete     func(ctx context.Context, id int64) error
}

func (m *mockRemarks) Post(ctx context.Context, sess *domain.Session, dishID int64, rating int, content string) (domain.Remark, error) {
	return m.post(ctx, sess, dishID, rating, content)
}
func (m *mockRemarks) ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Remark], error) {
	return m.listByDish(ctx, dishID, p)
}
func (m *mockRemarks) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockAuth struct {
	register     func(ctx context.Context, username, password string) (domain.User, error)
	login        func(ctx context.Context, username, password string) (domain.Session, error)
	logout       func(ctx context.Context, sessionID string) error
	authenticate func(ctx context.Context, sessionID string) (*domain.Session, error)
	findUser     func(ctx context.Context, username string) (domain.User, error)
	listUsers    func(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.User], error)
}

func (m *mockAuth) Register(ctx context.Context, username, password string) (domain.User, error) {
	return m.register(ctx, username, password)
}
func (m *mockAuth) Login(ctx context.Context, username, password string) (domain.Session, error) {
	return m.login(ctx, username, password)
}
func (m *mockAuth) Logout(ctx context.Context, sessionID string) error {
	return m.logout(ctx, sessionID)
}
func (m *mockAuth) Authenticate(ctx context.Context, sessionID string) (*domain.Session, error) {
	return m.authenticate(ctx, sessionID)
}
func (m *mockAuth) FindUser(ctx context.Context, username string) (domain.User, error) {
	return m.findUser(ctx, username)
}
func (m *mockAuth) ListUsers(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.User], error) {
	return m.listUsers(ctx, p)
}

type mockExport struct {
	export func(ctx context.Context) ([]domain.MenuExportRow, error)
}

func (m *mockExport) Export(ctx context.Context) ([]domain.MenuExportRow, error) {
	return m.export(ctx)
}

type mockPinger struct{ err error }

func (m mockPinger) Ping(context.Context) error { return m.err }

var (
	_ handler.CanteenServicer = (*mockCanteens)(nil)
	_ handler.WindowServicer  = (*mockWindows)(nil)
	_ handler.DishServicer    = (*mockDishes)(nil)
	_ handler.TagServicer     = (*mockTags)(nil)
	_ handler.MenuServicer    = (*mockMenu)(nil)
	_ handler.RemarkServicer  = (*mockRemarks)(nil)
	_ handler.AuthServicer    = (*mockAuth)(nil)
	_ handler.ExportServicer  = (*mockExport)(nil)
	_ handler.Pinger          = mockPinger{}
)

// ---- helpers ---------------------------------------------------------------

const (
	userCookie  = "user-session"
	adminCookie = "admin-session"
)

var (
	userSession  = &domain.Session{ID: userCookie, UserID: 2, Username: "alice", Visits: 4}
	adminSession = &domain.Session{ID: adminCookie, UserID: 1, Username: "root", IsSuperuser: true, Visits: 1}
)

// sessionAuth resolves the two fixture cookies and treats anything else as unknown.
func sessionAuth() *mockAuth {
	return &mockAuth{
		authenticate: func(_ context.Context, id string) (*domain.Session, error) {
			switch id {
			case userCookie:
				return userSession, nil
			case adminCookie:
				return adminSession, nil
			}
			return nil, nil
		},
	}
}

// newTestServer wires svc into the router exactly as main.go does.
// A nil Auth gets sessionAuth.
func newTestServer(t *testing.T, svc handler.Services) http.Handler {
	t.Helper()
	if svc.Auth == nil {
		svc.Auth = sessionAuth()
	}
	v, err := view.New()
	require.NoError(t, err)
	return handler.NewServer(svc, v, handler.Options{}).Routes()
}

type reqOpt func(*http.Request)

func asJSON(r *http.Request) { r.Header.Set("Accept", "application/json") }

func withCookie(value string) reqOpt {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: value})
	}
}

func do(t *testing.T, h http.Handler, method, target string, body any, opts ...reqOpt) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, o := range opts {
		o(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func pageOf[T any](total int, p domain.PageRequest, rows ...T) listing.PageResult[T] {
	if rows == nil {
		rows = []T{}
	}
	return listing.PageResult[T]{
		TotalItems: total,
		TotalPages: listing.TotalPages(total, p.Size),
		Rows:       rows,
		Pagination: listing.Paginate(total, p.Page, p.Size),
	}
}
