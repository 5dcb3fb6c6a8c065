// Package handler implements the HTTP surface of the canteen backend.
// All handlers are methods on Server; methods are split into
// domain-specific files (canteen.go, dish.go, etc.) but share the same
// Server struct so they can reach its dependencies.
package handler

import (
	"context"

	"github.com/gorilla/websocket"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/service"
	"github.com/campuscanteen/backend/internal/view"
)

// The servicer interfaces below are defined here, in the consumer package,
// so handler tests can inject func-field mocks without a database.

type CanteenServicer interface {
	Create(ctx context.Context, c domain.Canteen) (domain.Canteen, error)
	GetByID(ctx context.Context, id int64) (domain.Canteen, error)
	List(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error)
	Update(ctx context.Context, c domain.Canteen) (domain.Canteen, error)
	Delete(ctx context.Context, id int64) error
}

type WindowServicer interface {
	Create(ctx context.Context, w domain.Window) (domain.Window, error)
	ListByCanteen(ctx context.Context, canteenID int64, p domain.PageRequest) (domain.Canteen, listing.PageResult[domain.Window], error)
	Rename(ctx context.Context, id int64, name string) (domain.Window, error)
	Delete(ctx context.Context, id int64) error
}

type DishServicer interface {
	Create(ctx context.Context, d domain.Dish) (domain.Dish, error)
	Detail(ctx context.Context, id int64) (service.DishDetail, error)
	List(ctx context.Context, f domain.DishFilter, p domain.PageRequest) (listing.PageResult[domain.Dish], error)
	ListByWindow(ctx context.Context, windowID int64, namePrefix string, p domain.PageRequest) (domain.Window, listing.PageResult[domain.Dish], error)
	Update(ctx context.Context, d domain.Dish) (domain.Dish, error)
	Delete(ctx context.Context, id int64) error
	AddTag(ctx context.Context, dishID, tagID int64) (domain.Tag, error)
	RemoveTag(ctx context.Context, dishID, tagID int64) error
}

type TagServicer interface {
	Create(ctx context.Context, name string) (domain.Tag, error)
	List(ctx context.Context, prefix string, p domain.PageRequest) (listing.PageResult[domain.Tag], error)
	ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (domain.Dish, listing.PageResult[domain.Tag], error)
	Rename(ctx context.Context, id int64, name string) (domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}

type MenuServicer interface {
	Menu(ctx context.Context, canteenID int64, f domain.DishFilter, p domain.PageRequest) (service.Menu, error)
	Tags(ctx context.Context, canteenID int64, p domain.PageRequest) (domain.Canteen, listing.PageResult[domain.Tag], error)
}

type RemarkServicer interface {
	Post(ctx context.Context, sess *domain.Session, dishID int64, rating int, content string) (domain.Remark, error)
	ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Remark], error)
	Delete(ctx context.Context, id int64) error
}

type AuthServicer interface {
	Register(ctx context.Context, username, password string) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, sessionID string) (*domain.Session, error)
	FindUser(ctx context.Context, username string) (domain.User, error)
	ListUsers(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.User], error)
}

type ExportServicer interface {
	Export(ctx context.Context) ([]domain.MenuExportRow, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles every dependency a Server calls into.
type Services struct {
	Canteens CanteenServicer
	Windows  WindowServicer
	Dishes   DishServicer
	Tags     TagServicer
	Menu     MenuServicer
	Remarks  RemarkServicer
	Auth     AuthServicer
	Export   ExportServicer
	DB       Pinger
}

// Options tunes cookie and websocket behaviour.
type Options struct {
	// CookieSecure marks the session cookie Secure; enable behind HTTPS.
	CookieSecure bool
	// AllowedOrigins are accepted on websocket upgrades in addition to
	// same-origin requests.
	AllowedOrigins []string
}

// Server serves every route. Build it with NewServer and mount Routes().
type Server struct {
	svc      Services
	view     *view.Renderer
	opts     Options
	upgrader websocket.Upgrader
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services, v *view.Renderer, opts Options) *Server {
	s := &Server{svc: svc, view: v, opts: opts}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}
