package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/repo"
	"github.com/campuscanteen/backend/testutil"
)

// repos bundles every repo over one rolled-back transaction so tests can
// build full hierarchies (canteen → window → dish → tag).
type repos struct {
	tx       pgx.Tx
	canteens repo.CanteenRepo
	windows  repo.WindowRepo
	dishes   repo.DishRepo
	tags     repo.TagRepo
	users    repo.UserRepo
	remarks  repo.RemarkRepo
	sessions repo.SessionRepo
	export   repo.ExportRepo
}

func newRepos(t *testing.T) repos {
	t.Helper()
	tx := testutil.NewTx(t)
	return repos{
		tx:       tx,
		canteens: repo.NewCanteenRepo(tx),
		windows:  repo.NewWindowRepo(tx),
		dishes:   repo.NewDishRepo(tx),
		tags:     repo.NewTagRepo(tx),
		users:    repo.NewUserRepo(tx),
		remarks:  repo.NewRemarkRepo(tx),
		sessions: repo.NewSessionRepo(tx),
		export:   repo.NewExportRepo(tx),
	}
}

var fixtureSeq int

// unique returns a name that does not collide with rows committed by
// other runs against the same database.
func unique(prefix string) string {
	fixtureSeq++
	return fmt.Sprintf("%s-%d-%d", prefix, fixtureSeq, time.Now().UnixNano())
}

func mustCanteen(t *testing.T, r repos) domain.Canteen {
	t.Helper()
	c, err := r.canteens.Create(context.Background(), domain.Canteen{Name: unique("canteen"), Location: "North"})
	require.NoError(t, err)
	return c
}

func mustWindow(t *testing.T, r repos, canteenID int64) domain.Window {
	t.Helper()
	w, err := r.windows.Create(context.Background(), domain.Window{CanteenID: canteenID, Name: unique("window")})
	require.NoError(t, err)
	return w
}

func mustDish(t *testing.T, r repos, windowID int64, name string) domain.Dish {
	t.Helper()
	d, err := r.dishes.Create(context.Background(), domain.Dish{WindowID: windowID, Name: name, PriceCents: 1250})
	require.NoError(t, err)
	return d
}

func mustUser(t *testing.T, r repos) domain.User {
	t.Helper()
	u, err := r.users.Create(context.Background(), domain.User{Username: unique("user"), PasswordHash: "x"})
	require.NoError(t, err)
	return u
}

func firstPage(t *testing.T) domain.PageRequest {
	t.Helper()
	p, err := domain.NewPageRequest(nil)
	require.NoError(t, err)
	return p
}
