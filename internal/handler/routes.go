package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the whole HTTP surface. Path ids are
// constrained to digits, so anything else never reaches a handler.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Get("/ws/echo", s.echo)

	r.Group(func(r chi.Router) {
		r.Use(s.loadSession)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/canteens", http.StatusFound)
		})
		r.Get("/login", s.loginPage)
		r.Post("/login", s.login)
		r.Post("/logout", s.logout)
		r.Post("/register", s.register)

		r.Get("/canteens", s.listCanteens)
		r.Get("/canteens/{canteenID:[0-9]+}/windows", s.listWindows)
		r.Get("/canteens/{canteenID:[0-9]+}/menu", s.canteenMenu)
		r.Get("/canteens/{canteenID:[0-9]+}/tags", s.listCanteenTags)
		r.Get("/windows/{windowID:[0-9]+}/dishes", s.listWindowDishes)
		r.Get("/dishes", s.listDishes)
		r.Get("/dishes/{dishID:[0-9]+}", s.dishDetail)
		r.Get("/dishes/{dishID:[0-9]+}/tags", s.listDishTags)
		r.Get("/tags", s.listTags)

		r.With(s.requireUser).Post("/dishes/{dishID:[0-9]+}/remarks", s.postRemark)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireAdmin)

			r.Get("/users", s.listUsers)
			r.Get("/users/{username}", s.findUser)
			r.Get("/export", s.export)

			r.Post("/canteens", s.createCanteen)
			r.Put("/canteens/{canteenID:[0-9]+}", s.updateCanteen)
			r.Delete("/canteens/{canteenID:[0-9]+}", s.deleteCanteen)
			r.Post("/canteens/{canteenID:[0-9]+}/windows", s.createWindow)

			r.Put("/windows/{windowID:[0-9]+}", s.renameWindow)
			r.Delete("/windows/{windowID:[0-9]+}", s.deleteWindow)
			r.Post("/windows/{windowID:[0-9]+}/dishes", s.createDish)

			r.Put("/dishes/{dishID:[0-9]+}", s.updateDish)
			r.Delete("/dishes/{dishID:[0-9]+}", s.deleteDish)
			r.Post("/dishes/{dishID:[0-9]+}/tags", s.addDishTag)
			r.Delete("/dishes/{dishID:[0-9]+}/tags/{tagID:[0-9]+}", s.removeDishTag)

			r.Post("/tags", s.createTag)
			r.Put("/tags/{tagID:[0-9]+}", s.renameTag)
			r.Delete("/tags/{tagID:[0-9]+}", s.deleteTag)

			r.Delete("/remarks/{remarkID:[0-9]+}", s.deleteRemark)
		})
	})
	return r
}
