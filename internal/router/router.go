package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"property-portal/internal/config"
	"property-portal/internal/handler"
	"property-portal/internal/middleware"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Property  *handler.PropertyHandler
	Favorites *handler.FavoritesHandler
	Profile   *handler.ProfileHandler
	Admin     *handler.AdminHandler
	Contact   *handler.ContactHandler
}

func New(cfg *config.Config, handlers Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/login", handlers.Auth.Login)
		api.Post("/customer-login", handlers.Auth.CustomerLogin)
		api.Post("/register", handlers.Auth.Register)

		api.Get("/properties", handlers.Property.List)
		api.Get("/properties/featured", handlers.Property.Featured)
		api.Get("/properties/{id}", handlers.Property.Get)
		api.Post("/log-search", handlers.Property.LogSearch)

		api.Post("/contact", handlers.Contact.SendMessage)
		api.Post("/newsletter/subscribe", handlers.Contact.Subscribe)

		api.Route("/customer", func(customer chi.Router) {
			customer.Use(middleware.RequireBearer)
			customer.Get("/favorites", handlers.Favorites.List)
			customer.Post("/favorites", handlers.Favorites.Add)
			customer.Delete("/favorites/{propertyId}", handlers.Favorites.Remove)
		})

		api.Route("/users", func(users chi.Router) {
			users.Use(middleware.RequireBearer)
			users.Get("/profile", handlers.Profile.Get)
			users.Put("/profile", handlers.Profile.Update)
			users.Put("/change-password", handlers.Profile.ChangePassword)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireBearer)
			admin.Get("/stats", handlers.Admin.Stats)
			admin.Get("/properties-by-type", handlers.Admin.PropertiesByType)
			admin.Get("/search-stats", handlers.Admin.SearchStats)
			admin.Get("/revenue-stats", handlers.Admin.RevenueStats)
			admin.Get("/amenities", handlers.Admin.Amenities)
			admin.Get("/properties", handlers.Admin.ListProperties)
			admin.Post("/properties", handlers.Admin.CreateProperty)
			admin.Get("/properties/{id}", handlers.Admin.GetProperty)
			admin.Put("/properties/{id}", handlers.Admin.UpdateProperty)
			admin.Delete("/properties/{id}", handlers.Admin.DeleteProperty)
			admin.Post("/properties/{id}/close-deal", handlers.Admin.CloseDeal)
			admin.Delete("/images/{imageId}", handlers.Admin.DeleteImage)
			admin.Get("/users", handlers.Admin.Users)
			admin.Delete("/users/{userId}", handlers.Admin.DeleteUser)
		})
	})

	return r
}
