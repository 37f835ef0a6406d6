package main

import (
	"log"
	"net/http"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/cache"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/config"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/db"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/event"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/handler"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/payment"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/repository"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Reel Good Vibes API
// @version 1.0
// @description Catálogo de películas con watchlist, suscripciones y recomendaciones (Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// Catálogo embebido, o un JSON externo si CATALOG_PATH lo indica
	var cat *catalog.Store
	var err error
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		log.Fatalf("catálogo: %v", err)
	}
	log.Printf("catálogo cargado: %d películas", cat.Len())

	// repos
	userRepo := repository.NewUserRepository()
	watchlistRepo := repository.NewWatchlistRepository()
	reviewRepo := repository.NewReviewRepository()
	ratingRepo := repository.NewRatingRepository()
	recRepo := repository.NewRecommendationRepository()

	// bus de cambios para los clientes WS
	bus := event.NewBus()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	catalogSvc := service.NewCatalogService(cat)
	accountSvc := service.NewAccountService(userRepo, cat, payment.NewStubProvider(), bus)
	watchlistSvc := service.NewWatchlistService(watchlistRepo, cat, bus)
	reviewSvc := service.NewReviewService(reviewRepo, ratingRepo, cat, bus)
	// coordinador que reparte el scoring entre los score nodes (o local si no hay)
	recSvc := service.NewRecommendService(userRepo, watchlistRepo, recRepo, cat, cfg.ScoreNodes)
	adminSvc := service.NewAdminService(cat, cfg.ScoreNodes)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(catalogSvc)
	accountH := handler.NewAccountHandler(accountSvc)
	watchlistH := handler.NewWatchlistHandler(watchlistSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	recH := handler.NewRecommendHandler(recSvc)
	eventsH := handler.NewEventsHandler(bus)
	adminH := handler.NewAdminHandler(adminSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Group(func(r chi.Router) {
		r.Use(handler.RateLimit(5, 10))
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
	})

	// Catálogo (público)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/category/{name}", movieH.Category)
	r.Get("/movies/{id}", movieH.GetMovie)
	r.Get("/movies/{id}/similar", movieH.Similar)
	r.Get("/movies/{id}/reviews", reviewH.ListByMovie)

	// Feed de cambios
	r.Get("/ws/events", eventsH.Stream)

	// ================================================
	// Watchlist: funciona con JWT o con X-Session-ID
	// ================================================
	r.Group(func(r chi.Router) {
		r.Use(handler.OptionalJWTAuth(cfg.JWTSecret))

		r.Route("/watchlist", func(r chi.Router) {
			r.Get("/", watchlistH.List)
			r.Get("/count", watchlistH.Count)
			r.Post("/{id}", watchlistH.Add)
			r.Delete("/{id}", watchlistH.Remove)
			r.Post("/{id}/toggle", watchlistH.Toggle)
		})
	})

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/", accountH.GetProfile)
			r.Put("/preferences", accountH.SetPreferences)

			// suscripción y contenido premium
			r.Post("/subscription/upgrade", accountH.Upgrade)
			r.Post("/movies/{id}/purchase", accountH.Purchase)
			r.Post("/movies/{id}/rent", accountH.Rent)
			r.Get("/movies/{id}/access", accountH.CanAccess)

			// medios de pago
			r.Post("/payment-methods", accountH.AddPaymentMethod)
			r.Put("/payment-methods/{id}/default", accountH.SetDefaultPaymentMethod)

			// reseñas y valoraciones
			r.Post("/movies/{id}/reviews", reviewH.Create)
			r.Delete("/reviews/{reviewId}", reviewH.DeleteOwn)
			r.Put("/movies/{id}/rating", reviewH.Rate)
			r.Get("/movies/{id}/rating", reviewH.GetMyRating)

			// recomendaciones
			r.Get("/recommendations", recH.GetRecommendations)
			r.Get("/recommendations/history", recH.GetHistory)
			r.Get("/ws/recommendations", recH.GetRecommendationsWS)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			r.Get("/users", authH.ListUsers)
			r.Get("/users/{id}", authH.GetUserByID)
			r.Put("/users/{id}/update", authH.UpdateUser)

			handler.MountAdminRoutes(r, adminH)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
