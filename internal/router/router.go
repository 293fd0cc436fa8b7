package router

import (
	"fmt"
	"net/http"

	"bistro-server/internal/config"
	"bistro-server/internal/handlers"
	"bistro-server/internal/middleware"
	"bistro-server/internal/services"
	"bistro-server/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Setup wires stores, services, handlers and middleware into the route table.
// The paths are a compatibility contract and must not change.
func Setup(stores *store.Stores, gateway services.PaymentGateway, cfg config.Config, logger zerolog.Logger) *mux.Router {
	authService := services.NewAuthService(cfg.JWTSecret, logger)
	userService := services.NewUserService(stores.Users, logger)
	menuService := services.NewMenuService(stores.Menu, stores.Reviews, logger)
	cartService := services.NewCartService(stores.Carts, logger)
	paymentService := services.NewPaymentService(stores.Payments, stores.Carts, stores.Users, stores.Menu, gateway, logger)

	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	menuHandler := handlers.NewMenuHandler(menuService, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(50), 100)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.PerformanceMonitoring(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(rateLimiter.Middleware())
	r.Use(middleware.RequestValidation())

	auth := middleware.Authentication(cfg.JWTSecret, logger)
	admin := middleware.RequireAdmin(userService, logger)

	r.HandleFunc("/jwt", authHandler.IssueToken).Methods("POST")

	r.Handle("/users", protect(userHandler.GetUsers, auth, admin)).Methods("GET")
	r.Handle("/users/admin/{email}", protect(userHandler.GetAdminStatus, auth)).Methods("GET")
	r.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	r.Handle("/users/admin/{id}", protect(userHandler.PromoteToAdmin, auth, admin)).Methods("PATCH")
	r.Handle("/users/{id}", protect(userHandler.DeleteUser, auth, admin)).Methods("DELETE")

	r.HandleFunc("/menu", menuHandler.GetMenu).Methods("GET")
	r.Handle("/menu", protect(menuHandler.CreateMenuItem, auth, admin)).Methods("POST")
	r.Handle("/menu/{id}", protect(menuHandler.DeleteMenuItem, auth, admin)).Methods("DELETE")

	r.HandleFunc("/reviews", menuHandler.GetReviews).Methods("GET")

	r.HandleFunc("/carts", cartHandler.GetCartItems).Methods("GET")
	r.HandleFunc("/carts", cartHandler.AddCartItem).Methods("POST")
	r.HandleFunc("/carts/{id}", cartHandler.DeleteCartItem).Methods("DELETE")

	r.HandleFunc("/create-payment-intent", paymentHandler.CreatePaymentIntent).Methods("POST")
	r.Handle("/payments/{email}", protect(paymentHandler.GetPaymentHistory, auth)).Methods("GET")
	r.HandleFunc("/payments", paymentHandler.RecordPayment).Methods("POST")
	r.Handle("/admin-stats", protect(paymentHandler.AdminStats, auth, admin)).Methods("GET")

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Bistro server is running")
	}).Methods("GET")

	return r
}

// protect wraps a handler in per-route middleware, outermost first.
func protect(h http.HandlerFunc, mws ...func(http.Handler) http.Handler) http.Handler {
	var handler http.Handler = h
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}
