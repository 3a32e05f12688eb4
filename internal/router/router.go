package router

import (
	"database/sql"
	"net/http"

	"budget-service/internal/handlers"
	"budget-service/internal/middleware"
	"budget-service/internal/services"
	"budget-service/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func SetupRouter(db *sql.DB, jwtSecret string, logger zerolog.Logger) *mux.Router {
	balanceStore := store.NewMySQLBalanceStore(db, logger)
	paymentStore := store.NewMySQLPaymentStore(db, logger)
	userStore := store.NewMySQLUserStore(db, logger)

	balanceService := services.NewBalanceService(balanceStore, logger)
	paymentService := services.NewPaymentService(paymentStore, balanceService, logger)
	userService := services.NewUserService(userStore, logger)
	authService := services.NewAuthService(userStore, jwtSecret, logger)

	authHandler := handlers.NewAuthHandler(userService, authService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	balanceHandler := handlers.NewBalanceHandler(balanceService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	api := r.PathPrefix("/api/v1").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(middleware.RequestValidation())
	auth.HandleFunc("/signup", authHandler.SignUp).Methods("POST")
	auth.HandleFunc("/signin", authHandler.SignIn).Methods("POST")

	users := api.PathPrefix("/users").Subrouter()
	users.Use(middleware.Authentication(authService, logger))
	users.HandleFunc("", userHandler.GetUserList).Methods("GET")
	users.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")

	balances := api.PathPrefix("/balances").Subrouter()
	balances.Use(middleware.Authentication(authService, logger))
	balances.Use(middleware.RequestValidation())
	balances.HandleFunc("", balanceHandler.CreateBalance).Methods("POST")
	balances.HandleFunc("", balanceHandler.GetBalanceList).Methods("GET")
	balances.HandleFunc("/{id}", balanceHandler.GetBalance).Methods("GET")
	balances.HandleFunc("/{id}", balanceHandler.UpdateBalance).Methods("PUT")
	balances.HandleFunc("/{id}", balanceHandler.DeleteBalance).Methods("DELETE")

	payments := api.PathPrefix("/payments").Subrouter()
	payments.Use(middleware.Authentication(authService, logger))
	payments.Use(middleware.RequestValidation())
	payments.HandleFunc("", paymentHandler.CreatePayment).Methods("POST")
	payments.HandleFunc("", paymentHandler.GetPaymentList).Methods("GET")
	payments.HandleFunc("/{id}", paymentHandler.GetPayment).Methods("GET")
	payments.HandleFunc("/{id}", paymentHandler.UpdatePayment).Methods("PUT")
	payments.HandleFunc("/{id}", paymentHandler.DeletePayment).Methods("DELETE")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
