package http

import (
	"net/http"

	"medequip-rental-backend/internal/delivery/http/handler"
	"medequip-rental-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	machineHandler  *handler.MachineHandler
	rentalHandler   *handler.RentalHandler
	purchaseHandler *handler.PurchaseHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
	rateLimit       func(http.Handler) http.Handler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	machineHandler *handler.MachineHandler,
	rentalHandler *handler.RentalHandler,
	purchaseHandler *handler.PurchaseHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimit func(http.Handler) http.Handler,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		machineHandler:  machineHandler,
		rentalHandler:   rentalHandler,
		purchaseHandler: purchaseHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
		rateLimit:       rateLimit,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Auth routes (public, rate limited per client IP)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(r.rateLimit)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Catalog and storefront routes (any authenticated user)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.Use(middleware.RequireClinicOrAdmin)

	protected.HandleFunc("/machines", r.machineHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/machines/{id}", r.machineHandler.Get).Methods(http.MethodGet)

	protected.HandleFunc("/rental-requests", r.rentalHandler.CreateRequest).Methods(http.MethodPost)
	protected.HandleFunc("/rental-requests", r.rentalHandler.ListRequests).Methods(http.MethodGet)
	protected.HandleFunc("/rental-requests/{id}/confirm", r.rentalHandler.ConfirmRental).Methods(http.MethodPost)
	protected.HandleFunc("/rentals", r.rentalHandler.ListRentals).Methods(http.MethodGet)

	protected.HandleFunc("/purchases", r.purchaseHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/purchases", r.purchaseHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/purchases/{id}/pay", r.purchaseHandler.Pay).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Inventory management (admin)
	admin.HandleFunc("/machines", r.machineHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/machines/{id}", r.machineHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/machines/{id}", r.machineHandler.Delete).Methods(http.MethodDelete)

	// Rental disposition (admin)
	admin.HandleFunc("/rental-requests/{id}/approve", r.rentalHandler.ApproveRequest).Methods(http.MethodPut)
	admin.HandleFunc("/rental-requests/{id}/reject", r.rentalHandler.RejectRequest).Methods(http.MethodPut)
	admin.HandleFunc("/rentals/{id}/status", r.rentalHandler.UpdateRentalStatus).Methods(http.MethodPut)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	// Global middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(middleware.Metrics)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
